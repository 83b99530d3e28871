package config

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/etc/myshell", 0700))
	require.NoError(t, afero.WriteFile(fs, "/etc/myshell/config.yaml", []byte(`
prompt: "$ "
event_log: events.log
history_file: /var/history
`), 0600))

	cfg, err := Load(fs, "/etc/myshell")
	require.NoError(t, err)

	assert.Equal(t, "$ ", cfg.Prompt)
	assert.Equal(t, "warn", cfg.LogLevel, "missing fields keep defaults")
	assert.Equal(t, filepath.Join("/etc/myshell", "events.log"), cfg.EventLogPath())
	assert.Equal(t, "/var/history", cfg.HistoryPath())
}

func TestLoadTOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/home/me/myshell.toml", []byte(`
prompt = "% "
color = false
max_line_length = 4096
log_level = "debug"
`), 0600))

	cfg, err := Load(fs, "/home/me/myshell.toml")
	require.NoError(t, err)

	assert.Equal(t, "% ", cfg.Prompt)
	assert.False(t, cfg.Color)
	assert.Equal(t, 4096, cfg.MaxLineLength)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.EventLogPath())
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/unknown.yaml", []byte("shell: bash\n"), 0600))
	require.NoError(t, afero.WriteFile(fs, "/unknown.toml", []byte("shell = \"bash\"\n"), 0600))
	require.NoError(t, afero.WriteFile(fs, "/invalid.yaml", []byte("log_level: loud\n"), 0600))

	for _, path := range []string{"/unknown.yaml", "/unknown.toml", "/invalid.yaml", "/missing.yaml"} {
		t.Run(path, func(t *testing.T) {
			_, err := Load(fs, path)
			assert.Error(t, err)
		})
	}
}

func TestInitialize(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := log.New(io.Discard)

	cfg, err := Initialize(fs, "/work", logger)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig().Prompt, cfg.Prompt)

	contents, err := afero.ReadFile(fs, "/work/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, defaultConfigData, contents)

	t.Run("keeps existing", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/work/config.yaml", []byte("prompt: \"# \"\n"), 0600))

		cfg, err := Initialize(fs, "/work", logger)
		require.NoError(t, err)
		assert.Equal(t, "# ", cfg.Prompt)
	})

	t.Run("event log", func(t *testing.T) {
		cfg.EventLog = EventLogName

		fd, err := cfg.OpenEventLog()
		require.NoError(t, err)
		_, err = fd.WriteString("{}\n")
		require.NoError(t, err)
		require.NoError(t, fd.Close())

		fd, err = cfg.ReadEventLog()
		require.NoError(t, err)
		defer fd.Close()
		data, err := io.ReadAll(fd)
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(data))
	})
}
