package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephlewis42/myshell/core/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllBuiltins(t *testing.T) {
	assert.Equal(t, []string{"cd", "help", "exit"}, BuiltinNames())

	for _, entry := range builtins {
		t.Run(entry.name, func(t *testing.T) {
			if entry.builtin == nil {
				t.Fatal("nil builtin", entry.name)
			}
		})
	}
}

func TestLookupBuiltinIsCaseSensitive(t *testing.T) {
	_, ok := lookupBuiltin("cd")
	assert.True(t, ok)

	for _, name := range []string{"CD", "Exit", "help ", ""} {
		_, ok := lookupBuiltin(name)
		assert.False(t, ok, name)
	}
}

func TestHelp(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	for tn, args := range map[string][]string{
		"help":      {"help"},
		"help-args": {"help", "cd"},
	} {
		t.Run(tn, func(t *testing.T) {
			s := newTestShell("")

			assert.Equal(t, Continue, s.Execute(args))
			assert.Empty(t, s.stderr.String())

			g.Assert(t, "help", s.stdout.Bytes())
		})
	}
}

func TestHelpListsTable(t *testing.T) {
	s := newTestShell("")
	Help(s.Shell, []string{"help"})

	var listed []string
	for _, line := range strings.Split(s.stdout.String(), "\n") {
		if strings.HasPrefix(line, "  ") {
			listed = append(listed, strings.TrimSpace(line))
		}
	}

	assert.ElementsMatch(t, []string{"cd", "help", "exit"}, listed)
	assert.Len(t, listed, len(builtins))
}

func TestExit(t *testing.T) {
	for _, args := range [][]string{{"exit"}, {"exit", "now"}, {"exit", "1", "2"}} {
		s := newTestShell("")
		assert.Equal(t, Stop, s.Execute(args), args)
		assert.Empty(t, s.stdout.String())
		assert.Empty(t, s.stderr.String())
	}
}

func TestCd(t *testing.T) {
	t.Run("no argument", func(t *testing.T) {
		start := chdirTemp(t)
		s := newTestShell("")

		assert.Equal(t, Continue, s.Execute([]string{"cd"}))

		wd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, start, wd)
		assert.Equal(t, "myshell: cd: expected argument\n", s.stderr.String())
		assert.Contains(t, s.events.events, &logger.InvalidInvocation{Command: []string{"cd"}, Error: "missing argument"})
	})

	t.Run("valid directory", func(t *testing.T) {
		start := chdirTemp(t)
		require.NoError(t, os.Mkdir("sub", 0700))
		s := newTestShell("")

		assert.Equal(t, Continue, s.Execute([]string{"cd", "sub", "ignored"}))

		wd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(start, "sub"), wd)
		assert.Empty(t, s.stderr.String())
	})

	t.Run("invalid directory", func(t *testing.T) {
		start := chdirTemp(t)
		s := newTestShell("")

		assert.Equal(t, Continue, s.Execute([]string{"cd", "does-not-exist"}))

		wd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, start, wd)
		assert.True(t, strings.HasPrefix(s.stderr.String(), "myshell: "), s.stderr.String())
		assert.Contains(t, s.stderr.String(), "does-not-exist")
	})
}
