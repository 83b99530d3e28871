package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
	HistoryName       = "history"
	EventLogName      = "events.log"
)

type Configuration struct {
	configFs  afero.Fs
	configDir string

	Prompt        string `json:"prompt" toml:"prompt" validate:"required"`
	Color         bool   `json:"color" toml:"color"`
	HistoryFile   string `json:"history_file" toml:"history_file"`
	EventLog      string `json:"event_log" toml:"event_log"`
	MaxLineLength int    `json:"max_line_length" toml:"max_line_length" validate:"gte=0"`
	LogLevel      string `json:"log_level" toml:"log_level" validate:"required,oneof=debug info warn error"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// resolve makes relative paths relative to the directory holding the
// configuration file.
func (c *Configuration) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.configDir, path)
}

// HistoryPath returns the resolved readline history path, or "" if history
// is disabled.
func (c *Configuration) HistoryPath() string {
	return c.resolve(c.HistoryFile)
}

// EventLogPath returns the resolved event log path, or "" if event logging is
// disabled.
func (c *Configuration) EventLogPath() string {
	return c.resolve(c.EventLog)
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.EventLogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	return c.fs().OpenFile(c.EventLogPath(), os.O_RDONLY, 0600)
}

// Default returns the built-in configuration backed by the OS filesystem.
func Default() *Configuration {
	cfg := defaultConfig()
	cfg.configFs = afero.NewOsFs()
	cfg.configDir = "."
	return cfg
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
