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

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
	HistoryName       = "history"
	EventLogName      = "events.log"
)

// Color output modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Configuration struct {
	configurationDir string
	configFs         afero.Fs

	// Prompt is printed before each line of playground input.
	Prompt string `json:"prompt" validate:"required"`
	// HistoryLimit caps the number of lines the playground history keeps.
	HistoryLimit int `json:"history_limit" validate:"gte=0"`
	// Color controls colored output.
	Color string `json:"color" validate:"oneof=auto always never"`
	// LogEvents enables the JSON lines event log.
	LogEvents bool `json:"log_events"`
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
		c.configFs = afero.NewBasePathFs(afero.NewOsFs(), c.configurationDir)
	}
	return c.configFs
}

// HistoryPath returns the OS path of the playground history file, or empty
// when the configuration isn't backed by a directory.
func (c *Configuration) HistoryPath() string {
	if c.configurationDir == "" {
		return ""
	}
	return filepath.Join(c.configurationDir, HistoryName)
}

// EventLogPath returns the OS path of the event log, or empty when the
// configuration isn't backed by a directory.
func (c *Configuration) EventLogPath() string {
	if c.configurationDir == "" {
		return ""
	}
	return filepath.Join(c.configurationDir, EventLogName)
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	return c.fs().OpenFile(EventLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	return c.fs().OpenFile(EventLogName, os.O_RDONLY, 0600)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Default returns the built-in configuration. It isn't backed by a
// directory, so the event log and history are unavailable.
func Default() *Configuration {
	return defaultConfig()
}
