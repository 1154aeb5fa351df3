// Package config loads the wrap CLI configuration.
//
// Values are layered: built-in defaults, then the TOML file, then WRAP_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	jlconfig "github.com/JeremyLoy/config"
	"github.com/sirupsen/logrus"

	"martianoff/wrap/wraperr"
)

// Output formats for encoded values.
const (
	OutputJSON = "json"
	OutputCBOR = "cbor"
)

// Config holds configuration for the wrap CLI.
type Config struct {
	// LogLevel is a logrus level name.
	// Defaults to "warning"
	LogLevel string `toml:"log-level"`

	// Debug enables the Get/Set trace of every box the CLI creates.
	Debug bool `toml:"debug"`

	// Output selects the encoding printed by `wrap json`: "json" or "cbor".
	// Defaults to "json"
	Output string `toml:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: logrus.WarnLevel.String(),
		Output:   OutputJSON,
	}
}

// DefaultPath returns the config file used when none is given:
// $WRAP_HOME/config.toml, where WRAP_HOME defaults to ~/.wrap.
func DefaultPath() string {
	return filepath.Join(defaultHome(), "config.toml")
}

func defaultHome() string {
	if dir := os.Getenv("WRAP_HOME"); dir != "" {
		return dir
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".wrap")
	}
	return filepath.Join(homeDir, ".wrap")
}

// Load builds the configuration from defaults, the TOML file at path and the
// environment. An empty path means DefaultPath, which may be absent; an
// explicit path must exist.
func Load(path string) (*Config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), c); err != nil {
			return nil, wraperr.NewConfigErrorInFile(path, "parse error", err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, wraperr.NewConfigErrorInFile(path, "cannot read", err)
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// envOverrides mirrors Config with every field optional: an empty string
// means the variable is unset.
type envOverrides struct {
	LogLevel string `config:"WRAP_LOG_LEVEL"`
	Debug    string `config:"WRAP_DEBUG"`
	Output   string `config:"WRAP_OUTPUT"`
}

func (c *Config) applyEnv() error {
	var env envOverrides
	if err := jlconfig.FromEnv().To(&env); err != nil {
		return wraperr.NewConfigErrorInFile("", "cannot read environment", err)
	}

	if env.LogLevel != "" {
		c.LogLevel = env.LogLevel
	}
	if env.Output != "" {
		c.Output = env.Output
	}
	if env.Debug != "" {
		debug, err := strconv.ParseBool(env.Debug)
		if err != nil {
			return wraperr.NewConfigErrorInFile("", "WRAP_DEBUG", err)
		}
		c.Debug = debug
	}
	return nil
}

// Validate checks that every field holds a known value.
func (c *Config) Validate() error {
	errs := &wraperr.MultiError{}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs.Errors = append(errs.Errors, wraperr.NewConfigError(fmt.Sprintf("unknown log level %q", c.LogLevel)))
	}
	switch c.Output {
	case OutputJSON, OutputCBOR:
	default:
		errs.Errors = append(errs.Errors, wraperr.NewConfigError(fmt.Sprintf("unknown output %q", c.Output)))
	}
	return errs.ErrOrNil()
}

// Level returns the parsed log level, falling back to warning.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
