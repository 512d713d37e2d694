// Package config loads the optional patternbook configuration file.
//
// The file is TOML and lives at ~/.config/patternbook/config.toml (or under
// $XDG_CONFIG_HOME). Every field has a default, so a missing file is never
// an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"patternbook/pkg/errors"
)

// appName is used for the config directory.
const appName = "patternbook"

// Environment names understood by the config.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

// Config holds the tunable defaults for the demos.
type Config struct {
	// Environment selects which profile the config singleton reports.
	Environment string `toml:"environment"`

	Text struct {
		// Shift is the default Caesar shift for the text pipeline.
		Shift int `toml:"shift"`
	} `toml:"text"`

	Payments struct {
		// Currency used by the legacy gateway adapter.
		Currency string `toml:"currency"`
	} `toml:"payments"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Environment = EnvDevelopment
	c.Text.Shift = 3
	c.Payments.Currency = "USD"
	return c
}

// Path returns the config file location using the XDG convention.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the config file at path, layered over Default.
// A missing file returns the defaults; a malformed file returns
// INVALID_FORMAT.
func Load(path string) (Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &c); err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	return c, nil
}

// LoadDefault loads the config from the standard location.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// ProfilePath returns the profile file a given environment maps to, the way
// the original config singleton reported it.
func ProfilePath(environment string) string {
	switch environment {
	case EnvTesting:
		return "config/test.toml"
	case EnvProduction:
		return "config/prod.toml"
	default:
		return "config/dev.toml"
	}
}
