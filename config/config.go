// Package config provides the startup preferences of Styling.
//
// The file is optional and read only: when it is missing the defaults are
// used and nothing is written back.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/yllada/styling/common"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Theme names the initial theme. Empty selects the toolkit default.
	Theme string `yaml:"theme"`
	// ScaleFactor multiplies every logical unit, within [1.5, 2.0].
	ScaleFactor float64 `yaml:"scale_factor"`
	// Fullscreen opens the window fullscreen.
	Fullscreen bool `yaml:"fullscreen"`
	// SecondaryInput shows the on-screen keyboard test row.
	SecondaryInput bool `yaml:"secondary_input"`
	// LogLevel is one of "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`
	// LogFile mirrors the log into the config directory.
	LogFile bool `yaml:"log_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ScaleFactor: common.DefaultScaleFactor,
		Fullscreen:  true,
		LogLevel:    common.LogLevelInfo,
	}
}

// Path returns the location of the configuration file.
func Path() (string, error) {
	dir, err := common.GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, common.ConfigFileName), nil
}

// Load reads the configuration file, falling back to DefaultConfig when
// it does not exist.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return DefaultConfig(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path. A missing file is not an
// error. On any other failure the defaults are returned together with
// an error wrapping common.ErrConfigLoad.
func LoadFrom(path string) (*Config, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse decodes a configuration document. Fields left out keep their
// default values; unknown fields are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultConfig(), fmt.Errorf("%w: %v", common.ErrConfigLoad, err)
	}

	return cfg, cfg.validate()
}

// validate repairs out of range values and reports what it changed.
func (c *Config) validate() error {
	var problems []error

	switch {
	case c.ScaleFactor == 0:
		c.ScaleFactor = common.DefaultScaleFactor
	case math.IsNaN(c.ScaleFactor):
		problems = append(problems, errors.New("scale_factor is not a number"))
		c.ScaleFactor = common.DefaultScaleFactor
	case c.ScaleFactor < common.MinScaleFactor || c.ScaleFactor > common.MaxScaleFactor:
		problems = append(problems, fmt.Errorf("scale_factor %g outside [%g, %g]",
			c.ScaleFactor, common.MinScaleFactor, common.MaxScaleFactor))
		c.ScaleFactor = common.Clamp(c.ScaleFactor, common.MinScaleFactor, common.MaxScaleFactor)
	}

	if _, ok := common.ParseLogLevel(c.LogLevel); !ok {
		problems = append(problems, fmt.Errorf("unknown log_level %q", c.LogLevel))
		c.LogLevel = common.LogLevelInfo
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", common.ErrInvalidConfig, errors.Join(problems...))
}

// Level returns the configured log level.
func (c *Config) Level() common.LogLevel {
	level, _ := common.ParseLogLevel(c.LogLevel)
	return level
}
