package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bft-labs/secpad/internal/app"
	"github.com/bft-labs/secpad/internal/domain"
	"github.com/bft-labs/secpad/pkg/log"
)

// Config holds CLI configuration for secpad.
type Config struct {
	Dir    string
	DryRun bool

	OnError  string
	Watch    bool
	Debounce time.Duration

	Report   string
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		OnError:  string(app.PolicyAbort),
		Debounce: app.DefaultDebounce,
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors and normalizes paths.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("%w: dir is required", domain.ErrInvalidConfig)
	}
	c.Dir = filepath.Clean(c.Dir)

	fi, err := os.Stat(c.Dir)
	if err != nil {
		return fmt.Errorf("%w: dir: %v", domain.ErrInvalidConfig, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: dir %s is not a directory", domain.ErrInvalidConfig, c.Dir)
	}

	if _, err := app.ParsePolicy(c.OnError); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %v", domain.ErrInvalidConfig, err)
	}
	if c.Watch && c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

// Policy returns the parsed on-error policy. Call after Validate.
func (c Config) Policy() app.Policy {
	p, _ := app.ParsePolicy(c.OnError)
	return p
}

// RunnerConfig converts the CLI configuration to the runner's configuration.
func (c Config) RunnerConfig() app.RunnerConfig {
	return app.RunnerConfig{
		Dir:    c.Dir,
		DryRun: c.DryRun,
		Policy: c.Policy(),
	}
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
