package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SECPAD_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("dir", os.Getenv("SECPAD_DIR"), &cfg.Dir)
	s.setString("on-error", os.Getenv("SECPAD_ON_ERROR"), &cfg.OnError)
	s.setString("report", os.Getenv("SECPAD_REPORT"), &cfg.Report)
	s.setString("log-level", os.Getenv("SECPAD_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("debounce", os.Getenv("SECPAD_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("dry-run", os.Getenv("SECPAD_DRY_RUN"), &cfg.DryRun)
	s.setBoolFromString("watch", os.Getenv("SECPAD_WATCH"), &cfg.Watch)

	return nil
}
