package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/secpad/internal/app"
	"github.com/bft-labs/secpad/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.OnError != "abort" {
		t.Errorf("OnError = %v, want abort", cfg.OnError)
	}
	if cfg.Debounce != app.DefaultDebounce {
		t.Errorf("Debounce = %v, want %v", cfg.Debounce, app.DefaultDebounce)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Dir != "" {
		t.Errorf("Dir = %v, want empty", cfg.Dir)
	}
}

func TestConfig_Validate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "Sec1.js")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid minimal config",
			config:  Config{Dir: dir},
			wantErr: false,
		},
		{
			name:    "valid full config",
			config:  Config{Dir: dir, OnError: "continue", Watch: true, Debounce: time.Second, LogLevel: "debug", DryRun: true},
			wantErr: false,
		},
		{
			name:    "missing dir",
			config:  Config{},
			wantErr: true,
		},
		{
			name:    "dir does not exist",
			config:  Config{Dir: filepath.Join(dir, "missing")},
			wantErr: true,
		},
		{
			name:    "dir is a file",
			config:  Config{Dir: file},
			wantErr: true,
		},
		{
			name:    "unknown policy",
			config:  Config{Dir: dir, OnError: "retry"},
			wantErr: true,
		},
		{
			name:    "unknown log level",
			config:  Config{Dir: dir, LogLevel: "chatty"},
			wantErr: true,
		},
		{
			name:    "watch needs positive debounce",
			config:  Config{Dir: dir, Watch: true, Debounce: 0},
			wantErr: true,
		},
		{
			name:    "debounce ignored without watch",
			config:  Config{Dir: dir, Debounce: 0},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Validate_CleansDir(t *testing.T) {
	dir := t.TempDir()
	c := Config{Dir: dir + string(filepath.Separator) + "."}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if c.Dir != filepath.Clean(dir) {
		t.Errorf("Dir = %v, want %v", c.Dir, filepath.Clean(dir))
	}
}

func TestConfig_RunnerConfig(t *testing.T) {
	c := Config{Dir: "/sections", DryRun: true, OnError: "continue"}

	rc := c.RunnerConfig()
	if rc.Dir != "/sections" || !rc.DryRun || rc.Policy != app.PolicyContinue {
		t.Errorf("RunnerConfig() = %+v", rc)
	}

	c.OnError = ""
	if c.Policy() != app.PolicyAbort {
		t.Errorf("Policy() = %v, want abort", c.Policy())
	}
}
