package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"SECPAD_DIR":       "/env/sections",
				"SECPAD_DRY_RUN":   "1",
				"SECPAD_ON_ERROR":  "continue",
				"SECPAD_WATCH":     "true",
				"SECPAD_DEBOUNCE":  "2s",
				"SECPAD_REPORT":    "/env/report.json",
				"SECPAD_LOG_LEVEL": "error",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Dir:      "/env/sections",
				DryRun:   true,
				OnError:  "continue",
				Watch:    true,
				Debounce: 2 * time.Second,
				Report:   "/env/report.json",
				LogLevel: "error",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"SECPAD_DIR":      "/env/sections",
				"SECPAD_ON_ERROR": "continue",
			},
			changed:  map[string]bool{"dir": true},
			initial:  Config{Dir: "/flag/sections", OnError: "abort"},
			expected: Config{Dir: "/flag/sections", OnError: "continue"},
		},
		{
			name:     "non true bool is false",
			envVars:  map[string]string{"SECPAD_DRY_RUN": "yes"},
			changed:  map[string]bool{},
			initial:  Config{DryRun: true},
			expected: Config{DryRun: false},
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"SECPAD_DEBOUNCE": "not-a-duration"},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{
				"SECPAD_DIR", "SECPAD_DRY_RUN", "SECPAD_ON_ERROR", "SECPAD_WATCH",
				"SECPAD_DEBOUNCE", "SECPAD_REPORT", "SECPAD_LOG_LEVEL",
			} {
				t.Setenv(k, "")
			}
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
