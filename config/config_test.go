// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"testing"
)

/*
TestLoadConfig focuses on verifying main functionality (defaults, environment
overrides, validation) and *shouldn't* need exhaustive scenarios.

No t.Parallel here: the tests mutate process environment via t.Setenv.
*/

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string            // Description of the test case
		env     map[string]string // Name of the environment variable and its value
		wantErr bool              // Whether an error is expected
		check   func(t *testing.T, cfg *ServerConfig)
	}{
		{
			name: "Defaults only",
			check: func(t *testing.T, cfg *ServerConfig) {
				t.Helper()

				if cfg.Basic.Host != "localhost" || cfg.Basic.Port != "8282" {
					t.Errorf("unexpected listen defaults: %s:%s", cfg.Basic.Host, cfg.Basic.Port)
				}

				if cfg.Render.MaxValueBytes != 64*1024 {
					t.Errorf("unexpected max value bytes: %d", cfg.Render.MaxValueBytes)
				}

				if cfg.Render.BatchConcurrency != 8 {
					t.Errorf("unexpected batch concurrency: %d", cfg.Render.BatchConcurrency)
				}

				if cfg.Limiter.Enabled {
					t.Error("limiter must default to disabled")
				}
			},
		},
		{
			name: "Environment overrides",
			env: map[string]string{
				"WEBLATE_PORT":          "9000",
				"WEBLATE_LIMITER":       "true",
				"WEBLATE_LIMITER_RPS":   "5",
				"WEBLATE_LIMITER_BURST": "10",
			},
			check: func(t *testing.T, cfg *ServerConfig) {
				t.Helper()

				if cfg.Basic.Port != "9000" {
					t.Errorf("unexpected port: %s", cfg.Basic.Port)
				}

				if !cfg.Limiter.Enabled || cfg.Limiter.RequestsPerSecond != 5 || cfg.Limiter.Burst != 10 {
					t.Errorf("unexpected limiter config: %+v", cfg.Limiter)
				}
			},
		},
		{
			name: "Invalid log format",
			env: map[string]string{
				"WEBLATE_LOG_FORMAT": "xml",
			},
			wantErr: true,
		},
		{
			name: "Invalid limiter budget",
			env: map[string]string{
				"WEBLATE_LIMITER":     "true",
				"WEBLATE_LIMITER_RPS": "0",
			},
			wantErr: true,
		},
		{
			name: "Invalid render limits",
			env: map[string]string{
				"WEBLATE_RENDER_MAX_VALUE_BYTES": "0",
			},
			wantErr: true,
		},
		{
			name: "Unparsable int",
			env: map[string]string{
				"WEBLATE_LIMITER_RPS": "many",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var cfg ServerConfig

			err := cfg.LoadConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.check != nil {
				tt.check(t, &cfg)
			}
		})
	}
}
