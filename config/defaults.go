// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

const (
	// Default limiter budget.
	defaultLimiterRequestsPerSecond = 20
	defaultLimiterBurst             = 40

	// Default cap on a single rendered value (64 KiB).
	defaultMaxValueBytes = 64 * 1024

	// Default number of units a batch request renders concurrently.
	defaultBatchConcurrency = 8
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8282"

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Limiter.Enabled = false
	cfg.Limiter.RequestsPerSecond = defaultLimiterRequestsPerSecond
	cfg.Limiter.Burst = defaultLimiterBurst

	cfg.Render.MaxValueBytes = defaultMaxValueBytes
	cfg.Render.BatchConcurrency = defaultBatchConcurrency

	cfg.I18n.StrictMissingKeys = false
}
