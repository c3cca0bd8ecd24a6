// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"slices"
)

var (
	errInvalidLogFormat     = errors.New(`log format must be "console" or "json"`)
	errInvalidLimiterBudget = errors.New("limiter requests per second and burst must be positive")
	errInvalidRenderLimits  = errors.New("render limits must be positive")
)

// validate checks cross-field constraints after all sources are merged.
func (cfg *ServerConfig) validate() error {
	if !slices.Contains([]string{"console", "json"}, cfg.Log.Format) {
		return fmt.Errorf("%w, got %q", errInvalidLogFormat, cfg.Log.Format)
	}

	if cfg.Limiter.Enabled && (cfg.Limiter.RequestsPerSecond <= 0 || cfg.Limiter.Burst <= 0) {
		return errInvalidLimiterBudget
	}

	if cfg.Render.MaxValueBytes <= 0 || cfg.Render.BatchConcurrency <= 0 {
		return errInvalidRenderLimits
	}

	return nil
}
