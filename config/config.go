// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"flag"
	"fmt"
	"os"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Basic struct {
		Host string `env:"WEBLATE_HOST,overwrite" yaml:"host"`
		Port string `env:"WEBLATE_PORT,overwrite" yaml:"port"`
	} `yaml:"basic"`

	Log struct {
		Level   string   `env:"WEBLATE_LOG_LEVEL,overwrite" yaml:"logLevel"`
		Outputs []string `env:"WEBLATE_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"WEBLATE_LOG_FORMAT,overwrite" yaml:"logFormat"`
	} `yaml:"log"`

	Limiter struct {
		Enabled           bool `env:"WEBLATE_LIMITER,overwrite" yaml:"enabled"`
		RequestsPerSecond int  `env:"WEBLATE_LIMITER_RPS,overwrite" yaml:"requestsPerSecond"`
		Burst             int  `env:"WEBLATE_LIMITER_BURST,overwrite" yaml:"burst"`
	} `yaml:"limiter"`

	Render struct {
		// MaxValueBytes bounds the size of a single value accepted by the
		// render API. The annotation pipeline scans the value once per
		// check highlight, so unbounded input would allow quadratic work.
		MaxValueBytes int `env:"WEBLATE_RENDER_MAX_VALUE_BYTES,overwrite" yaml:"maxValueBytes"`

		// BatchConcurrency caps how many units a batch request renders at once.
		BatchConcurrency int `env:"WEBLATE_RENDER_BATCH_CONCURRENCY,overwrite" yaml:"batchConcurrency"`
	} `yaml:"render"`

	I18n struct {
		// Strict mode for missing keys.
		//
		// When enabled, missing keys are logged (deduplicated per locale+key) and
		// visibly wrapped using markers.
		StrictMissingKeys bool `env:"WEBLATE_STRICT_MISSING_KEYS" yaml:"strictMissingKeys"`
	} `yaml:"i18n"`
}

// LoadConfig loads the configuration from various sources.
//
// Precedence for the config file path: the -config flag, then the
// WEBLATE_CONFIGFILE environment variable, then ./config.yaml. Values from
// the file are overridden by environment variables.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	switch {
	case configFlagUserSet:
		configFilePath = parsedConfigFlagValue
	case os.Getenv("WEBLATE_CONFIGFILE") != "":
		configFilePath = os.Getenv("WEBLATE_CONFIGFILE")
	default:
		configFilePath = parsedConfigFlagValue
	}

	cfg.SetDefaults()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupAudit()

	return nil
}
