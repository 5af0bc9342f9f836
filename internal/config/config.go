/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/friendsincode/timeslots/internal/slots"
)

// Config covers process level configuration read from environment variables.
type Config struct {
	Environment  string
	SettingsPath string // YAML file overlaid on the variant defaults
	Seed         int64  // 0 seeds from the clock
	Format       string
	SearchDays   int // 0 keeps the settings value
}

// Load reads environment variables (after an optional .env file), applies
// defaults, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	seed, err := getEnvInt64Any([]string{"TIMESLOTS_SEED", "SLOTGEN_SEED"}, 0)
	if err != nil {
		return nil, err
	}
	searchDays, err := getEnvInt64Any([]string{"TIMESLOTS_SEARCH_DAYS", "SLOTGEN_SEARCH_DAYS"}, 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment:  getEnvAny([]string{"TIMESLOTS_ENV", "SLOTGEN_ENV"}, "production"),
		SettingsPath: getEnvAny([]string{"TIMESLOTS_SETTINGS", "SLOTGEN_SETTINGS"}, ""),
		Seed:         seed,
		Format:       getEnvAny([]string{"TIMESLOTS_FORMAT", "SLOTGEN_FORMAT"}, "text"),
		SearchDays:   int(searchDays),
	}

	if searchDays < 0 || searchDays > slots.MaxSearchDays {
		return nil, fmt.Errorf("TIMESLOTS_SEARCH_DAYS must be between 0 and %d, got %d", slots.MaxSearchDays, searchDays)
	}
	if cfg.SettingsPath != "" {
		if _, err := os.Stat(cfg.SettingsPath); err != nil {
			return nil, fmt.Errorf("TIMESLOTS_SETTINGS: %w", err)
		}
	}

	return cfg, nil
}

// Development reports whether verbose logging should be enabled.
func (c *Config) Development() bool {
	return c != nil && strings.EqualFold(c.Environment, "development")
}

// getEnvAny returns the first non-empty environment variable value from keys, or def if none set.
func getEnvAny(keys []string, def string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

// getEnvInt64Any returns the first set integer value from keys, or def.
// An unparsable value is an error.
func getEnvInt64Any(keys []string, def int64) (int64, error) {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return 0, fmt.Errorf("%s must be an integer: %w", k, err)
			}
			return parsed, nil
		}
	}
	return def, nil
}
