package config

import (
	"fmt"
	"os"
	"strconv"
)

const EnvHistoryMaxEntries = "DOCHELPER_HISTORY_MAX_ENTRIES"

// HistoryConfig bounds the stored analysis history.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *HistoryConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *HistoryConfig) Merge(overlay *HistoryConfig) {
	if overlay.MaxEntries != 0 {
		c.MaxEntries = overlay.MaxEntries
	}
}

func (c *HistoryConfig) loadDefaults() {
	if c.MaxEntries == 0 {
		c.MaxEntries = 50
	}
}

func (c *HistoryConfig) loadEnv() {
	if v := os.Getenv(EnvHistoryMaxEntries); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxEntries = n
		}
	}
}

func (c *HistoryConfig) validate() error {
	if c.MaxEntries < 1 {
		return fmt.Errorf("max_entries must be positive, got %d", c.MaxEntries)
	}
	return nil
}
