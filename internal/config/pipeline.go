package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvPipelineStageTimeout = "DOCHELPER_PIPELINE_STAGE_TIMEOUT"
	EnvPipelineTopK         = "DOCHELPER_PIPELINE_TOP_K"
)

// PipelineConfig holds analysis pipeline settings.
type PipelineConfig struct {
	// StageTimeout bounds each remote call a stage makes.
	StageTimeout string `toml:"stage_timeout"`
	// TopK is the number of knowledge chunks requested per analysis.
	TopK int `toml:"top_k"`
}

// StageTimeoutDuration returns StageTimeout as a time.Duration.
func (c *PipelineConfig) StageTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.StageTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PipelineConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *PipelineConfig) Merge(overlay *PipelineConfig) {
	if overlay.StageTimeout != "" {
		c.StageTimeout = overlay.StageTimeout
	}
	if overlay.TopK != 0 {
		c.TopK = overlay.TopK
	}
}

func (c *PipelineConfig) loadDefaults() {
	if c.StageTimeout == "" {
		c.StageTimeout = "60s"
	}
	if c.TopK == 0 {
		c.TopK = 5
	}
}

func (c *PipelineConfig) loadEnv() {
	if v := os.Getenv(EnvPipelineStageTimeout); v != "" {
		c.StageTimeout = v
	}
	if v := os.Getenv(EnvPipelineTopK); v != "" {
		if k, err := strconv.Atoi(v); err == nil {
			c.TopK = k
		}
	}
}

func (c *PipelineConfig) validate() error {
	if _, err := time.ParseDuration(c.StageTimeout); err != nil {
		return fmt.Errorf("invalid stage_timeout: %w", err)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	return nil
}
