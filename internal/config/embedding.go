package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvEmbeddingBaseURL    = "DOCHELPER_EMBEDDING_BASE_URL"
	EnvEmbeddingAPIKey     = "DOCHELPER_EMBEDDING_API_KEY"
	EnvEmbeddingModel      = "DOCHELPER_EMBEDDING_MODEL"
	EnvEmbeddingTimeout    = "DOCHELPER_EMBEDDING_TIMEOUT"
	EnvEmbeddingDimensions = "DOCHELPER_EMBEDDING_DIMENSIONS"
)

// EmbeddingConfig holds settings for the OpenAI-compatible embeddings endpoint.
type EmbeddingConfig struct {
	BaseURL    string `toml:"base_url"`
	APIKey     string `toml:"api_key"`
	Model      string `toml:"model"`
	Timeout    string `toml:"timeout"`
	Dimensions int    `toml:"dimensions"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *EmbeddingConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *EmbeddingConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *EmbeddingConfig) Merge(overlay *EmbeddingConfig) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.Dimensions != 0 {
		c.Dimensions = overlay.Dimensions
	}
}

func (c *EmbeddingConfig) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:11434/v1"
	}
	if c.Model == "" {
		c.Model = "nomic-embed-text"
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
	if c.Dimensions == 0 {
		c.Dimensions = 768
	}
}

func (c *EmbeddingConfig) loadEnv() {
	if v := os.Getenv(EnvEmbeddingBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvEmbeddingAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvEmbeddingModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvEmbeddingTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvEmbeddingDimensions); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			c.Dimensions = d
		}
	}
}

func (c *EmbeddingConfig) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url required")
	}
	if c.Model == "" {
		return fmt.Errorf("model required")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if c.Dimensions < 1 {
		return fmt.Errorf("dimensions must be positive, got %d", c.Dimensions)
	}
	return nil
}
