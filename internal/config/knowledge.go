package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	EnvKnowledgeDataDir  = "DOCHELPER_KNOWLEDGE_DATA_DIR"
	EnvKnowledgeJSONPath = "DOCHELPER_KNOWLEDGE_JSON_PATH"
)

// KnowledgeConfig holds the guidance corpus locations.
type KnowledgeConfig struct {
	// DataDir is where the chunk store database lives.
	DataDir string `toml:"data_dir"`
	// JSONPath is the knowledge corpus JSON document loaded on reload.
	JSONPath string `toml:"json_path"`
}

// StorePath returns the chunk store database path inside DataDir.
func (c *KnowledgeConfig) StorePath() string {
	return filepath.Join(c.DataDir, "knowledge.db")
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *KnowledgeConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *KnowledgeConfig) Merge(overlay *KnowledgeConfig) {
	if overlay.DataDir != "" {
		c.DataDir = overlay.DataDir
	}
	if overlay.JSONPath != "" {
		c.JSONPath = overlay.JSONPath
	}
}

func (c *KnowledgeConfig) loadDefaults() {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.JSONPath == "" {
		c.JSONPath = filepath.Join("data", "knowledge.json")
	}
}

func (c *KnowledgeConfig) loadEnv() {
	if v := os.Getenv(EnvKnowledgeDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvKnowledgeJSONPath); v != "" {
		c.JSONPath = v
	}
}

func (c *KnowledgeConfig) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir required")
	}
	if c.JSONPath == "" {
		return fmt.Errorf("json_path required")
	}
	return nil
}
