package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/iamdbstjd/DC-TermProject3/internal/config"
)

func TestPipelineConfigFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var c config.PipelineConfig
		if err := c.Finalize(); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if c.StageTimeout != "60s" {
			t.Errorf("StageTimeout = %q, want 60s", c.StageTimeout)
		}
		if c.TopK != 5 {
			t.Errorf("TopK = %d, want 5", c.TopK)
		}
		if c.StageTimeoutDuration() != 60*time.Second {
			t.Errorf("StageTimeoutDuration() = %v", c.StageTimeoutDuration())
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv(config.EnvPipelineStageTimeout, "90s")
		t.Setenv(config.EnvPipelineTopK, "3")

		var c config.PipelineConfig
		if err := c.Finalize(); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if c.StageTimeout != "90s" {
			t.Errorf("StageTimeout = %q, want 90s", c.StageTimeout)
		}
		if c.TopK != 3 {
			t.Errorf("TopK = %d, want 3", c.TopK)
		}
	})

	t.Run("invalid timeout rejected", func(t *testing.T) {
		c := config.PipelineConfig{StageTimeout: "soon"}
		if err := c.Finalize(); err == nil {
			t.Error("Finalize() = nil, want error for invalid stage_timeout")
		}
	})

	t.Run("non-positive top_k rejected", func(t *testing.T) {
		c := config.PipelineConfig{TopK: -1}
		if err := c.Finalize(); err == nil {
			t.Error("Finalize() = nil, want error for negative top_k")
		}
	})
}

func TestHistoryConfigFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var c config.HistoryConfig
		if err := c.Finalize(); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if c.MaxEntries != 50 {
			t.Errorf("MaxEntries = %d, want 50", c.MaxEntries)
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv(config.EnvHistoryMaxEntries, "100")

		var c config.HistoryConfig
		if err := c.Finalize(); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}
		if c.MaxEntries != 100 {
			t.Errorf("MaxEntries = %d, want 100", c.MaxEntries)
		}
	})

	t.Run("non-positive cap rejected", func(t *testing.T) {
		c := config.HistoryConfig{MaxEntries: -5}
		if err := c.Finalize(); err == nil {
			t.Error("Finalize() = nil, want error for negative max_entries")
		}
	})
}

func TestEmbeddingConfigFinalize(t *testing.T) {
	var c config.EmbeddingConfig
	if err := c.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if c.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("BaseURL = %q", c.BaseURL)
	}
	if c.Model != "nomic-embed-text" {
		t.Errorf("Model = %q", c.Model)
	}
	if c.TimeoutDuration() != 30*time.Second {
		t.Errorf("TimeoutDuration() = %v", c.TimeoutDuration())
	}
	if c.Dimensions != 768 {
		t.Errorf("Dimensions = %d, want 768", c.Dimensions)
	}
}

func TestKnowledgeConfigStorePath(t *testing.T) {
	c := config.KnowledgeConfig{DataDir: "data"}
	if got, want := c.StorePath(), filepath.Join("data", "knowledge.db"); got != want {
		t.Errorf("StorePath() = %q, want %q", got, want)
	}
}

func TestAPIConfigMaxUploadSizeBytes(t *testing.T) {
	tests := []struct {
		name string
		size string
		want int64
	}{
		{"configured size", "10MB", 10 * 1024 * 1024},
		{"invalid falls back to 50MB", "lots", 50 * 1024 * 1024},
		{"empty falls back to 50MB", "", 50 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.APIConfig{MaxUploadSize: tt.size}
			if got := c.MaxUploadSizeBytes(); got != tt.want {
				t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := config.Config{
		ShutdownTimeout: "30s",
		Version:         "0.1.0",
		Pipeline:        config.PipelineConfig{StageTimeout: "60s", TopK: 5},
		History:         config.HistoryConfig{MaxEntries: 50},
	}

	overlay := config.Config{
		Pipeline: config.PipelineConfig{TopK: 8},
		History:  config.HistoryConfig{MaxEntries: 20},
	}

	base.Merge(&overlay)

	if base.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q, want base value kept", base.ShutdownTimeout)
	}
	if base.Pipeline.StageTimeout != "60s" {
		t.Errorf("StageTimeout = %q, want base value kept", base.Pipeline.StageTimeout)
	}
	if base.Pipeline.TopK != 8 {
		t.Errorf("TopK = %d, want overlay value", base.Pipeline.TopK)
	}
	if base.History.MaxEntries != 20 {
		t.Errorf("MaxEntries = %d, want overlay value", base.History.MaxEntries)
	}
}
