package storage_test

import (
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/pkg/storage"
)

func TestConfigFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := storage.Config{ConnectionString: "UseDevelopmentStorage=true"}
		if err := c.Finalize(nil); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}

		if c.ContainerName != "documents" {
			t.Errorf("ContainerName = %q, want documents", c.ContainerName)
		}
		if c.MaxListSize != 50 {
			t.Errorf("MaxListSize = %d, want 50", c.MaxListSize)
		}
	})

	t.Run("configured list size above cap is clamped", func(t *testing.T) {
		c := storage.Config{
			ConnectionString: "UseDevelopmentStorage=true",
			MaxListSize:      storage.MaxListCap + 1,
		}
		if err := c.Finalize(nil); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}

		if c.MaxListSize != storage.MaxListCap {
			t.Errorf("MaxListSize = %d, want %d", c.MaxListSize, storage.MaxListCap)
		}
	})

	t.Run("env override clamped to cap", func(t *testing.T) {
		t.Setenv("TEST_STORAGE_MAX_LIST_SIZE", "9999")

		c := storage.Config{ConnectionString: "UseDevelopmentStorage=true"}
		env := storage.Env{MaxListSize: "TEST_STORAGE_MAX_LIST_SIZE"}
		if err := c.Finalize(&env); err != nil {
			t.Fatalf("Finalize() error = %v", err)
		}

		if c.MaxListSize != storage.MaxListCap {
			t.Errorf("MaxListSize = %d, want %d", c.MaxListSize, storage.MaxListCap)
		}
	})

	t.Run("missing connection string rejected", func(t *testing.T) {
		var c storage.Config
		if err := c.Finalize(nil); err == nil {
			t.Error("Finalize() = nil, want error for missing connection_string")
		}
	})
}
