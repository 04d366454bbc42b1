package embedding_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamdbstjd/DC-TermProject3/internal/embedding"
)

func TestNewValidation(t *testing.T) {
	_, err := embedding.New(embedding.Config{Model: "m"})
	assert.Error(t, err, "missing base URL")

	_, err = embedding.New(embedding.Config{BaseURL: "http://localhost"})
	assert.Error(t, err, "missing model")

	svc, err := embedding.New(embedding.Config{BaseURL: "http://localhost", Model: "m"})
	require.NoError(t, err)
	assert.Equal(t, 768, svc.Dimensions())
	assert.Equal(t, "m", svc.ModelName())
}

func TestEmbedBatch(t *testing.T) {
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/embeddings", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		var req struct {
			Model string   `json:"model"`
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req.Model)
		require.Len(t, req.Input, 2)

		// Out-of-order data entries must be reordered by index.
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"embedding": []float64{0.3, 0.4}, "index": 1},
				{"embedding": []float64{0.1, 0.2}, "index": 0},
			},
		})
	}))
	defer server.Close()

	svc, err := embedding.New(embedding.Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Model:   "nomic-embed-text",
	})
	require.NoError(t, err)

	vectors, err := svc.EmbedBatch(context.Background(), []string{"첫 번째", "두 번째"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)

	assert.Equal(t, []float32{0.1, 0.2}, vectors[0])
	assert.Equal(t, []float32{0.3, 0.4}, vectors[1])
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestEmbedBatchEmptyInput(t *testing.T) {
	svc, err := embedding.New(embedding.Config{BaseURL: "http://localhost", Model: "m"})
	require.NoError(t, err)

	vectors, err := svc.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vectors)
}

func TestEmbedSingle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"embedding": []float64{1, 0, 0}, "index": 0},
			},
		})
	}))
	defer server.Close()

	svc, err := embedding.New(embedding.Config{BaseURL: server.URL, Model: "m"})
	require.NoError(t, err)

	vector, err := svc.Embed(context.Background(), "건강보험료 고지서")
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0}, vector)
}

func TestEmbedBatchAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "model not found", "type": "invalid_request_error"},
		})
	}))
	defer server.Close()

	svc, err := embedding.New(embedding.Config{BaseURL: server.URL, Model: "m"})
	require.NoError(t, err)

	_, err = svc.EmbedBatch(context.Background(), []string{"텍스트"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc, err := embedding.New(embedding.Config{BaseURL: server.URL, Model: "m"})
	require.NoError(t, err)

	assert.NoError(t, svc.Ping(context.Background()))
}

func TestPingFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc, err := embedding.New(embedding.Config{BaseURL: server.URL, Model: "m"})
	require.NoError(t, err)

	assert.Error(t, svc.Ping(context.Background()))
}
