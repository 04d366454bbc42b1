package knowledge

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamdbstjd/DC-TermProject3/internal/config"
	"github.com/iamdbstjd/DC-TermProject3/internal/retrieve"
)

// keywordEmbedder assigns a fixed axis per topic keyword so similarity
// ranking is deterministic in tests.
type keywordEmbedder struct{}

func (keywordEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	switch {
	case strings.Contains(text, "건강보험"):
		return []float32{1, 0, 0}, nil
	case strings.Contains(text, "국민연금"):
		return []float32{0, 1, 0}, nil
	default:
		return []float32{0, 0, 1}, nil
	}
}

func (k keywordEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		v, err := k.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}
	return vectors, nil
}

func (keywordEmbedder) Dimensions() int              { return 3 }
func (keywordEmbedder) ModelName() string            { return "keyword-test" }
func (keywordEmbedder) Ping(_ context.Context) error { return nil }

const corpusJSON = `{
  "version": "test",
  "knowledge_items": [
    {
      "id": "hi-001",
      "text": "건강보험료는 매월 10일까지 납부해야 합니다.",
      "domain": "건강보험",
      "doc_type": "건강보험료_고지서",
      "topic": "납부기한",
      "source_name": "국민건강보험공단",
      "source_url": "https://www.nhis.or.kr",
      "action_guide": {
        "phone": {"number": "1577-1000", "hours": "평일 09:00-18:00"}
      }
    },
    {
      "id": "np-001",
      "text": "국민연금 수급 개시 연령은 출생 연도에 따라 다릅니다.",
      "domain": "국민연금",
      "doc_type": "국민연금_안내문",
      "topic": "수급연령",
      "source_name": "국민연금공단"
    }
  ],
  "contact_summary": {
    "국민건강보험공단": {"phone": "1577-1000", "website": "https://www.nhis.or.kr"}
  }
}`

func testSystem(t *testing.T) System {
	t.Helper()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "knowledge.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(corpusJSON), 0600))

	cfg := config.KnowledgeConfig{DataDir: dir, JSONPath: jsonPath}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sys, err := New(cfg, keywordEmbedder{}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { sys.Close() })

	return sys
}

func TestLoad(t *testing.T) {
	sys := testSystem(t)

	result, err := sys.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Items)
	require.Contains(t, result.Contacts, "국민건강보험공단")
	assert.Equal(t, "1577-1000", result.Contacts["국민건강보험공단"].Phone)

	stats, err := sys.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, "sqlite", stats.Backend)
}

func TestLoadReplacesExistingChunks(t *testing.T) {
	sys := testSystem(t)
	ctx := context.Background()

	_, err := sys.Load(ctx)
	require.NoError(t, err)
	_, err = sys.Load(ctx)
	require.NoError(t, err)

	stats, err := sys.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count, "reload must replace, not append")
}

func TestLoadMissingCorpus(t *testing.T) {
	dir := t.TempDir()
	cfg := config.KnowledgeConfig{DataDir: dir, JSONPath: filepath.Join(dir, "missing.json")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sys, err := New(cfg, keywordEmbedder{}, logger)
	require.NoError(t, err)
	defer sys.Close()

	_, err = sys.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorpusNotFound)
}

func TestLoadEmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "knowledge.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"knowledge_items": []}`), 0600))

	cfg := config.KnowledgeConfig{DataDir: dir, JSONPath: jsonPath}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sys, err := New(cfg, keywordEmbedder{}, logger)
	require.NoError(t, err)
	defer sys.Close()

	_, err = sys.Load(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestSearchRanksBySimilarity(t *testing.T) {
	sys := testSystem(t)
	ctx := context.Background()

	_, err := sys.Load(ctx)
	require.NoError(t, err)

	chunks, err := sys.Search(ctx, "건강보험료 납부 방법", 1)
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	top := chunks[0]
	assert.Equal(t, "국민건강보험공단", top.Source)
	assert.Equal(t, "건강보험료_고지서", top.DocType)
	assert.InDelta(t, 1.0, top.Score, 0.0001)

	require.NotNil(t, top.ActionGuide)
	require.NotNil(t, top.ActionGuide.Phone)
	assert.Equal(t, "1577-1000", top.ActionGuide.Phone.Number)
}

func TestSearchClampsTopK(t *testing.T) {
	sys := testSystem(t)
	ctx := context.Background()

	_, err := sys.Load(ctx)
	require.NoError(t, err)

	chunks, err := sys.Search(ctx, "국민연금 수급", 0)
	require.NoError(t, err)
	require.Len(t, chunks, 1, "topK below 1 clamps to 1")
	assert.Equal(t, "국민연금공단", chunks[0].Source)
}

func TestSearchableText(t *testing.T) {
	item := Item{
		Text: "본문",
		ActionGuide: &retrieve.ActionGuide{
			Phone:  &retrieve.PhoneGuide{Number: "129"},
			Online: &retrieve.OnlineGuide{URL: "https://www.bokjiro.go.kr"},
			Visit:  &retrieve.VisitGuide{Place: "주민센터"},
		},
	}

	got := searchableText(item)
	assert.Equal(t, "본문 연락처: 129 홈페이지: https://www.bokjiro.go.kr 방문: 주민센터", got)

	assert.Equal(t, "본문", searchableText(Item{Text: "본문"}))
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1}, []float32{1, 0}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cosineSimilarity(tt.a, tt.b), 0.0001)
		})
	}
}
