package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"sort"

	"github.com/iamdbstjd/DC-TermProject3/internal/config"
	"github.com/iamdbstjd/DC-TermProject3/internal/embedding"
	"github.com/iamdbstjd/DC-TermProject3/internal/retrieve"
)

// Ingestion errors.
var (
	ErrCorpusNotFound = errors.New("knowledge corpus not found")
	ErrEmptyCorpus    = errors.New("knowledge corpus has no items")
)

// embedBatchSize bounds a single embedding request.
const embedBatchSize = 32

// System defines the knowledge subsystem contract: corpus ingestion,
// similarity search, and store introspection.
type System interface {
	retrieve.Searcher
	Load(ctx context.Context) (*LoadResult, error)
	Stats(ctx context.Context) (*Stats, error)
	Close() error
}

type system struct {
	store    *store
	embedder embedding.Service
	jsonPath string
	logger   *slog.Logger
}

// New opens the chunk store and wires the embedding service.
func New(cfg config.KnowledgeConfig, embedder embedding.Service, logger *slog.Logger) (System, error) {
	s, err := newStore(cfg.StorePath())
	if err != nil {
		return nil, fmt.Errorf("knowledge store: %w", err)
	}

	return &system{
		store:    s,
		embedder: embedder,
		jsonPath: cfg.JSONPath,
		logger:   logger.With("system", "knowledge"),
	}, nil
}

func (s *system) Close() error {
	return s.store.Close()
}

// Load reads the corpus JSON document, embeds every item, and replaces the
// chunk store contents. The contact summary is returned for the contacts
// system to seed.
func (s *system) Load(ctx context.Context) (*LoadResult, error) {
	data, err := os.ReadFile(s.jsonPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCorpusNotFound, s.jsonPath)
		}
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var dataset Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	if len(dataset.KnowledgeItems) == 0 {
		return nil, ErrEmptyCorpus
	}

	chunks, err := s.embedItems(ctx, dataset.KnowledgeItems)
	if err != nil {
		return nil, err
	}

	if err := s.store.ReplaceAll(ctx, chunks); err != nil {
		return nil, err
	}

	s.logger.InfoContext(
		ctx, "corpus loaded",
		"items", len(chunks),
		"contacts", len(dataset.ContactSummary),
		"model", s.embedder.ModelName(),
	)

	return &LoadResult{
		Items:    len(chunks),
		Contacts: dataset.ContactSummary,
	}, nil
}

// embedItems converts corpus items to stored chunks, embedding their
// searchable text in bounded batches.
func (s *system) embedItems(ctx context.Context, items []Item) ([]storedChunk, error) {
	chunks := make([]storedChunk, 0, len(items))

	for start := 0; start < len(items); start += embedBatchSize {
		end := min(start+embedBatchSize, len(items))
		batch := items[start:end]

		texts := make([]string, len(batch))
		for i, item := range batch {
			texts[i] = searchableText(item)
		}

		vectors, err := s.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embed corpus batch: %w", err)
		}
		if len(vectors) != len(batch) {
			return nil, fmt.Errorf("embed corpus batch: got %d vectors for %d items", len(vectors), len(batch))
		}

		for i, item := range batch {
			guide := ""
			if item.ActionGuide != nil {
				encoded, err := json.Marshal(item.ActionGuide)
				if err != nil {
					return nil, fmt.Errorf("encode action guide for %s: %w", item.ID, err)
				}
				guide = string(encoded)
			}

			chunks = append(chunks, storedChunk{
				ID:          item.ID,
				Content:     texts[i],
				Domain:      item.Domain,
				DocType:     item.DocType,
				Scenario:    item.Scenario,
				Topic:       item.Topic,
				SourceName:  item.SourceName,
				SourceURL:   item.SourceURL,
				ActionGuide: guide,
				Embedding:   vectors[i],
			})
		}
	}

	return chunks, nil
}

// Search embeds the query and ranks all stored chunks by cosine similarity.
// The corpus is small enough that a full scan beats index maintenance.
func (s *system) Search(ctx context.Context, query string, topK int) ([]retrieve.Chunk, error) {
	if topK < 1 {
		topK = 1
	}

	queryVector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	stored, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		chunk storedChunk
		score float64
	}

	ranked := make([]scored, 0, len(stored))
	for _, chunk := range stored {
		ranked = append(ranked, scored{
			chunk: chunk,
			score: cosineSimilarity(queryVector, chunk.Embedding),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	results := make([]retrieve.Chunk, 0, len(ranked))
	for _, r := range ranked {
		chunk := retrieve.Chunk{
			Text:      r.chunk.Content,
			Source:    r.chunk.SourceName,
			SourceURL: r.chunk.SourceURL,
			DocType:   r.chunk.DocType,
			Topic:     r.chunk.Topic,
			Score:     r.score,
		}

		if r.chunk.ActionGuide != "" {
			var guide retrieve.ActionGuide
			if err := json.Unmarshal([]byte(r.chunk.ActionGuide), &guide); err == nil {
				chunk.ActionGuide = &guide
			}
		}

		results = append(results, chunk)
	}

	return results, nil
}

// Stats returns the chunk store contents summary.
func (s *system) Stats(ctx context.Context) (*Stats, error) {
	count, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Count:   count,
		Backend: "sqlite",
		Path:    s.store.path,
	}, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched or zero vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
