package knowledge

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

// storedChunk is a corpus item as persisted in the chunk store: the
// searchable text, its attribution metadata, the serialized action guide,
// and the embedding vector.
type storedChunk struct {
	ID          string
	Content     string
	Domain      string
	DocType     string
	Scenario    string
	Topic       string
	SourceName  string
	SourceURL   string
	ActionGuide string
	Embedding   []float32
}

// store is the SQLite-backed chunk store.
type store struct {
	db   *sql.DB
	path string
}

const chunkSchema = `
CREATE TABLE IF NOT EXISTS chunks (
	id TEXT PRIMARY KEY,
	content TEXT NOT NULL,
	domain TEXT NOT NULL DEFAULT '',
	doc_type TEXT NOT NULL DEFAULT '',
	scenario TEXT NOT NULL DEFAULT '',
	topic TEXT NOT NULL DEFAULT '',
	source_name TEXT NOT NULL DEFAULT '',
	source_url TEXT NOT NULL DEFAULT '',
	action_guide TEXT NOT NULL DEFAULT '',
	embedding BLOB
)`

// newStore opens (or creates) the chunk store database at path.
func newStore(path string) (*store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(chunkSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating chunks table: %w", err)
	}

	return &store{db: db, path: path}, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

// ReplaceAll swaps the full chunk set in one transaction. Ingestion is
// all-or-nothing: a failed pass leaves the previous corpus intact.
func (s *store) ReplaceAll(ctx context.Context, chunks []storedChunk) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chunks"); err != nil {
		return fmt.Errorf("clearing chunks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, content, domain, doc_type, scenario, topic, source_name, source_url, action_guide, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, chunk := range chunks {
		if _, err := stmt.ExecContext(ctx,
			chunk.ID, chunk.Content, chunk.Domain, chunk.DocType, chunk.Scenario,
			chunk.Topic, chunk.SourceName, chunk.SourceURL, chunk.ActionGuide,
			float32SliceToBytes(chunk.Embedding),
		); err != nil {
			return fmt.Errorf("saving chunk %s: %w", chunk.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// All returns every stored chunk with its embedding.
func (s *store) All(ctx context.Context) ([]storedChunk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, content, domain, doc_type, scenario, topic, source_name, source_url, action_guide, embedding
		FROM chunks
	`)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var chunks []storedChunk
	for rows.Next() {
		var chunk storedChunk
		var embeddingBlob []byte
		if err := rows.Scan(&chunk.ID, &chunk.Content, &chunk.Domain, &chunk.DocType,
			&chunk.Scenario, &chunk.Topic, &chunk.SourceName, &chunk.SourceURL,
			&chunk.ActionGuide, &embeddingBlob); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}
		chunk.Embedding = bytesToFloat32Slice(embeddingBlob)
		chunks = append(chunks, chunk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}

	return chunks, nil
}

// Count returns the stored chunk count.
func (s *store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return count, nil
}

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
