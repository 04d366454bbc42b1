// Package history persists completed analysis results. The log is bounded:
// appending beyond the configured capacity evicts the oldest entries in the
// same transaction, so the cap holds under concurrent appends.
package history

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
)

// Entry is the summary row shown in history listings.
type Entry struct {
	ID          uuid.UUID         `json:"id"`
	AnalyzedAt  time.Time         `json:"analyzed_at"`
	DocType     string            `json:"doc_type"`
	DocTypeName string            `json:"doc_type_name"`
	Summary     string            `json:"summary"`
	RiskLevel   extract.RiskLevel `json:"risk_level"`
}

// Record is a full history row: the summary entry plus the stored analysis
// result document.
type Record struct {
	Entry
	Result json.RawMessage `json:"result"`
}

// AppendCommand carries the fields persisted for a completed analysis.
type AppendCommand struct {
	ID          uuid.UUID         `json:"id"`
	AnalyzedAt  time.Time         `json:"analyzed_at"`
	DocType     string            `json:"doc_type"`
	DocTypeName string            `json:"doc_type_name"`
	Summary     string            `json:"summary"`
	RiskLevel   extract.RiskLevel `json:"risk_level"`
	Result      json.RawMessage   `json:"result"`
}
