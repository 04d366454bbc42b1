package history

import (
	"net/url"

	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/pkg/query"
	"github.com/iamdbstjd/DC-TermProject3/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "history", "h").
	Project("id", "ID").
	Project("analyzed_at", "AnalyzedAt").
	Project("doc_type", "DocType").
	Project("doc_type_name", "DocTypeName").
	Project("summary", "Summary").
	Project("risk_level", "RiskLevel")

var recordProjection = query.
	NewProjectionMap("public", "history", "h").
	Project("id", "ID").
	Project("analyzed_at", "AnalyzedAt").
	Project("doc_type", "DocType").
	Project("doc_type_name", "DocTypeName").
	Project("summary", "Summary").
	Project("risk_level", "RiskLevel").
	Project("result", "Result")

var defaultSort = query.SortField{
	Field:      "analyzed_at",
	Descending: true,
}

// Filters contains optional filtering criteria for history queries.
// Nil fields are ignored. DocType and RiskLevel use exact matching.
type Filters struct {
	DocType   *string            `json:"doc_type,omitempty"`
	RiskLevel *extract.RiskLevel `json:"risk_level,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("DocType", f.DocType).
		WhereEquals("RiskLevel", f.RiskLevel)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if d := values.Get("doc_type"); d != "" {
		f.DocType = &d
	}

	if r := values.Get("risk_level"); r != "" {
		level := extract.ParseRisk(r)
		f.RiskLevel = &level
	}

	return f
}

func scanEntry(s repository.Scanner) (Entry, error) {
	var e Entry
	err := s.Scan(
		&e.ID,
		&e.AnalyzedAt,
		&e.DocType,
		&e.DocTypeName,
		&e.Summary,
		&e.RiskLevel,
	)
	return e, err
}

func scanRecord(s repository.Scanner) (Record, error) {
	var r Record
	err := s.Scan(
		&r.ID,
		&r.AnalyzedAt,
		&r.DocType,
		&r.DocTypeName,
		&r.Summary,
		&r.RiskLevel,
		&r.Result,
	)
	return r, err
}
