package history_test

import (
	"net/url"
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/internal/history"
)

func TestFiltersFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantDoc  *string
		wantRisk *extract.RiskLevel
	}{
		{
			name:  "no filters",
			query: "",
		},
		{
			name:    "doc type only",
			query:   "doc_type=세금_통지서",
			wantDoc: strPtr("세금_통지서"),
		},
		{
			name:     "risk level only",
			query:    "risk_level=HIGH",
			wantRisk: riskPtr(extract.RiskHigh),
		},
		{
			name:     "unknown risk maps to none",
			query:    "risk_level=bogus",
			wantRisk: riskPtr(extract.RiskNone),
		},
		{
			name:     "both filters",
			query:    "doc_type=복지_안내문&risk_level=LOW",
			wantDoc:  strPtr("복지_안내문"),
			wantRisk: riskPtr(extract.RiskLow),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}

			f := history.FiltersFromQuery(values)

			assertPtrEqual(t, "DocType", f.DocType, tt.wantDoc)
			assertPtrEqual(t, "RiskLevel", f.RiskLevel, tt.wantRisk)
		})
	}
}

func strPtr(s string) *string                        { return &s }
func riskPtr(r extract.RiskLevel) *extract.RiskLevel { return &r }

func assertPtrEqual[T comparable](t *testing.T, field string, got, want *T) {
	t.Helper()

	if (got == nil) != (want == nil) {
		t.Fatalf("%s = %v, want %v", field, got, want)
	}
	if got != nil && *got != *want {
		t.Errorf("%s = %v, want %v", field, *got, *want)
	}
}
