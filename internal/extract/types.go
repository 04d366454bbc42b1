// Package extract implements the information extraction stage: deterministic
// pattern scanning over document text, generative refinement of the
// candidates, and an enforced risk-escalation floor.
package extract

// RiskLevel grades the consequence of ignoring a document.
type RiskLevel string

// Risk levels in ascending severity.
const (
	RiskNone   RiskLevel = "NONE"
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

var riskRank = map[RiskLevel]int{
	RiskNone:   0,
	RiskLow:    1,
	RiskMedium: 2,
	RiskHigh:   3,
}

// Rank returns the severity order of the risk level.
// Unknown values rank lowest.
func (r RiskLevel) Rank() int {
	return riskRank[r]
}

// AtLeast returns the higher of r and floor.
func (r RiskLevel) AtLeast(floor RiskLevel) RiskLevel {
	if floor.Rank() > r.Rank() {
		return floor
	}
	return r
}

// ParseRisk normalizes a string to a known risk level. Unrecognized
// values default to NONE.
func ParseRisk(s string) RiskLevel {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh:
		return RiskLevel(s)
	default:
		return RiskNone
	}
}

// Facts holds the fields extracted from a document. Every field carries a
// defined default so the structure is never partially populated.
type Facts struct {
	Amount          *string   `json:"amount"`
	DueDate         *string   `json:"due_date"`
	Organization    *string   `json:"organization"`
	PenaltyRisk     RiskLevel `json:"penalty_risk"`
	ActionRequired  bool      `json:"action_required"`
	Contact         *string   `json:"contact"`
	AccountNumber   *string   `json:"account_number"`
	RecipientName   *string   `json:"recipient_name"`
	UrgencyKeywords []string  `json:"urgency_keywords_found"`
	Reasoning       string    `json:"reasoning"`
}

// NewFacts returns a Facts with every field at its default.
func NewFacts() *Facts {
	return &Facts{
		PenaltyRisk:     RiskNone,
		UrgencyKeywords: []string{},
	}
}
