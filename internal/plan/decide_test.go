package plan_test

import (
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/internal/plan"
)

func str(s string) *string { return &s }

func TestDecideAction(t *testing.T) {
	tests := []struct {
		name     string
		typeCode string
		facts    extract.Facts
		want     plan.ActionType
	}{
		{
			name:     "amount and due date with high risk",
			typeCode: "세금_통지서",
			facts: extract.Facts{
				Amount:      str("150,000원"),
				DueDate:     str("2025-01-31"),
				PenaltyRisk: extract.RiskHigh,
			},
			want: plan.ActionUrgent,
		},
		{
			name:     "amount and due date",
			typeCode: "건강보험료_고지서",
			facts: extract.Facts{
				Amount:  str("35,000원"),
				DueDate: str("2025-02-10"),
			},
			want: plan.ActionPay,
		},
		{
			name:     "action required with high risk",
			typeCode: "기타_공공문서",
			facts: extract.Facts{
				ActionRequired: true,
				PenaltyRisk:    extract.RiskHigh,
			},
			want: plan.ActionUrgent,
		},
		{
			name:     "action required",
			typeCode: "기타_공공문서",
			facts: extract.Facts{
				ActionRequired: true,
			},
			want: plan.ActionCheck,
		},
		{
			name:     "bill type with amount only",
			typeCode: "지방세_고지서",
			facts: extract.Facts{
				Amount: str("80,000원"),
			},
			want: plan.ActionPay,
		},
		{
			name:     "notice type without facts",
			typeCode: "세금_통지서",
			facts:    extract.Facts{},
			want:     plan.ActionUrgent,
		},
		{
			name:     "informational type",
			typeCode: "복지_안내문",
			facts:    extract.Facts{},
			want:     plan.ActionNone,
		},
		{
			name:     "fallback",
			typeCode: "기타_공공문서",
			facts:    extract.Facts{},
			want:     plan.ActionCheck,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plan.DecideAction(tt.typeCode, &tt.facts); got != tt.want {
				t.Errorf("DecideAction(%s) = %s, want %s", tt.typeCode, got, tt.want)
			}
		})
	}
}

func TestDecideUrgency(t *testing.T) {
	tests := []struct {
		name  string
		facts extract.Facts
		want  plan.Urgency
	}{
		{"high risk", extract.Facts{PenaltyRisk: extract.RiskHigh}, plan.UrgencyHigh},
		{"medium risk", extract.Facts{PenaltyRisk: extract.RiskMedium}, plan.UrgencyMedium},
		{"action required", extract.Facts{PenaltyRisk: extract.RiskLow, ActionRequired: true}, plan.UrgencyMedium},
		{"default", extract.Facts{PenaltyRisk: extract.RiskNone}, plan.UrgencyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plan.DecideUrgency(&tt.facts); got != tt.want {
				t.Errorf("DecideUrgency() = %s, want %s", got, tt.want)
			}
		})
	}
}
