package retrieve_test

import (
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/internal/retrieve"
)

func str(s string) *string { return &s }

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name     string
		typeCode string
		facts    extract.Facts
		want     string
	}{
		{
			name:     "type code only",
			typeCode: "복지_안내문",
			facts:    extract.Facts{PenaltyRisk: extract.RiskNone},
			want:     "복지_안내문",
		},
		{
			name:     "organization appended",
			typeCode: "건강보험료_고지서",
			facts: extract.Facts{
				Organization: str("국민건강보험공단"),
				PenaltyRisk:  extract.RiskLow,
			},
			want: "건강보험료_고지서 국민건강보험공단",
		},
		{
			name:     "action required adds procedure hint",
			typeCode: "세금_통지서",
			facts: extract.Facts{
				ActionRequired: true,
				PenaltyRisk:    extract.RiskLow,
			},
			want: "세금_통지서 처리방법 절차 안내",
		},
		{
			name:     "medium risk adds penalty hint",
			typeCode: "지방세_고지서",
			facts: extract.Facts{
				PenaltyRisk: extract.RiskMedium,
			},
			want: "지방세_고지서 연체 불이익 주의사항",
		},
		{
			name:     "all parts in order",
			typeCode: "세금_통지서",
			facts: extract.Facts{
				Organization:   str("국세청"),
				ActionRequired: true,
				PenaltyRisk:    extract.RiskHigh,
			},
			want: "세금_통지서 국세청 처리방법 절차 안내 연체 불이익 주의사항",
		},
		{
			name:     "empty organization ignored",
			typeCode: "기타_공공문서",
			facts: extract.Facts{
				Organization: str(""),
				PenaltyRisk:  extract.RiskNone,
			},
			want: "기타_공공문서",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retrieve.BuildQuery(tt.typeCode, &tt.facts); got != tt.want {
				t.Errorf("BuildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
