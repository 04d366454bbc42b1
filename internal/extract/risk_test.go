package extract_test

import (
	"slices"
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
)

func TestEnforceRisk(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		initial      extract.RiskLevel
		wantRisk     extract.RiskLevel
		wantAction   bool
		wantKeywords []string
	}{
		{
			name:         "arrears marker forces high",
			text:         "체납 사실을 통지합니다",
			initial:      extract.RiskNone,
			wantRisk:     extract.RiskHigh,
			wantAction:   true,
			wantKeywords: []string{"체납"},
		},
		{
			name:         "demand letter forces high",
			text:         "독촉장을 발송하였습니다",
			initial:      extract.RiskLow,
			wantRisk:     extract.RiskHigh,
			wantAction:   true,
			wantKeywords: []string{"독촉"},
		},
		{
			name:         "fine marker floors at medium",
			text:         "과태료가 부과될 수 있습니다",
			initial:      extract.RiskNone,
			wantRisk:     extract.RiskMedium,
			wantKeywords: []string{"과태료"},
		},
		{
			name:     "medium marker never lowers high",
			text:     "가산금 안내",
			initial:  extract.RiskHigh,
			wantRisk: extract.RiskHigh,
		},
		{
			name:     "no markers leaves risk unchanged",
			text:     "건강검진 안내문입니다",
			initial:  extract.RiskLow,
			wantRisk: extract.RiskLow,
		},
		{
			name:         "multiple markers collected",
			text:         "연체 및 압류 예정, 가산금 부과",
			initial:      extract.RiskNone,
			wantRisk:     extract.RiskHigh,
			wantAction:   true,
			wantKeywords: []string{"연체", "압류", "가산금"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := extract.NewFacts()
			f.PenaltyRisk = tt.initial

			extract.EnforceRisk(tt.text, f)

			if f.PenaltyRisk != tt.wantRisk {
				t.Errorf("PenaltyRisk = %s, want %s", f.PenaltyRisk, tt.wantRisk)
			}
			if tt.wantAction && !f.ActionRequired {
				t.Error("ActionRequired = false, want true")
			}
			for _, k := range tt.wantKeywords {
				if !slices.Contains(f.UrgencyKeywords, k) {
					t.Errorf("UrgencyKeywords = %v, missing %q", f.UrgencyKeywords, k)
				}
			}
		})
	}
}

func TestEnforceRiskIdempotent(t *testing.T) {
	f := extract.NewFacts()

	extract.EnforceRisk("체납 통지", f)
	extract.EnforceRisk("체납 통지", f)

	if len(f.UrgencyKeywords) != 1 {
		t.Fatalf("UrgencyKeywords = %v, want no duplicate markers", f.UrgencyKeywords)
	}
}

func TestRiskLevelAtLeast(t *testing.T) {
	tests := []struct {
		name  string
		r     extract.RiskLevel
		floor extract.RiskLevel
		want  extract.RiskLevel
	}{
		{"floor raises", extract.RiskNone, extract.RiskMedium, extract.RiskMedium},
		{"floor keeps higher", extract.RiskHigh, extract.RiskMedium, extract.RiskHigh},
		{"equal unchanged", extract.RiskLow, extract.RiskLow, extract.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.AtLeast(tt.floor); got != tt.want {
				t.Errorf("%s.AtLeast(%s) = %s, want %s", tt.r, tt.floor, got, tt.want)
			}
		})
	}
}

func TestParseRisk(t *testing.T) {
	tests := []struct {
		input string
		want  extract.RiskLevel
	}{
		{"HIGH", extract.RiskHigh},
		{"MEDIUM", extract.RiskMedium},
		{"LOW", extract.RiskLow},
		{"", extract.RiskNone},
		{"unknown", extract.RiskNone},
	}

	for _, tt := range tests {
		if got := extract.ParseRisk(tt.input); got != tt.want {
			t.Errorf("ParseRisk(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}
