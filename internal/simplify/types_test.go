package simplify_test

import (
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/internal/simplify"
)

func TestNewExplanationDefaults(t *testing.T) {
	e := simplify.NewExplanation()

	if e.SummaryOneLine != simplify.DefaultSummary {
		t.Errorf("SummaryOneLine = %q", e.SummaryOneLine)
	}
	if e.WhatIsThis != simplify.DefaultWhatIsThis {
		t.Errorf("WhatIsThis = %q", e.WhatIsThis)
	}
	if len(e.StepsEasy) != 1 || e.StepsEasy[0] != simplify.DefaultStep {
		t.Errorf("StepsEasy = %v", e.StepsEasy)
	}
	if e.NeedHelpMessage != simplify.DefaultHelp {
		t.Errorf("NeedHelpMessage = %q", e.NeedHelpMessage)
	}
	if e.RiskLevel != extract.RiskLow {
		t.Errorf("RiskLevel = %s, want LOW", e.RiskLevel)
	}
	if e.KeyPoints == nil {
		t.Error("KeyPoints = nil, want empty slice")
	}
}

func TestRiskLevelFor(t *testing.T) {
	tests := []struct {
		input extract.RiskLevel
		want  extract.RiskLevel
	}{
		{extract.RiskHigh, extract.RiskHigh},
		{extract.RiskMedium, extract.RiskMedium},
		{extract.RiskLow, extract.RiskLow},
		{extract.RiskNone, extract.RiskLow},
	}

	for _, tt := range tests {
		if got := simplify.RiskLevelFor(tt.input); got != tt.want {
			t.Errorf("RiskLevelFor(%s) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestGuardRisk(t *testing.T) {
	tests := []struct {
		name          string
		reported      extract.RiskLevel
		extracted     extract.RiskLevel
		dontWorry     string
		wantRisk      extract.RiskLevel
		wantDontWorry string
	}{
		{
			name:          "generation cannot lower high risk",
			reported:      extract.RiskLow,
			extracted:     extract.RiskHigh,
			dontWorry:     "걱정하지 마세요.",
			wantRisk:      extract.RiskHigh,
			wantDontWorry: "",
		},
		{
			name:          "generation may raise risk",
			reported:      extract.RiskHigh,
			extracted:     extract.RiskLow,
			dontWorry:     "걱정하지 마세요.",
			wantRisk:      extract.RiskHigh,
			wantDontWorry: "",
		},
		{
			name:          "medium floor applies",
			reported:      extract.RiskLow,
			extracted:     extract.RiskMedium,
			dontWorry:     "크게 걱정할 일은 아니에요.",
			wantRisk:      extract.RiskMedium,
			wantDontWorry: "크게 걱정할 일은 아니에요.",
		},
		{
			name:          "low risk keeps reassurance",
			reported:      extract.RiskLow,
			extracted:     extract.RiskNone,
			dontWorry:     "천천히 처리하셔도 됩니다.",
			wantRisk:      extract.RiskLow,
			wantDontWorry: "천천히 처리하셔도 됩니다.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := simplify.NewExplanation()
			e.RiskLevel = tt.reported
			e.DontWorry = tt.dontWorry

			simplify.GuardRisk(e, tt.extracted)

			if e.RiskLevel != tt.wantRisk {
				t.Errorf("RiskLevel = %s, want %s", e.RiskLevel, tt.wantRisk)
			}
			if e.DontWorry != tt.wantDontWorry {
				t.Errorf("DontWorry = %q, want %q", e.DontWorry, tt.wantDontWorry)
			}
		})
	}
}
