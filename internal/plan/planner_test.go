package plan

import (
	"slices"
	"testing"
)

func TestHeal(t *testing.T) {
	tests := []struct {
		name       string
		response   planResponse
		actionType ActionType
		urgency    Urgency
		wantSteps  []string
	}{
		{
			name: "generated steps are kept",
			response: planResponse{
				Steps:        []string{"고지서 금액 확인", "기한 내 납부"},
				DeadlineInfo: "7월 31일까지",
			},
			actionType: ActionPay,
			urgency:    UrgencyMedium,
			wantSteps:  []string{"고지서 금액 확인", "기한 내 납부"},
		},
		{
			name:       "empty steps get the fallback step",
			response:   planResponse{Steps: []string{}},
			actionType: ActionCheck,
			urgency:    UrgencyLow,
			wantSteps:  []string{FallbackStep},
		},
		{
			name:       "nil steps get the fallback step",
			response:   planResponse{WhatIfIgnore: "연체료가 붙을 수 있습니다"},
			actionType: ActionUrgent,
			urgency:    UrgencyHigh,
			wantSteps:  []string{FallbackStep},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := heal(tt.response, tt.actionType, tt.urgency)

			if got.ActionType != tt.actionType {
				t.Errorf("ActionType = %q, want %q", got.ActionType, tt.actionType)
			}
			if got.Urgency != tt.urgency {
				t.Errorf("Urgency = %q, want %q", got.Urgency, tt.urgency)
			}
			if !slices.Equal(got.Steps, tt.wantSteps) {
				t.Errorf("Steps = %v, want %v", got.Steps, tt.wantSteps)
			}
			if got.DeadlineInfo != tt.response.DeadlineInfo {
				t.Errorf("DeadlineInfo = %q, want %q", got.DeadlineInfo, tt.response.DeadlineInfo)
			}
			if got.WhatIfIgnore != tt.response.WhatIfIgnore {
				t.Errorf("WhatIfIgnore = %q, want %q", got.WhatIfIgnore, tt.response.WhatIfIgnore)
			}
		})
	}
}
