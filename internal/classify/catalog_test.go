package classify_test

import (
	"slices"
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/internal/classify"
)

func TestLookup(t *testing.T) {
	dt, ok := classify.Lookup("건강보험료_고지서")
	if !ok {
		t.Fatal("Lookup(건강보험료_고지서) not found")
	}
	if dt.Description != "건강보험료 납부 고지서" {
		t.Errorf("Description = %q", dt.Description)
	}

	if _, ok := classify.Lookup("없는_유형"); ok {
		t.Error("Lookup(없는_유형) = found, want not found")
	}
}

func TestCatalogHasFallbackType(t *testing.T) {
	var codes []string
	for _, dt := range classify.Catalog() {
		codes = append(codes, dt.Code)
	}

	if !slices.Contains(codes, classify.OtherTypeCode) {
		t.Errorf("catalog %v missing fallback %s", codes, classify.OtherTypeCode)
	}
}

func TestMatchKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "health insurance bill",
			text: "국민건강보험공단에서 보험료 납부를 안내드립니다",
			want: []string{"건강보험료_고지서"},
		},
		{
			name: "tax arrears",
			text: "국세청 체납 세금 통지",
			want: []string{"세금_통지서"},
		},
		{
			name: "multiple matches in catalog order",
			text: "국민연금 수급 및 기초생활 지원금 안내",
			want: []string{"국민연금_안내문", "복지_안내문"},
		},
		{
			name: "no matches",
			text: "단순 참고용 문서",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify.MatchKeywords(tt.text)
			if !slices.Equal(got, tt.want) {
				t.Errorf("MatchKeywords() = %v, want %v", got, tt.want)
			}
		})
	}
}
