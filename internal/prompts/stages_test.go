package prompts_test

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/internal/prompts"
)

func TestStages(t *testing.T) {
	want := []prompts.Stage{
		prompts.StageAcquire,
		prompts.StageClassify,
		prompts.StageExtract,
		prompts.StageSummarize,
		prompts.StagePlan,
		prompts.StageSimplify,
	}

	if got := prompts.Stages(); !slices.Equal(got, want) {
		t.Errorf("Stages() = %v, want %v", got, want)
	}
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		input   string
		want    prompts.Stage
		wantErr bool
	}{
		{"acquire", prompts.StageAcquire, false},
		{"summarize", prompts.StageSummarize, false},
		{"simplify", prompts.StageSimplify, false},
		{"translate", "", true},
		{"", "", true},
		{"Classify", "", true},
	}

	for _, tt := range tests {
		got, err := prompts.ParseStage(tt.input)
		if tt.wantErr {
			if !errors.Is(err, prompts.ErrInvalidStage) {
				t.Errorf("ParseStage(%q) error = %v, want ErrInvalidStage", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseStage(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStage(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestStageUnmarshalJSON(t *testing.T) {
	var s prompts.Stage
	if err := json.Unmarshal([]byte(`"extract"`), &s); err != nil {
		t.Fatalf("unmarshal valid stage: %v", err)
	}
	if s != prompts.StageExtract {
		t.Errorf("stage = %s, want extract", s)
	}

	if err := json.Unmarshal([]byte(`"bogus"`), &s); !errors.Is(err, prompts.ErrInvalidStage) {
		t.Errorf("unmarshal invalid stage error = %v, want ErrInvalidStage", err)
	}
}

func TestDefaultInstructions(t *testing.T) {
	for _, stage := range prompts.Stages() {
		text, err := prompts.DefaultInstructions(stage)
		if err != nil {
			t.Errorf("DefaultInstructions(%s) error = %v", stage, err)
		}
		if text == "" {
			t.Errorf("DefaultInstructions(%s) = empty", stage)
		}
	}

	if _, err := prompts.DefaultInstructions("bogus"); !errors.Is(err, prompts.ErrInvalidStage) {
		t.Errorf("DefaultInstructions(bogus) error = %v, want ErrInvalidStage", err)
	}
}

func TestSpec(t *testing.T) {
	for _, stage := range prompts.Stages() {
		text, err := prompts.Spec(stage)
		if err != nil {
			t.Errorf("Spec(%s) error = %v", stage, err)
		}
		if text == "" {
			t.Errorf("Spec(%s) = empty", stage)
		}
	}

	if _, err := prompts.Spec("bogus"); !errors.Is(err, prompts.ErrInvalidStage) {
		t.Errorf("Spec(bogus) error = %v, want ErrInvalidStage", err)
	}
}
