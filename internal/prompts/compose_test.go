package prompts_test

import (
	"context"
	"strings"
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/internal/prompts"
)

// fakeSystem satisfies the composition surface of System; the embedded
// interface panics for data-access methods Compose never touches.
type fakeSystem struct {
	prompts.System
	instructions string
	spec         string
}

func (f *fakeSystem) Instructions(_ context.Context, _ prompts.Stage) (string, error) {
	return f.instructions, nil
}

func (f *fakeSystem) Spec(_ context.Context, _ prompts.Stage) (string, error) {
	return f.spec, nil
}

func TestCompose(t *testing.T) {
	ps := &fakeSystem{instructions: "지시사항", spec: "출력 형식"}

	got, err := prompts.Compose(context.Background(), ps, prompts.StageClassify, "본문 A", "본문 B")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	want := "지시사항\n\n출력 형식\n\n본문 A\n\n본문 B"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestComposeSkipsEmptySections(t *testing.T) {
	ps := &fakeSystem{instructions: "지시사항", spec: "출력 형식"}

	got, err := prompts.Compose(context.Background(), ps, prompts.StagePlan, "", "본문", "")
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	if strings.Count(got, "\n\n") != 2 {
		t.Errorf("Compose() = %q, want empty sections skipped", got)
	}
	if !strings.HasSuffix(got, "본문") {
		t.Errorf("Compose() = %q, want single trailing section", got)
	}
}
