package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/iamdbstjd/DC-TermProject3/internal/acquire"
	"github.com/iamdbstjd/DC-TermProject3/internal/classify"
	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/internal/pipeline"
	"github.com/iamdbstjd/DC-TermProject3/internal/plan"
	"github.com/iamdbstjd/DC-TermProject3/internal/retrieve"
	"github.com/iamdbstjd/DC-TermProject3/internal/simplify"
)

type stubAcquirer struct {
	text       string
	confidence float64
	err        error
}

func (s *stubAcquirer) Acquire(_ context.Context, _ []byte, _ string) (*acquire.RawText, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &acquire.RawText{Text: s.text, Confidence: s.confidence}, nil
}

type stubClassifier struct {
	classification classify.Classification
	err            error
}

func (s *stubClassifier) Classify(_ context.Context, _ string) (*classify.Classification, error) {
	if s.err != nil {
		return nil, s.err
	}
	c := s.classification
	return &c, nil
}

type stubExtractor struct {
	facts extract.Facts
}

func (s *stubExtractor) Extract(_ context.Context, _, _ string) (*extract.Facts, error) {
	f := s.facts
	return &f, nil
}

type stubRetriever struct {
	rctx retrieve.Context
}

func (s *stubRetriever) Retrieve(_ context.Context, _ string, _ *extract.Facts, _ int) (*retrieve.Context, error) {
	r := s.rctx
	return &r, nil
}

type stubPlanner struct {
	plan plan.Plan
}

func (s *stubPlanner) Plan(_ context.Context, _ string, _ *extract.Facts, _ *retrieve.Context) (*plan.Plan, error) {
	p := s.plan
	return &p, nil
}

type stubSimplifier struct {
	explanation simplify.Explanation
	err         error
}

func (s *stubSimplifier) Simplify(
	_ context.Context,
	_ string,
	_ *extract.Facts,
	_ *plan.Plan,
	_ *retrieve.Context,
) (*simplify.Explanation, error) {
	if s.err != nil {
		return nil, s.err
	}
	e := s.explanation
	return &e, nil
}

func testRuntime() *pipeline.Runtime {
	amount := "150,000원"

	return &pipeline.Runtime{
		Acquirer: &stubAcquirer{text: "건강보험료 납부 고지서", confidence: 87.5},
		Classifier: &stubClassifier{classification: classify.Classification{
			TypeCode:     "건강보험료_고지서",
			TypeName:     "건강보험료 고지서",
			Confidence:   0.95,
			Organization: "국민건강보험공단",
		}},
		Extractor: &stubExtractor{facts: extract.Facts{
			Amount:          &amount,
			PenaltyRisk:     extract.RiskMedium,
			ActionRequired:  true,
			UrgencyKeywords: []string{},
		}},
		Retriever: &stubRetriever{rctx: retrieve.Context{
			Query: "건강보험료_고지서 국민건강보험공단",
			Chunks: []retrieve.Chunk{
				{Text: "건강보험료는 매월 10일까지 납부합니다.", Source: "복지서비스안내", Score: 0.91},
			},
			Summary: "건강보험료 납부 안내",
		}},
		Planner: &stubPlanner{plan: plan.Plan{
			ActionType: plan.ActionPay,
			Urgency:    plan.UrgencyMedium,
			Steps:      []string{"고지서의 금액을 확인하세요.", "기한 내에 납부하세요."},
		}},
		Simplifier: &stubSimplifier{explanation: simplify.Explanation{
			SummaryOneLine:  "건강보험료를 내라는 고지서예요.",
			RiskLevel:       extract.RiskMedium,
			RiskMessage:     "기한을 넘기면 가산금이 붙을 수 있어요.",
			WhatIsThis:      "건강보험공단에서 보낸 보험료 고지서입니다.",
			KeyPoints:       []string{"금액: 150,000원"},
			StepsEasy:       []string{"기한 내에 납부하세요."},
			NeedHelpMessage: "1577-1000으로 문의하세요.",
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestExecutePopulatesResult(t *testing.T) {
	rt := testRuntime()

	result := pipeline.Execute(context.Background(), rt, pipeline.Source{
		Data:        []byte("fake image bytes"),
		ContentType: "image/png",
	})

	if result.DocType != "건강보험료_고지서" {
		t.Errorf("DocType = %q", result.DocType)
	}
	if result.DocTypeName != "건강보험료 고지서" {
		t.Errorf("DocTypeName = %q", result.DocTypeName)
	}
	if result.Organization != "국민건강보험공단" {
		t.Errorf("Organization = %q", result.Organization)
	}
	if result.AcquisitionConfidence != 87.5 {
		t.Errorf("AcquisitionConfidence = %v, want 87.5", result.AcquisitionConfidence)
	}
	if result.RiskLevel != extract.RiskMedium {
		t.Errorf("RiskLevel = %s, want MEDIUM", result.RiskLevel)
	}
	if !result.ActionRequired {
		t.Error("ActionRequired = false, want true")
	}
	if result.KeyInfo == nil || result.KeyInfo.Amount == nil || *result.KeyInfo.Amount != "150,000원" {
		t.Errorf("KeyInfo = %+v, want amount carried through", result.KeyInfo)
	}
	if len(result.EvidenceChunks) != 1 || result.EvidenceChunks[0].Source != "복지서비스안내" {
		t.Errorf("EvidenceChunks = %v", result.EvidenceChunks)
	}
	if result.ActionPlan == nil || result.ActionPlan.ActionType != plan.ActionPay {
		t.Errorf("ActionPlan = %+v, want PAY", result.ActionPlan)
	}
	if result.SummaryOneLine != "건강보험료를 내라는 고지서예요." {
		t.Errorf("SummaryOneLine = %q", result.SummaryOneLine)
	}
	if result.ProcessingTimeMS < 0 {
		t.Errorf("ProcessingTimeMS = %d, want non-negative", result.ProcessingTimeMS)
	}
	if result.AnalyzedAt.IsZero() {
		t.Error("AnalyzedAt is zero")
	}
}

func TestExecuteTextSourceBypassesAcquisition(t *testing.T) {
	rt := testRuntime()
	rt.Acquirer = &stubAcquirer{err: errors.New("must not be called")}

	result := pipeline.Execute(context.Background(), rt, pipeline.Source{
		Text: "국민건강보험공단 보험료 고지",
	})

	if result.AcquisitionConfidence != 100 {
		t.Errorf("AcquisitionConfidence = %v, want 100 for direct text", result.AcquisitionConfidence)
	}
	if result.DocType != "건강보험료_고지서" {
		t.Errorf("DocType = %q, want stages to run on direct text", result.DocType)
	}
}

func TestExecuteEmptyTextShortCircuits(t *testing.T) {
	rt := testRuntime()
	rt.Acquirer = &stubAcquirer{text: "   \n  ", confidence: 12}
	rt.Classifier = &stubClassifier{err: errors.New("must not be called")}

	result := pipeline.Execute(context.Background(), rt, pipeline.Source{
		Data:        []byte("blurry"),
		ContentType: "image/jpeg",
	})

	if result.SummaryOneLine != "문서를 읽을 수 없습니다." {
		t.Errorf("SummaryOneLine = %q", result.SummaryOneLine)
	}
	if result.WhatIsThis != "이미지 품질이 좋지 않아 글자를 인식하지 못했습니다." {
		t.Errorf("WhatIsThis = %q", result.WhatIsThis)
	}
	if len(result.StepsEasy) != 1 || result.StepsEasy[0] != "더 선명한 사진을 다시 찍어주세요." {
		t.Errorf("StepsEasy = %v", result.StepsEasy)
	}
	if result.DocType != classify.OtherTypeCode {
		t.Errorf("DocType = %q, want fallback type", result.DocType)
	}
}

func TestExecuteStageFailure(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(rt *pipeline.Runtime)
	}{
		{
			name: "acquisition failure",
			mutate: func(rt *pipeline.Runtime) {
				rt.Acquirer = &stubAcquirer{err: errors.New("vision call failed")}
			},
		},
		{
			name: "classification failure",
			mutate: func(rt *pipeline.Runtime) {
				rt.Classifier = &stubClassifier{err: errors.New("chat call failed")}
			},
		},
		{
			name: "simplification failure",
			mutate: func(rt *pipeline.Runtime) {
				rt.Simplifier = &stubSimplifier{err: errors.New("parse response failed")}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := testRuntime()
			tt.mutate(rt)

			result := pipeline.Execute(context.Background(), rt, pipeline.Source{
				Data:        []byte("doc"),
				ContentType: "image/png",
			})

			if result.SummaryOneLine != "문서 분석 중 오류가 발생했습니다." {
				t.Errorf("SummaryOneLine = %q, want diagnostic summary", result.SummaryOneLine)
			}
			if result.ActionPlan == nil || result.KeyInfo == nil {
				t.Error("degraded result must keep every field populated")
			}
			if result.ProcessingTimeMS < 0 {
				t.Errorf("ProcessingTimeMS = %d, want non-negative", result.ProcessingTimeMS)
			}
		})
	}
}
