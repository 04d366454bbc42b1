// Package pipeline orchestrates the document analysis stages on a state
// graph: acquire, classify, extract, retrieve, plan, simplify. It owns the
// degraded-output policy: unreadable captures and stage failures produce
// complete explanatory results, never partial structures or panics.
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/iamdbstjd/DC-TermProject3/internal/classify"
	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/internal/plan"
	"github.com/iamdbstjd/DC-TermProject3/internal/retrieve"
	"github.com/iamdbstjd/DC-TermProject3/internal/simplify"
)

// Source is one analysis input: either pre-extracted text or uploaded
// document bytes with their content type.
type Source struct {
	// Text bypasses acquisition when non-empty; confidence is fixed at 100.
	Text string

	Data        []byte
	ContentType string
}

// AnalysisResult is the complete output of one analysis. All fields are
// always present regardless of path taken (success, early exit, failure);
// it is owned by one request and never mutated after Execute returns.
type AnalysisResult struct {
	ID           uuid.UUID `json:"id"`
	DocType      string    `json:"doc_type"`
	DocTypeName  string    `json:"doc_type_name"`
	Organization string    `json:"organization"`

	RiskLevel      extract.RiskLevel `json:"risk_level"`
	RiskMessage    string            `json:"risk_message"`
	ActionRequired bool              `json:"action_required"`

	KeyInfo *extract.Facts `json:"key_info"`

	SummaryOneLine  string                `json:"summary_one_line"`
	WhatIsThis      string                `json:"what_is_this"`
	KeyPoints       []string              `json:"key_points"`
	StepsEasy       []string              `json:"steps_easy"`
	HelpChannels    simplify.HelpChannels `json:"help_channels"`
	DontWorry       string                `json:"dont_worry"`
	NeedHelpMessage string                `json:"need_help_message"`

	ActionPlan     *plan.Plan       `json:"action_plan"`
	EvidenceChunks []retrieve.Chunk `json:"evidence_chunks"`

	AcquisitionConfidence float64   `json:"acquisition_confidence"`
	ProcessingTimeMS      int64     `json:"processing_time_ms"`
	AnalyzedAt            time.Time `json:"analyzed_at"`
}

// newResult returns an AnalysisResult with every field at its default.
func newResult() *AnalysisResult {
	return &AnalysisResult{
		ID:             uuid.New(),
		DocType:        classify.OtherTypeCode,
		DocTypeName:    "기타 공공문서",
		RiskLevel:      extract.RiskLow,
		KeyInfo:        extract.NewFacts(),
		KeyPoints:      []string{},
		StepsEasy:      []string{},
		ActionPlan:     &plan.Plan{ActionType: plan.ActionCheck, Urgency: plan.UrgencyLow, Steps: []string{}},
		EvidenceChunks: []retrieve.Chunk{},
		AnalyzedAt:     time.Now(),
	}
}

// markUnreadable fills the fixed early-exit result for captures whose
// acquired text is empty or near-empty.
func (r *AnalysisResult) markUnreadable() {
	r.SummaryOneLine = "문서를 읽을 수 없습니다."
	r.WhatIsThis = "이미지 품질이 좋지 않아 글자를 인식하지 못했습니다."
	r.StepsEasy = []string{"더 선명한 사진을 다시 찍어주세요."}
}

// markFailed fills the generic diagnostic result for stage failures.
func (r *AnalysisResult) markFailed(err error) {
	r.SummaryOneLine = "문서 분석 중 오류가 발생했습니다."
	r.WhatIsThis = "오류: " + err.Error()
	r.StepsEasy = []string{"다시 시도해주세요."}
}
