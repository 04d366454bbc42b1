package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/iamdbstjd/DC-TermProject3/internal/prompts"
	"github.com/iamdbstjd/DC-TermProject3/pkg/formatting"
)

// ErrExtractFailed wraps refinement failures surfaced to the orchestrator.
var ErrExtractFailed = errors.New("extraction failed")

// System defines the extraction stage contract.
type System interface {
	Extract(ctx context.Context, text, typeCode string) (*Facts, error)
}

const textLimit = 4000

type extractor struct {
	agent   gaconfig.AgentConfig
	prompts prompts.System
	logger  *slog.Logger
}

// New creates an agent-backed extractor.
func New(cfg gaconfig.AgentConfig, ps prompts.System, logger *slog.Logger) System {
	return &extractor{
		agent:   cfg,
		prompts: ps,
		logger:  logger.With("system", "extract"),
	}
}

type refineResponse struct {
	Amount          *string  `json:"amount"`
	DueDate         *string  `json:"due_date"`
	Organization    *string  `json:"organization"`
	PenaltyRisk     string   `json:"penalty_risk"`
	ActionRequired  bool     `json:"action_required"`
	Contact         *string  `json:"contact"`
	AccountNumber   *string  `json:"account_number"`
	RecipientName   *string  `json:"recipient_name"`
	UrgencyKeywords []string `json:"urgency_keywords_found"`
	Reasoning       string   `json:"reasoning"`
}

func (e *extractor) Extract(ctx context.Context, text, typeCode string) (*Facts, error) {
	candidates := Scan(text)

	facts, err := e.refine(ctx, text, typeCode, candidates)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractFailed, err)
	}

	EnforceRisk(text, facts)

	e.logger.InfoContext(
		ctx, "extraction complete",
		"type_code", typeCode,
		"penalty_risk", facts.PenaltyRisk,
		"action_required", facts.ActionRequired,
	)

	return facts, nil
}

func (e *extractor) refine(
	ctx context.Context,
	text string,
	typeCode string,
	candidates Candidates,
) (*Facts, error) {
	prompt, err := prompts.Compose(
		ctx, e.prompts, prompts.StageExtract,
		renderPayload(text, typeCode, candidates),
	)
	if err != nil {
		return nil, fmt.Errorf("compose prompt: %w", err)
	}

	a, err := agent.New(&e.agent)
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("chat call: %w", err)
	}

	parsed, err := formatting.Parse[refineResponse](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return applyRefinement(parsed), nil
}

func renderPayload(text, typeCode string, candidates Candidates) string {
	var sb strings.Builder

	sb.WriteString("문서 유형: ")
	if typeCode == "" {
		sb.WriteString("미확인")
	} else {
		sb.WriteString(typeCode)
	}

	sb.WriteString("\n\n=== 추출된 후보 정보 ===\n")
	if candidates.Empty() {
		sb.WriteString("없음\n")
	} else {
		writeCandidateLine(&sb, "금액 후보", candidates.Amounts)
		writeCandidateLine(&sb, "날짜 후보", candidates.Dates)
		writeCandidateLine(&sb, "연락처 후보", candidates.Phones)
		writeCandidateLine(&sb, "계좌/납부번호 후보", candidates.Accounts)
	}

	sb.WriteString("\n=== 문서 텍스트 ===\n")
	sb.WriteString(formatting.Truncate(text, textLimit))

	return sb.String()
}

func writeCandidateLine(sb *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(strings.Join(values, ", "))
	sb.WriteString("\n")
}

// applyRefinement merges the refinement output into a fully defaulted Facts.
func applyRefinement(r refineResponse) *Facts {
	f := NewFacts()

	f.Amount = r.Amount
	f.DueDate = r.DueDate
	f.Organization = r.Organization
	f.PenaltyRisk = ParseRisk(r.PenaltyRisk)
	f.ActionRequired = r.ActionRequired
	f.Contact = r.Contact
	f.AccountNumber = r.AccountNumber
	f.RecipientName = r.RecipientName
	if len(r.UrgencyKeywords) > 0 {
		f.UrgencyKeywords = r.UrgencyKeywords
	}
	f.Reasoning = r.Reasoning

	return f
}
