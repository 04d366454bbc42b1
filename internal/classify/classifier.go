// Package classify implements the document classification stage: a keyword
// pre-filter over the document-type catalog followed by generative
// disambiguation with defaulting for malformed output.
package classify

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

// ErrClassifyFailed wraps classification failures surfaced to the orchestrator.
var ErrClassifyFailed = errors.New("classification failed")

// UnknownOrganization is the healed value when the sender cannot be determined.
const UnknownOrganization = "알 수 없음"

const textLimit = 3000

// Classification is the classifier's result. TypeCode is never empty.
type Classification struct {
	TypeCode     string  `json:"doc_type"`
	TypeName     string  `json:"doc_type_name"`
	Confidence   float64 `json:"confidence"`
	Organization string  `json:"organization"`
	Reasoning    string  `json:"reasoning"`
}

// System defines the classification stage contract.
type System interface {
	Classify(ctx context.Context, text string) (*Classification, error)
}

type classifier struct {
	agent   gaconfig.AgentConfig
	prompts prompts.System
	logger  *slog.Logger
}

// New creates an agent-backed classifier.
func New(cfg gaconfig.AgentConfig, ps prompts.System, logger *slog.Logger) System {
	return &classifier{
		agent:   cfg,
		prompts: ps,
		logger:  logger.With("system", "classify"),
	}
}

type classifyResponse struct {
	DocType      string   `json:"doc_type"`
	DocTypeName  string   `json:"doc_type_name"`
	Confidence   *float64 `json:"confidence"`
	Organization string   `json:"organization"`
	Reasoning    string   `json:"reasoning"`
}

func (c *classifier) Classify(ctx context.Context, text string) (*Classification, error) {
	hints := MatchKeywords(text)

	prompt, err := prompts.Compose(
		ctx, c.prompts, prompts.StageClassify,
		renderPayload(text, hints),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: compose prompt: %w", ErrClassifyFailed, err)
	}

	a, err := agent.New(&c.agent)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrClassifyFailed, err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: chat call: %w", ErrClassifyFailed, err)
	}

	parsed, err := formatting.Parse[classifyResponse](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrClassifyFailed, err)
	}

	result := heal(parsed)

	c.logger.InfoContext(
		ctx, "classification complete",
		"type_code", result.TypeCode,
		"confidence", result.Confidence,
		"hints", hints,
	)

	return result, nil
}

// heal fills missing or unrecognized classification fields with defaults:
// unknown type codes collapse to the generic category, missing confidence
// becomes 0.5, missing organization becomes "알 수 없음".
func heal(r classifyResponse) *Classification {
	result := &Classification{
		TypeCode:     r.DocType,
		TypeName:     r.DocTypeName,
		Organization: r.Organization,
		Reasoning:    r.Reasoning,
	}

	dt, known := Lookup(result.TypeCode)
	if !known {
		dt, _ = Lookup(OtherTypeCode)
		result.TypeCode = dt.Code
	}
	if result.TypeName == "" {
		result.TypeName = dt.Description
	}

	if r.Confidence != nil && *r.Confidence >= 0 && *r.Confidence <= 1 {
		result.Confidence = *r.Confidence
	} else {
		result.Confidence = 0.5
	}

	if result.Organization == "" {
		result.Organization = UnknownOrganization
	}

	return result
}

func renderPayload(text string, hints []string) string {
	var sb strings.Builder

	sb.WriteString("사용 가능한 문서 유형:\n")
	for _, dt := range Catalog() {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", dt.Code, dt.Description))
	}

	sb.WriteString("\n=== 문서 텍스트 ===\n")
	sb.WriteString(formatting.Truncate(text, textLimit))
	sb.WriteString("\n===")

	if len(hints) > 0 {
		sb.WriteString("\n\n키워드 분석 결과 가능한 유형: ")
		sb.WriteString(strings.Join(hints, ", "))
	}

	return sb.String()
}
