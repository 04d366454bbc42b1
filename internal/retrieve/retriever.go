package retrieve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/internal/prompts"
	"github.com/iamdbstjd/DC-TermProject3/pkg/formatting"
)

// ErrSummarizeFailed wraps summarization failures surfaced to the orchestrator.
var ErrSummarizeFailed = errors.New("context summarization failed")

const (
	// chunkTextLimit truncates each chunk shown to summarization.
	chunkTextLimit = 500
	// summaryChunks is how many top chunks summarization condenses.
	summaryChunks = 3
)

// System defines the retrieval stage contract.
type System interface {
	Retrieve(ctx context.Context, typeCode string, facts *extract.Facts, topK int) (*Context, error)
}

type retriever struct {
	searcher Searcher
	agent    gaconfig.AgentConfig
	prompts  prompts.System
	logger   *slog.Logger
}

// New creates a retriever backed by the given searcher. The searcher is an
// explicit constructor dependency; its lifecycle belongs to the caller.
func New(
	searcher Searcher,
	cfg gaconfig.AgentConfig,
	ps prompts.System,
	logger *slog.Logger,
) System {
	return &retriever{
		searcher: searcher,
		agent:    cfg,
		prompts:  ps,
		logger:   logger.With("system", "retrieve"),
	}
}

func (r *retriever) Retrieve(
	ctx context.Context,
	typeCode string,
	facts *extract.Facts,
	topK int,
) (*Context, error) {
	query := BuildQuery(typeCode, facts)
	result := NewContext(query)

	chunks, err := r.searcher.Search(ctx, query, topK)
	if err != nil {
		// Search backend unavailability degrades to empty context.
		r.logger.WarnContext(ctx, "knowledge search unavailable", "error", err)
		return result, nil
	}
	result.Chunks = chunks

	if len(chunks) > 0 {
		summary, err := r.summarize(ctx, typeCode, facts, chunks)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSummarizeFailed, err)
		}
		result.Summary = summary
	}

	r.logger.InfoContext(
		ctx, "retrieval complete",
		"query", query,
		"chunks", len(result.Chunks),
	)

	return result, nil
}

// BuildQuery derives the search query deterministically from pipeline state:
// document type, then organization if known, then a procedure hint when
// action is required, then a penalty hint when risk is at least MEDIUM.
func BuildQuery(typeCode string, facts *extract.Facts) string {
	parts := []string{typeCode}

	if facts.Organization != nil && *facts.Organization != "" {
		parts = append(parts, *facts.Organization)
	}

	if facts.ActionRequired {
		parts = append(parts, "처리방법 절차 안내")
	}

	if facts.PenaltyRisk.Rank() >= extract.RiskMedium.Rank() {
		parts = append(parts, "연체 불이익 주의사항")
	}

	return strings.Join(parts, " ")
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

func (r *retriever) summarize(
	ctx context.Context,
	typeCode string,
	facts *extract.Facts,
	chunks []Chunk,
) (string, error) {
	prompt, err := prompts.Compose(
		ctx, r.prompts, prompts.StageSummarize,
		renderPayload(typeCode, facts, chunks),
	)
	if err != nil {
		return "", fmt.Errorf("compose prompt: %w", err)
	}

	a, err := agent.New(&r.agent)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}

	parsed, err := formatting.Parse[summarizeResponse](resp.Content())
	if err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	return parsed.Summary, nil
}

func renderPayload(typeCode string, facts *extract.Facts, chunks []Chunk) string {
	var sb strings.Builder

	sb.WriteString("문서 유형: ")
	sb.WriteString(typeCode)

	if facts.Organization != nil && *facts.Organization != "" {
		sb.WriteString("\n발송 기관: ")
		sb.WriteString(*facts.Organization)
	}
	sb.WriteString("\n위험도: ")
	sb.WriteString(string(facts.PenaltyRisk))

	sb.WriteString("\n\n관련 참고 정보:\n")
	for i, c := range chunks {
		if i == summaryChunks {
			break
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", c.Source, formatting.Truncate(c.Text, chunkTextLimit)))
	}

	return sb.String()
}
