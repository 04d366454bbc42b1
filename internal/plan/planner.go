package plan

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
	"github.com/iamdbstjd/DC-TermProject3/internal/retrieve"
	"github.com/iamdbstjd/DC-TermProject3/pkg/formatting"
)

// ErrPlanFailed wraps planning failures surfaced to the orchestrator.
var ErrPlanFailed = errors.New("action planning failed")

// System defines the planning stage contract.
type System interface {
	Plan(ctx context.Context, typeCode string, facts *extract.Facts, rctx *retrieve.Context) (*Plan, error)
}

type planner struct {
	agent   gaconfig.AgentConfig
	prompts prompts.System
	logger  *slog.Logger
}

// New creates an agent-backed planner.
func New(cfg gaconfig.AgentConfig, ps prompts.System, logger *slog.Logger) System {
	return &planner{
		agent:   cfg,
		prompts: ps,
		logger:  logger.With("system", "plan"),
	}
}

var actionDescriptions = map[ActionType]string{
	ActionNone:   "특별히 할 일 없음 (안내문)",
	ActionPay:    "돈을 내야 함",
	ActionCall:   "전화해서 확인/문의 필요",
	ActionVisit:  "직접 방문 필요",
	ActionCheck:  "추가 확인 필요",
	ActionSubmit: "서류 제출 필요",
	ActionUrgent: "긴급하게 처리 필요",
}

type planResponse struct {
	Steps        []string `json:"steps"`
	DeadlineInfo string   `json:"deadline_info"`
	ContactInfo  string   `json:"contact_info"`
	WhatIfIgnore string   `json:"what_if_ignore"`
}

func (p *planner) Plan(
	ctx context.Context,
	typeCode string,
	facts *extract.Facts,
	rctx *retrieve.Context,
) (*Plan, error) {
	actionType := DecideAction(typeCode, facts)
	urgency := DecideUrgency(facts)

	prompt, err := prompts.Compose(
		ctx, p.prompts, prompts.StagePlan,
		renderPayload(typeCode, facts, actionType, urgency, rctx),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: compose prompt: %w", ErrPlanFailed, err)
	}

	a, err := agent.New(&p.agent)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrPlanFailed, err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: chat call: %w", ErrPlanFailed, err)
	}

	parsed, err := formatting.Parse[planResponse](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrPlanFailed, err)
	}

	result := heal(parsed, actionType, urgency)

	p.logger.InfoContext(
		ctx, "plan complete",
		"action_type", result.ActionType,
		"urgency", result.Urgency,
		"steps", len(result.Steps),
	)

	return result, nil
}

// heal merges the generation output into a plan carrying the decided action
// type and urgency. A delivered plan never has empty steps; generations that
// produce none get the fallback step.
func heal(r planResponse, actionType ActionType, urgency Urgency) *Plan {
	result := &Plan{
		ActionType:   actionType,
		Urgency:      urgency,
		Steps:        r.Steps,
		DeadlineInfo: r.DeadlineInfo,
		ContactInfo:  r.ContactInfo,
		WhatIfIgnore: r.WhatIfIgnore,
	}

	if len(result.Steps) == 0 {
		result.Steps = []string{FallbackStep}
	}

	return result
}

func renderPayload(
	typeCode string,
	facts *extract.Facts,
	actionType ActionType,
	urgency Urgency,
	rctx *retrieve.Context,
) string {
	var sb strings.Builder

	sb.WriteString("문서 유형: ")
	sb.WriteString(typeCode)
	sb.WriteString("\n행동 유형 (변경 불가): ")
	sb.WriteString(string(actionType))
	sb.WriteString(" - ")
	sb.WriteString(actionDescriptions[actionType])
	sb.WriteString("\n긴급도 (변경 불가): ")
	sb.WriteString(string(urgency))

	sb.WriteString("\n\n핵심 정보:\n")
	sb.WriteString("- 금액: " + orNone(facts.Amount) + "\n")
	sb.WriteString("- 기한: " + orNone(facts.DueDate) + "\n")
	sb.WriteString("- 발송 기관: " + orUnknown(facts.Organization) + "\n")
	sb.WriteString("- 불이익 위험: " + string(facts.PenaltyRisk) + "\n")
	sb.WriteString("- 연락처: " + orNone(facts.Contact))

	if rctx != nil && rctx.Summary != "" {
		sb.WriteString("\n\n참고 정보: ")
		sb.WriteString(rctx.Summary)
	}

	return sb.String()
}

func orNone(v *string) string {
	if v == nil || *v == "" {
		return "없음"
	}
	return *v
}

func orUnknown(v *string) string {
	if v == nil || *v == "" {
		return "알 수 없음"
	}
	return *v
}
