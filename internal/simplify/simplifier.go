package simplify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
	"github.com/iamdbstjd/DC-TermProject3/internal/plan"
	"github.com/iamdbstjd/DC-TermProject3/internal/prompts"
	"github.com/iamdbstjd/DC-TermProject3/internal/retrieve"
	"github.com/iamdbstjd/DC-TermProject3/pkg/formatting"
)

// ErrSimplifyFailed wraps simplification failures surfaced to the orchestrator.
var ErrSimplifyFailed = errors.New("simplification failed")

// System defines the simplification stage contract.
type System interface {
	Simplify(
		ctx context.Context,
		typeName string,
		facts *extract.Facts,
		p *plan.Plan,
		rctx *retrieve.Context,
	) (*Explanation, error)
}

type simplifier struct {
	agent   gaconfig.AgentConfig
	prompts prompts.System
	logger  *slog.Logger
}

// New creates an agent-backed simplifier.
func New(cfg gaconfig.AgentConfig, ps prompts.System, logger *slog.Logger) System {
	return &simplifier{
		agent:   cfg,
		prompts: ps,
		logger:  logger.With("system", "simplify"),
	}
}

type simplifyResponse struct {
	SummaryOneLine  string       `json:"summary_one_line"`
	RiskLevel       string       `json:"risk_level"`
	RiskMessage     string       `json:"risk_message"`
	WhatIsThis      string       `json:"what_is_this"`
	KeyPoints       []string     `json:"key_points"`
	StepsEasy       []string     `json:"steps_easy"`
	HelpChannels    HelpChannels `json:"help_channels"`
	DontWorry       string       `json:"dont_worry"`
	NeedHelpMessage string       `json:"need_help_message"`
}

func (s *simplifier) Simplify(
	ctx context.Context,
	typeName string,
	facts *extract.Facts,
	p *plan.Plan,
	rctx *retrieve.Context,
) (*Explanation, error) {
	prompt, err := prompts.Compose(
		ctx, s.prompts, prompts.StageSimplify,
		renderPayload(typeName, facts, p, rctx),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: compose prompt: %w", ErrSimplifyFailed, err)
	}

	a, err := agent.New(&s.agent)
	if err != nil {
		return nil, fmt.Errorf("%w: create agent: %w", ErrSimplifyFailed, err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: chat call: %w", ErrSimplifyFailed, err)
	}

	parsed, err := formatting.Parse[simplifyResponse](resp.Content())
	if err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrSimplifyFailed, err)
	}

	result := heal(parsed)
	GuardRisk(result, facts.PenaltyRisk)

	s.logger.InfoContext(
		ctx, "simplification complete",
		"risk_level", result.RiskLevel,
		"steps", len(result.StepsEasy),
	)

	return result, nil
}

// heal merges the generation output into a fully defaulted Explanation.
func heal(r simplifyResponse) *Explanation {
	result := NewExplanation()

	if r.SummaryOneLine != "" {
		result.SummaryOneLine = r.SummaryOneLine
	}
	result.RiskLevel = extract.ParseRisk(r.RiskLevel).AtLeast(extract.RiskLow)
	result.RiskMessage = r.RiskMessage
	if r.WhatIsThis != "" {
		result.WhatIsThis = r.WhatIsThis
	}
	if len(r.KeyPoints) > 0 {
		result.KeyPoints = r.KeyPoints
	}
	if len(r.StepsEasy) > 0 {
		result.StepsEasy = r.StepsEasy
	}
	result.HelpChannels = r.HelpChannels
	result.DontWorry = r.DontWorry
	if r.NeedHelpMessage != "" {
		result.NeedHelpMessage = r.NeedHelpMessage
	}

	return result
}

// GuardRisk re-checks the rendered explanation against the extracted risk:
// the reported risk level may never fall below the level derived from the
// extracted penalty risk, and HIGH-risk results carry no reassurance text.
func GuardRisk(e *Explanation, risk extract.RiskLevel) {
	floor := RiskLevelFor(risk)
	e.RiskLevel = e.RiskLevel.AtLeast(floor)

	if e.RiskLevel == extract.RiskHigh {
		e.DontWorry = ""
	}
}

func renderPayload(
	typeName string,
	facts *extract.Facts,
	p *plan.Plan,
	rctx *retrieve.Context,
) string {
	var sb strings.Builder

	sb.WriteString("문서 종류: ")
	sb.WriteString(typeName)

	sb.WriteString("\n\n핵심 정보:\n")
	sb.WriteString("- 내야 할 돈: " + orNone(facts.Amount) + "\n")
	sb.WriteString("- 마감 기한: " + orNone(facts.DueDate) + "\n")
	sb.WriteString("- 보낸 곳: " + orUnknown(facts.Organization) + "\n")
	sb.WriteString("- 연락처: " + orNone(facts.Contact) + "\n")
	sb.WriteString("- 위험도 (risk_level에 그대로 사용): " + string(facts.PenaltyRisk))

	sb.WriteString("\n\n해야 할 일:\n")
	sb.WriteString("- 행동 종류: " + string(p.ActionType) + "\n")
	sb.WriteString("- 긴급도: " + string(p.Urgency) + "\n")
	sb.WriteString("- 단계들: " + strings.Join(p.Steps, " / "))

	sb.WriteString("\n\n도움받는 방법:")
	if guide := firstActionGuide(rctx); guide != "" {
		sb.WriteString(guide)
	} else {
		sb.WriteString(" 알 수 없음")
	}

	return sb.String()
}

// firstActionGuide renders the first action guide found in the retrieved
// chunk metadata. Only the first matching entry is used.
func firstActionGuide(rctx *retrieve.Context) string {
	if rctx == nil {
		return ""
	}

	for _, c := range rctx.Chunks {
		if c.ActionGuide == nil {
			continue
		}

		var sb strings.Builder
		g := c.ActionGuide

		if g.Phone != nil {
			sb.WriteString(fmt.Sprintf("\n전화: %s", g.Phone.Number))
			if g.Phone.Hours != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", g.Phone.Hours))
			}
			if g.Phone.Script != "" {
				sb.WriteString(fmt.Sprintf(" - '%s' 라고 말하세요", g.Phone.Script))
			}
		}
		if g.Online != nil {
			sb.WriteString(fmt.Sprintf("\n인터넷: %s", g.Online.URL))
			if g.Online.App != "" {
				sb.WriteString(fmt.Sprintf(" (앱: %s)", g.Online.App))
			}
		}
		if g.Visit != nil {
			sb.WriteString(fmt.Sprintf("\n방문: %s", g.Visit.Place))
			if len(g.Visit.Documents) > 0 {
				sb.WriteString(fmt.Sprintf(" (준비물: %s)", strings.Join(g.Visit.Documents, ", ")))
			}
		}

		return sb.String()
	}

	return ""
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
