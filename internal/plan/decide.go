package plan

import (
	"strings"

	"github.com/iamdbstjd/DC-TermProject3/internal/extract"
)

// DecideAction evaluates the action-type table in priority order. The
// decision is deterministic; the generative stage renders steps consistent
// with it but never changes it.
func DecideAction(typeCode string, facts *extract.Facts) ActionType {
	hasAmount := facts.Amount != nil && *facts.Amount != ""
	hasDue := facts.DueDate != nil && *facts.DueDate != ""

	if hasAmount && hasDue {
		if facts.PenaltyRisk == extract.RiskHigh {
			return ActionUrgent
		}
		return ActionPay
	}

	if facts.ActionRequired {
		if facts.PenaltyRisk == extract.RiskHigh {
			return ActionUrgent
		}
		return ActionCheck
	}

	if strings.Contains(typeCode, "고지서") || strings.Contains(typeCode, "납부") {
		if hasAmount {
			return ActionPay
		}
	}

	if strings.Contains(typeCode, "통지서") || strings.Contains(typeCode, "체납") {
		return ActionUrgent
	}

	if strings.Contains(typeCode, "안내문") {
		return ActionNone
	}

	return ActionCheck
}

// DecideUrgency derives urgency independently of the action type.
func DecideUrgency(facts *extract.Facts) Urgency {
	switch {
	case facts.PenaltyRisk == extract.RiskHigh:
		return UrgencyHigh
	case facts.PenaltyRisk == extract.RiskMedium:
		return UrgencyMedium
	case facts.ActionRequired:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}
