// Package simplify implements the final rendering stage: plain-language
// explanation of the analysis for readers with low literacy, with a risk
// guard that prevents softened risk reporting.
package simplify

import "github.com/iamdbstjd/DC-TermProject3/internal/extract"

// HelpChannels holds the phone, online, and in-person guidance lines shown
// to the reader. Unknown channels stay empty.
type HelpChannels struct {
	Phone  string `json:"phone,omitempty"`
	Online string `json:"online,omitempty"`
	Visit  string `json:"visit,omitempty"`
}

// Explanation is the simplification stage result. All nine fields are
// always populated; fixed fallback text fills anything generation left
// absent or empty.
type Explanation struct {
	SummaryOneLine  string            `json:"summary_one_line"`
	RiskLevel       extract.RiskLevel `json:"risk_level"`
	RiskMessage     string            `json:"risk_message"`
	WhatIsThis      string            `json:"what_is_this"`
	KeyPoints       []string          `json:"key_points"`
	StepsEasy       []string          `json:"steps_easy"`
	HelpChannels    HelpChannels      `json:"help_channels"`
	DontWorry       string            `json:"dont_worry"`
	NeedHelpMessage string            `json:"need_help_message"`
}

// Fallback text for absent or empty generation output.
const (
	DefaultSummary    = "확인이 필요한 문서입니다."
	DefaultWhatIsThis = "공공기관에서 보낸 문서입니다."
	DefaultStep       = "자세히 읽어보세요."
	DefaultHelp       = "가까운 주민센터에 문의하세요."
)

// NewExplanation returns an Explanation with every field at its fallback.
func NewExplanation() *Explanation {
	return &Explanation{
		SummaryOneLine:  DefaultSummary,
		RiskLevel:       extract.RiskLow,
		WhatIsThis:      DefaultWhatIsThis,
		KeyPoints:       []string{},
		StepsEasy:       []string{DefaultStep},
		NeedHelpMessage: DefaultHelp,
	}
}

// RiskLevelFor maps an extracted penalty risk to the reported risk level:
// HIGH and MEDIUM pass through, everything else reports LOW.
func RiskLevelFor(risk extract.RiskLevel) extract.RiskLevel {
	switch risk {
	case extract.RiskHigh, extract.RiskMedium:
		return risk
	default:
		return extract.RiskLow
	}
}
