package extract

import (
	"slices"
	"strings"
)

// Lexical risk markers. 독촉 also covers 독촉장; 기한 경과 is checked with and
// without the space.
var highRiskMarkers = []string{"독촉", "최고장", "체납", "연체", "미납", "압류"}

var mediumRiskMarkers = []string{"과태료", "가산금", "기한 경과", "기한경과", "기한 초과"}

// EnforceRisk applies the risk floor to facts based on markers present in
// the source text: high-risk markers force HIGH and required action,
// medium-risk markers force at least MEDIUM. The refinement stage can raise
// the risk but never lower it below this floor.
func EnforceRisk(text string, f *Facts) {
	for _, m := range highRiskMarkers {
		if strings.Contains(text, m) {
			f.PenaltyRisk = RiskHigh
			f.ActionRequired = true
			f.UrgencyKeywords = appendMissing(f.UrgencyKeywords, m)
		}
	}

	for _, m := range mediumRiskMarkers {
		if strings.Contains(text, m) {
			f.PenaltyRisk = f.PenaltyRisk.AtLeast(RiskMedium)
			f.UrgencyKeywords = appendMissing(f.UrgencyKeywords, m)
		}
	}
}

func appendMissing(keywords []string, k string) []string {
	if slices.Contains(keywords, k) {
		return keywords
	}
	return append(keywords, k)
}
