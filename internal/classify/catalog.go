package classify

import "strings"

// OtherTypeCode is the generic fallback category for documents that match
// no specific type.
const OtherTypeCode = "기타_공공문서"

// DocumentType defines one entry in the document-type catalog.
type DocumentType struct {
	Code        string
	Description string
	Keywords    []string
}

// Korean public document types recognized by the classifier. Keyword sets
// drive the deterministic pre-filter; the generative stage makes the final
// call using the full catalog as context.
var catalog = []DocumentType{
	{
		Code:        "건강보험료_고지서",
		Description: "건강보험료 납부 고지서",
		Keywords:    []string{"건강보험", "보험료", "납부", "국민건강보험공단"},
	},
	{
		Code:        "국민연금_안내문",
		Description: "국민연금 관련 안내문",
		Keywords:    []string{"국민연금", "연금공단", "수급", "지급"},
	},
	{
		Code:        "세금_통지서",
		Description: "세금 관련 통지서",
		Keywords:    []string{"국세청", "세금", "소득세", "부가가치세", "종합소득", "체납"},
	},
	{
		Code:        "지방세_고지서",
		Description: "지방세 관련 고지서",
		Keywords:    []string{"지방세", "재산세", "자동차세", "주민세"},
	},
	{
		Code:        "주민센터_안내문",
		Description: "주민센터/행정복지센터 안내문",
		Keywords:    []string{"주민센터", "동사무소", "행정복지센터", "민원"},
	},
	{
		Code:        "복지_안내문",
		Description: "복지 관련 안내문",
		Keywords:    []string{"복지", "수급", "기초생활", "차상위", "지원금"},
	},
	{
		Code:        "공과금_고지서",
		Description: "공과금/관리비 고지서",
		Keywords:    []string{"전기요금", "가스요금", "수도요금", "관리비", "아파트"},
	},
	{
		Code:        "은행_통지서",
		Description: "금융기관 통지서",
		Keywords:    []string{"은행", "대출", "이자", "예금", "적금", "카드"},
	},
	{
		Code:        "법원_통지서",
		Description: "법원 관련 통지서",
		Keywords:    []string{"법원", "소송", "재판", "출석", "판결"},
	},
	{
		Code:        OtherTypeCode,
		Description: "기타 공공문서",
		Keywords:    []string{},
	},
}

// Catalog returns the document-type catalog in definition order.
func Catalog() []DocumentType {
	return catalog
}

// Lookup returns the catalog entry for a type code.
func Lookup(code string) (DocumentType, bool) {
	for _, dt := range catalog {
		if dt.Code == code {
			return dt, true
		}
	}
	return DocumentType{}, false
}

// MatchKeywords returns the type codes whose keyword sets appear in the
// text, in catalog order. A type matches on its first keyword hit.
func MatchKeywords(text string) []string {
	matches := []string{}
	for _, dt := range catalog {
		for _, kw := range dt.Keywords {
			if strings.Contains(text, kw) {
				matches = append(matches, dt.Code)
				break
			}
		}
	}
	return matches
}
