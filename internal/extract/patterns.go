package extract

import "regexp"

// Candidates holds pattern-matched values per family, deduplicated by exact
// matched string in first-encountered order and capped before refinement.
type Candidates struct {
	Amounts  []string `json:"amounts"`
	Dates    []string `json:"dates"`
	Phones   []string `json:"phones"`
	Accounts []string `json:"accounts"`
}

// Candidate caps per family shown to the refinement stage.
const (
	amountCap  = 5
	dateCap    = 5
	phoneCap   = 5
	accountCap = 3
)

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,3}(?:,\d{3})*\s*원`),
	regexp.MustCompile(`₩\s*\d{1,3}(?:,\d{3})*`),
	regexp.MustCompile(`금\s*\d{1,3}(?:,\d{3})*\s*원`),
	regexp.MustCompile(`합계[:\s]*\d{1,3}(?:,\d{3})*\s*원`),
	regexp.MustCompile(`총액[:\s]*\d{1,3}(?:,\d{3})*\s*원`),
	regexp.MustCompile(`납부금액[:\s]*\d{1,3}(?:,\d{3})*\s*원`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}[-./년]\s*\d{1,2}[-./월]\s*\d{1,2}일?`),
	regexp.MustCompile(`\d{4}\.\d{2}\.\d{2}`),
	regexp.MustCompile(`납부기한[:\s]*(\d{4}[-./]\d{1,2}[-./]\d{1,2})`),
	regexp.MustCompile(`마감일[:\s]*(\d{4}[-./]\d{1,2}[-./]\d{1,2})`),
	regexp.MustCompile(`기한[:\s]*(\d{4}[-./]\d{1,2}[-./]\d{1,2})`),
}

var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{2,4}[-)\s]\d{3,4}[-\s]\d{4}`),
	regexp.MustCompile(`\b1\d{3}\b`),
	regexp.MustCompile(`전화[:\s]*([\d-]+)`),
	regexp.MustCompile(`연락처[:\s]*([\d-]+)`),
	regexp.MustCompile(`문의[:\s]*([\d-]+)`),
}

var accountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`계좌[^\d]*(\d{2,4}[-\s]?\d{2,6}[-\s]?\d{2,6})`),
	regexp.MustCompile(`납부번호[:\s]*([\d-]+)`),
	regexp.MustCompile(`가상계좌[:\s]*([\d-]+)`),
}

// Scan runs every pattern family over the text and collects distinct matches
// across all patterns in first-encountered order. Scan is pure and
// idempotent; it never consults the model.
func Scan(text string) Candidates {
	return Candidates{
		Amounts:  scanFamily(text, amountPatterns, amountCap),
		Dates:    scanFamily(text, datePatterns, dateCap),
		Phones:   scanFamily(text, phonePatterns, phoneCap),
		Accounts: scanFamily(text, accountPatterns, accountCap),
	}
}

// Empty reports whether no family produced a candidate.
func (c Candidates) Empty() bool {
	return len(c.Amounts) == 0 &&
		len(c.Dates) == 0 &&
		len(c.Phones) == 0 &&
		len(c.Accounts) == 0
}

func scanFamily(text string, patterns []*regexp.Regexp, limit int) []string {
	seen := make(map[string]struct{})
	out := []string{}

	for _, p := range patterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			// Labeled patterns capture the value; bare patterns use the full match.
			v := m[0]
			if len(m) > 1 && m[1] != "" {
				v = m[1]
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
			if len(out) == limit {
				return out
			}
		}
	}

	return out
}
