// Package industry assigns a candidate to a coarse industry bucket. The
// primary signal is the industry tags of the candidate's canonical skills;
// keyword rules over the raw text are the fallback.
package industry

import (
	"regexp"
	"sort"

	"github.com/jonathan/resume-screener/internal/skills"
)

// Other is the bucket for candidates nothing else claims.
const Other = "General / Admin / Support"

// keywordRules run in fixed order when no skill carries an industry tag.
// Latin patterns are word-bounded; Thai keywords rely on containment inside
// the alternation.
var keywordRules = []struct {
	name string
	re   *regexp.Regexp
}{
	{"Tech", regexp.MustCompile(`(?i)\b(sql|python|docker|kubernetes|etl|api|software|developer|programmer|backend|frontend|devops)\b|ซอฟต์แวร์|โปรแกรมเมอร์|นักพัฒนา`)},
	{"Finance", regexp.MustCompile(`(?i)\b(accounting|bookkeep|reconcil|payable|receivable|tax|audit|budget|forecast|payroll|vat)\b|บัญชี|การเงิน|ภาษี`)},
	{"Hospitality", regexp.MustCompile(`(?i)\b(front\s*desk|reception|concierge|housekeeping|banquet|hotel|resort|barista|chef)\b|โรงแรม|ร้านอาหาร|แม่บ้าน`)},
	{"Marketing", regexp.MustCompile(`(?i)\b(seo|sem|campaign|brand|content|copywriting|analytics|advertising)\b|การตลาด|โฆษณา`)},
	{"Healthcare", regexp.MustCompile(`(?i)\b(patient\s*care|vital\s*signs?|medical\s*record|triage|cpr|emr|laboratory|pharmacy)\b|พยาบาล|คลินิก|ผู้ป่วย|เภสัช`)},
	{"Education", regexp.MustCompile(`(?i)\b(lesson\s*planning|classroom|curriculum|assessment|grading|esl|lms)\b|ครู|ติวเตอร์|การสอน|หลักสูตร`)},
}

// Classify votes across the industry tags of the canonical skills; the tag
// with the most votes wins, ties breaking alphabetically. With no tagged
// skills the keyword rules decide in order, then Other.
func Classify(text string, canonicalSkills []string, table *skills.AliasTable) string {
	if table != nil {
		counts := make(map[string]int)
		for _, skill := range canonicalSkills {
			if tag := table.IndustryFor(skill); tag != "" {
				counts[tag]++
			}
		}
		if len(counts) > 0 {
			tags := make([]string, 0, len(counts))
			for tag := range counts {
				tags = append(tags, tag)
			}
			sort.Slice(tags, func(i, j int) bool {
				if counts[tags[i]] != counts[tags[j]] {
					return counts[tags[i]] > counts[tags[j]]
				}
				return tags[i] < tags[j]
			})
			return tags[0]
		}
	}
	for _, rule := range keywordRules {
		if rule.re.MatchString(text) {
			return rule.name
		}
	}
	return Other
}
