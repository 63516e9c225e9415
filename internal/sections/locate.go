// Package sections splits normalized resume text into labeled zones using
// bilingual header keyword matching.
package sections

import (
	"regexp"
	"strings"
)

// Section keys in deterministic iteration order. A header line matching two
// keyword sets is assigned to the first key in this order; callers must not
// rely on that tie-break surviving dictionary changes.
const (
	KeyExperience = "experience"
	KeyEducation  = "education"
	KeySkills     = "skills"
	KeyProjects   = "projects"
)

// SectionMap maps a section key to the contiguous text span between its
// header line and the next header (or document end). Built once per
// document and never mutated afterwards. Absent sections are absent keys.
type SectionMap map[string]string

// sectionKeys fixes the dictionary iteration order.
var sectionKeys = []string{KeyExperience, KeyEducation, KeySkills, KeyProjects}

// headerKeywords is the bilingual header dictionary. Adding a locale means
// adding rows here, not code paths.
var headerKeywords = map[string][]string{
	KeyExperience: {"experience", "work history", "employment", "ประสบการณ์", "การทำงาน"},
	KeyEducation:  {"education", "การศึกษา", "วุฒิ"},
	KeySkills:     {"skills", "technical skills", "ทักษะ", "สกิล", "ความสามารถ"},
	KeyProjects:   {"projects", "portfolio", "โปรเจกต์", "โครงงาน"},
}

// latinKeywordRes caches compiled word-boundary patterns for Latin keywords.
var latinKeywordRes = buildLatinKeywordRes()

func buildLatinKeywordRes() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp)
	for _, kws := range headerKeywords {
		for _, kw := range kws {
			if !isLatin(kw) {
				continue
			}
			res[kw] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b[:：]?`)
		}
	}
	return res
}

func isLatin(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// matchesKeyword reports whether a line is a header for the given keyword.
// Latin keywords need a word boundary; Thai script has no word-boundary
// semantics, so Thai keywords match by substring containment.
func matchesKeyword(line, keyword string) bool {
	if re, ok := latinKeywordRes[keyword]; ok {
		return re.MatchString(line)
	}
	return strings.Contains(line, keyword)
}

type headerMark struct {
	line int
	key  string
}

// Locate scans lines for section headers and returns the resulting
// SectionMap. Text assigned to a section is contiguous and non-overlapping
// with any other located section; there is no ordering guarantee across
// section types. A document with no recognizable headers yields an empty map.
func Locate(text string) SectionMap {
	lines := strings.Split(text, "\n")

	var marks []headerMark
	seen := make(map[int]bool)
	for i, line := range lines {
		for _, key := range sectionKeys {
			if seen[i] {
				break
			}
			for _, kw := range headerKeywords[key] {
				if matchesKeyword(line, kw) {
					marks = append(marks, headerMark{line: i, key: key})
					seen[i] = true
					break
				}
			}
		}
	}

	// Marks arrive in line order already; a section found twice keeps its
	// first span only.
	out := make(SectionMap, len(marks))
	for idx, mark := range marks {
		end := len(lines)
		if idx+1 < len(marks) {
			end = marks[idx+1].line
		}
		span := strings.TrimSpace(strings.Join(lines[mark.line+1:end], "\n"))
		if _, exists := out[mark.key]; !exists {
			out[mark.key] = span
		}
	}
	return out
}
