// Package dates parses heterogeneous resume date-range expressions and sums
// non-overlapping durations into a total years-of-experience figure.
package dates

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/types"
)

// Present is the sentinel for an explicitly ongoing entry.
const Present = "present"

// monthNames maps bilingual month spellings to month numbers: English
// abbreviations and full names, Thai short and long forms.
var monthNames = map[string]int{
	"jan": 1, "january": 1, "feb": 2, "february": 2, "mar": 3, "march": 3,
	"apr": 4, "april": 4, "may": 5, "jun": 6, "june": 6, "jul": 7, "july": 7,
	"aug": 8, "august": 8, "sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10, "nov": 11, "november": 11, "dec": 12, "december": 12,
	"ม.ค.": 1, "ก.พ.": 2, "มี.ค.": 3, "เม.ย.": 4, "พ.ค.": 5, "มิ.ย.": 6,
	"ก.ค.": 7, "ส.ค.": 8, "ก.ย.": 9, "ต.ค.": 10, "พ.ย.": 11, "ธ.ค.": 12,
	"มกราคม": 1, "กุมภาพันธ์": 2, "มีนาคม": 3, "เมษายน": 4, "พฤษภาคม": 5,
	"มิถุนายน": 6, "กรกฎาคม": 7, "สิงหาคม": 8, "กันยายน": 9, "ตุลาคม": 10,
	"พฤศจิกายน": 11, "ธันวาคม": 12,
}

const (
	presentAlt   = `present|current|ปัจจุบัน|ปจบ\.?`
	separatorAlt = `–|—|-|to|until|through|ถึง|จนถึง`
)

// spanRe matches "<start> <sep> <end-or-present>" where each date token is
// either a named month + year or a year with an optional numeric month.
// Capture groups: 1-4 start (month word, its year, bare year, numeric
// month), 5 present marker, 6-9 end.
var spanRe = buildSpanRe()

func buildSpanRe() *regexp.Regexp {
	names := make([]string, 0, len(monthNames))
	for name := range monthNames {
		names = append(names, name)
	}
	// Longest first so "january" is not eaten by "jan".
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	for i, name := range names {
		names[i] = regexp.QuoteMeta(name)
	}
	monthAlt := strings.Join(names, "|")

	// The two-digit month alternative must come first: at the end of the
	// match nothing forces backtracking, so "0?[1-9]" would stop after the
	// "1" of "10".."12".
	part := func() string {
		return `(?:(` + monthAlt + `)\s*((?:19|20)\d{2})|((?:19|20)\d{2})(?:[./\- ](1[0-2]|0?[1-9]))?)`
	}
	return regexp.MustCompile(`(?i)` + part() +
		`\s*(?:` + separatorAlt + `)\s*` +
		`(?:(` + presentAlt + `)|` + part() + `)`)
}

// YearMonth is a calendar month; Month defaults to January when a token
// carries a bare year.
type YearMonth struct {
	Year  int
	Month int
}

// tokenFromGroups resolves one captured date token.
func tokenFromGroups(monthWord, wordYear, bareYear, numMonth string) (YearMonth, bool) {
	if wordYear != "" {
		y, _ := strconv.Atoi(wordYear)
		m, ok := monthNames[strings.ToLower(monthWord)]
		if !ok {
			m = 1
		}
		return YearMonth{Year: y, Month: m}, true
	}
	if bareYear != "" {
		y, _ := strconv.Atoi(bareYear)
		m := 1
		if numMonth != "" {
			m, _ = strconv.Atoi(numMonth)
		}
		return YearMonth{Year: y, Month: m}, true
	}
	return YearMonth{}, false
}

// Format renders a YearMonth as the normalized "YYYY-MM" string.
func (ym YearMonth) Format() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// formatToken normalizes a token for storage: "YYYY-MM" when a month was
// present in the source text, bare "YYYY" otherwise.
func formatToken(monthWord, wordYear, bareYear, numMonth string) string {
	if wordYear != "" {
		ym, _ := tokenFromGroups(monthWord, wordYear, "", "")
		return ym.Format()
	}
	if numMonth != "" {
		ym, _ := tokenFromGroups("", "", bareYear, numMonth)
		return ym.Format()
	}
	return bareYear
}

// ParseSpan extracts the first date range from text and returns normalized
// start/end strings: "YYYY", "YYYY-MM", "present", or "" when absent.
// An absent end stays empty; it is never promoted to "present".
func ParseSpan(text string) (start, end string) {
	m := spanRe.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	start = formatToken(m[1], m[2], m[3], m[4])
	if m[5] != "" {
		return start, Present
	}
	return start, formatToken(m[6], m[7], m[8], m[9])
}

// ParseYM parses a normalized "YYYY" or "YYYY-MM" string back into a
// YearMonth. "present" and empty strings are not dates and return ok=false.
func ParseYM(s string) (YearMonth, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, Present) {
		return YearMonth{}, false
	}
	parts := strings.SplitN(s, "-", 2)
	y, err := strconv.Atoi(parts[0])
	if err != nil || y < 1000 {
		return YearMonth{}, false
	}
	m := 1
	if len(parts) == 2 {
		m, err = strconv.Atoi(parts[1])
		if err != nil || m < 1 || m > 12 {
			return YearMonth{}, false
		}
	}
	return YearMonth{Year: y, Month: m}, true
}

// MonthsBetween returns the signed number of calendar months from a to b.
func MonthsBetween(a, b YearMonth) int {
	return (b.Year-a.Year)*12 + (b.Month - a.Month)
}

// SumExperienceMonths sums the durations of valid experience entries.
// An entry contributes only when its start parses and its end is either a
// parsable date or the explicit "present" sentinel, which resolves to the
// month of now. An entry with a simply absent end is unknown and excluded
// from the sum rather than counted as ongoing. Durations <= 0 are
// discarded. ok is false when no entry contributed.
func SumExperienceMonths(entries []types.Experience, now time.Time) (months int, ok bool) {
	total := 0
	counted := false
	for _, entry := range entries {
		start, startOK := ParseYM(entry.Start)
		if !startOK {
			continue
		}
		var end YearMonth
		if strings.EqualFold(strings.TrimSpace(entry.End), Present) {
			end = YearMonth{Year: now.Year(), Month: int(now.Month())}
		} else {
			var endOK bool
			end, endOK = ParseYM(entry.End)
			if !endOK {
				continue
			}
		}
		if diff := MonthsBetween(start, end); diff > 0 {
			total += diff
			counted = true
		}
	}
	return total, counted
}

// SumSpansInText totals every date span found in free text, with present
// markers resolved to now. Used when experience entries are not chunked.
func SumSpansInText(text string, now time.Time) (months int, ok bool) {
	total := 0
	counted := false
	for _, m := range spanRe.FindAllStringSubmatch(text, -1) {
		start, startOK := tokenFromGroups(m[1], m[2], m[3], m[4])
		if !startOK {
			continue
		}
		var end YearMonth
		if m[5] != "" {
			end = YearMonth{Year: now.Year(), Month: int(now.Month())}
		} else {
			var endOK bool
			end, endOK = tokenFromGroups(m[6], m[7], m[8], m[9])
			if !endOK {
				continue
			}
		}
		if diff := MonthsBetween(start, end); diff > 0 {
			total += diff
			counted = true
		}
	}
	return total, counted
}

// Years converts a month total to years rounded to two decimals.
func Years(months int) float64 {
	return math.Round(float64(months)/12.0*100) / 100
}
