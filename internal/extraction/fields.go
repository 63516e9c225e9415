package extraction

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/dates"
	"github.com/jonathan/resume-screener/internal/sections"
	"github.com/jonathan/resume-screener/internal/types"
)

// latinJobTitles and thaiJobTitles form the vocabulary for the last-job-title
// extractor. Latin titles match on word boundaries with an optional seniority
// prefix; Thai titles match by containment.
var latinJobTitles = []string{
	"software engineer", "software developer", "backend developer", "frontend developer",
	"full stack developer", "fullstack developer", "data scientist", "data analyst",
	"data engineer", "devops engineer", "qa engineer", "test engineer",
	"product manager", "project manager", "business analyst", "system analyst",
	"accountant", "auditor", "financial analyst", "marketing manager",
	"digital marketer", "sales executive", "sales manager", "graphic designer",
	"ux designer", "ui designer", "hr officer", "hr manager", "nurse", "teacher",
	"receptionist", "chef", "barista", "waiter", "waitress", "customer service officer",
}

var thaiJobTitles = []string{
	"วิศวกรซอฟต์แวร์", "นักพัฒนาซอฟต์แวร์", "โปรแกรมเมอร์", "นักวิเคราะห์ข้อมูล",
	"นักวิทยาศาสตร์ข้อมูล", "ผู้จัดการโครงการ", "นักบัญชี", "ผู้ตรวจสอบบัญชี",
	"นักการตลาด", "พนักงานขาย", "พยาบาล", "ครู", "เชฟ", "พนักงานต้อนรับ",
}

var (
	latinTitleRe = buildLatinTitleRe()
	roleAtRe     = regexp.MustCompile(`(?i)^(.{2,60}?)\s+(?:at|@)\s+`)
	professionRe = regexp.MustCompile(`(?i)\b(engineer|developer|analyst|manager|designer|consultant|officer|scientist|accountant)\b`)
)

func buildLatinTitleRe() *regexp.Regexp {
	quoted := make([]string, len(latinJobTitles))
	for i, t := range latinJobTitles {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?i)\b(?:(?:senior|sr\.?|junior|jr\.?|lead|principal)\s+)?(?:` + strings.Join(quoted, "|") + `)\b`)
}

// Salary patterns. Amounts accept thousands separators and k/m magnitude
// suffixes; ranges accept hyphen, dash and bilingual "to".
const salaryNum = `(?:\d{1,3}(?:[,\s]\d{3})+|\d+(?:\.\d+)?\s*[kmKM]?)`

var (
	salaryLabeledRe = regexp.MustCompile(`(?i)(?:expected salary|salary expectation|เงินเดือนที่คาดหวัง|เงินเดือนที่ต้องการ)\s*[:：\-]?\s*(` + salaryNum + `(?:\s*(?:-|–|—|to|ถึง)\s*` + salaryNum + `)?)\s*(฿|THB|บาท|baht|\$|USD)?`)
	salaryNearRe    = regexp.MustCompile(`(?i)(?:salary|เงินเดือน).{0,24}?(` + salaryNum + `(?:\s*(?:-|–|—|to|ถึง)\s*` + salaryNum + `)?)\s*(฿|THB|บาท|baht|\$|USD)?`)
	salaryRangeRe   = regexp.MustCompile(`(?i)(` + salaryNum + `)\s*(?:-|–|—|to|ถึง)\s*(` + salaryNum + `)`)
	salaryStripRe   = regexp.MustCompile(`[^\d.kmKM]`)
)

var availabilityRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:available|start|can start|availability)\b[^\n]{0,20}?\b(immediately|asap|right away)\b`),
	regexp.MustCompile(`(?i)\b(immediately|asap)\b`),
	regexp.MustCompile(`(?i)\bnotice(?:\s+period)?\s*[:：\-]?\s*(\d{1,2})\s*(days?|weeks?|months?)\b`),
	regexp.MustCompile(`(?i)\b(?:available|can start)\s+in\s+(\d{1,2})\s*(days?|weeks?|months?)\b`),
	regexp.MustCompile(`(?:เริ่มงานได้ทันที|พร้อมเริ่มงานทันที)`),
	regexp.MustCompile(`(?:เริ่มงานได้ใน|แจ้งล่วงหน้า)\s*(\d{1,2})\s*(วัน|สัปดาห์|เดือน)`),
}

var (
	locationLabelRe = regexp.MustCompile(`(?i)(?:Location|Address|ที่อยู่|จังหวัด|อาศัยอยู่ที่)\s*[:：\-]\s*([^\n,]+)`)
	locationThaiRe  = regexp.MustCompile(`([A-Za-zก-๙. ]{2,30}),\s*(?:Thailand|ประเทศไทย|ไทย)`)
)

// knownPlaces backs the last-resort location scan. Latin names match whole
// words, Thai names by containment.
var knownPlaces = []string{
	"Bangkok", "Chiang Mai", "Phuket", "Khon Kaen", "Nonthaburi", "Pattaya",
	"กรุงเทพ", "กรุงเทพมหานคร", "เชียงใหม่", "ภูเก็ต", "ขอนแก่น", "นนทบุรี", "พัทยา",
}

var yearsPhraseRe = regexp.MustCompile(`(?i)(?:(?:experience|exp|ประสบการณ์)[^\d\n]{0,12})?(\d{1,2}(?:\.\d+)?)(?:\s*(?:-|–|to|ถึง)\s*(\d{1,2}(?:\.\d+)?))?\s*(?:years?|yrs?|ปี)`)

// ExtractExtras runs the companion field extractors over the document:
// last job title, expected salary, availability, location and experience
// years. All fields are optional.
func ExtractExtras(text string, sm sections.SectionMap, now time.Time) *types.CandidateExtras {
	return &types.CandidateExtras{
		LastJobTitle:    ExtractLastJobTitle(sm[sections.KeyExperience], text),
		ExpectedSalary:  ExtractSalary(text),
		Availability:    ExtractAvailability(text),
		Location:        ExtractLocation(text),
		ExperienceYears: ExtractExperienceYears(text, sm, now),
	}
}

// ExtractLastJobTitle looks for a known title in the experience block first,
// then in the document head, then anywhere in the text.
func ExtractLastJobTitle(experienceBlock, text string) string {
	if experienceBlock != "" {
		if t := titleFromVocabulary(experienceBlock); t != "" {
			return t
		}
	}
	if t := titleFromHead(text); t != "" {
		return t
	}
	return titleFromVocabulary(text)
}

func titleFromVocabulary(block string) string {
	if m := latinTitleRe.FindString(block); m != "" {
		return titleCase(strings.ToLower(m))
	}
	for _, t := range thaiJobTitles {
		if strings.Contains(block, t) {
			return t
		}
	}
	return ""
}

// titleFromHead applies the "Role at Company" and "A - B" line heuristics to
// the first lines of the document.
func titleFromHead(text string) string {
	for i, line := range strings.Split(text, "\n") {
		if i >= 8 {
			break
		}
		line = strings.TrimSpace(line)
		if m := roleAtRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
		if strings.Contains(line, " - ") {
			parts := strings.SplitN(line, " - ", 2)
			for _, side := range parts {
				if professionRe.MatchString(side) {
					return strings.TrimSpace(side)
				}
			}
		}
	}
	return ""
}

// ExtractSalary finds an expected-salary expression and normalizes it to
// "N CUR" or "LOW-HIGH CUR". A labeled statement outranks a bare number near
// a salary keyword. Returns "" when nothing matches.
func ExtractSalary(text string) string {
	for _, re := range []*regexp.Regexp{salaryLabeledRe, salaryNearRe} {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		amount, cur := m[1], normalizeCurrency(m[2])
		if r := salaryRangeRe.FindStringSubmatch(amount); r != nil {
			lo, okLo := salaryToNum(r[1])
			hi, okHi := salaryToNum(r[2])
			if okLo && okHi {
				return fmt.Sprintf("%s-%s %s", groupThousands(lo), groupThousands(hi), cur)
			}
		}
		if n, ok := salaryToNum(amount); ok {
			return fmt.Sprintf("%s %s", groupThousands(n), cur)
		}
		return strings.TrimSpace(m[0])
	}
	return ""
}

func normalizeCurrency(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "$", "USD":
		return "USD"
	default:
		return "THB"
	}
}

// salaryToNum parses an amount, applying k (thousand) and m (million)
// magnitude suffixes.
func salaryToNum(s string) (int, bool) {
	s = strings.ToLower(salaryStripRe.ReplaceAllString(s, ""))
	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		mult, s = 1_000, strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		mult, s = 1_000_000, strings.TrimSuffix(s, "m")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return int(v * mult), true
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// ExtractAvailability normalizes start-availability statements to
// "immediately", "notice N days|weeks|months" or "in N days|weeks|months".
func ExtractAvailability(text string) string {
	for _, re := range availabilityRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) < 3 || m[2] == "" {
			return "immediately"
		}
		unit := normalizeUnit(m[len(m)-1])
		n := m[len(m)-2]
		if strings.Contains(strings.ToLower(m[0]), "notice") || strings.Contains(m[0], "แจ้งล่วงหน้า") {
			return fmt.Sprintf("notice %s %s", n, unit)
		}
		return fmt.Sprintf("in %s %s", n, unit)
	}
	return ""
}

func normalizeUnit(u string) string {
	switch strings.ToLower(strings.TrimSpace(u)) {
	case "day", "days", "วัน":
		return "days"
	case "week", "weeks", "สัปดาห์":
		return "weeks"
	default:
		return "months"
	}
}

// ExtractLocation tries a labeled location line, then a ", Thailand" suffix
// pattern, then a scan over known place names.
func ExtractLocation(text string) string {
	if m := locationLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := locationThaiRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, place := range knownPlaces {
		if hasLatinLetter(place) {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(place) + `\b`)
			if re.MatchString(text) {
				return place
			}
		} else if strings.Contains(text, place) {
			return place
		}
	}
	return ""
}

func hasLatinLetter(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// ExtractExperienceYears computes total experience: summed date spans first
// (experience section when located, whole document otherwise), then an
// explicit "N years" phrase, averaging a stated range. Returns nil when
// neither source yields a value.
func ExtractExperienceYears(text string, sm sections.SectionMap, now time.Time) *float64 {
	spanSource := text
	if block := sm[sections.KeyExperience]; block != "" {
		spanSource = block
	}
	if months, ok := dates.SumSpansInText(spanSource, now); ok {
		y := dates.Years(months)
		return &y
	}
	if m := yearsPhraseRe.FindStringSubmatch(text); m != nil {
		lo, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil
		}
		y := lo
		if m[2] != "" {
			if hi, err := strconv.ParseFloat(m[2], 64); err == nil {
				y = (lo + hi) / 2
			}
		}
		y = roundTwo(y)
		return &y
	}
	return nil
}

func roundTwo(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
