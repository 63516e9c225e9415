package extraction

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	nameLabelRe = regexp.MustCompile(`(?i)^\s*(?:name|ชื่อ(?:-นามสกุล)?)\s*[:：\-]\s*(.+)$`)

	latinNameWordRe = regexp.MustCompile(`^[A-Z][A-Za-z'.\-]+$`)
	thaiNameLineRe  = regexp.MustCompile(`^[ก-๙]+(?:\s+[ก-๙]+){1,4}$`)
	lowerLineRe     = regexp.MustCompile(`^[a-z'.\-]+(?:\s+[a-z'.\-]+){1,4}$`)

	digitRunRe = regexp.MustCompile(`\d{3}`)

	boilerplateRe = regexp.MustCompile(`(?i)\b(resume|curriculum vitae|cv|profile|ประวัติ|เรซูเม่)\b`)

	fileNoiseRe = regexp.MustCompile(`(?i)resume|cv|เรซูเม่|ประวัติ|\d+`)
	fileSepRe   = regexp.MustCompile(`[_\-.]+`)
)

// headScanLines bounds how many leading lines the name strategies inspect.
const headScanLines = 20

// nameStrategy returns a candidate name and whether it fired. Strategies run
// in a fixed order; the first hit that survives validation wins.
type nameStrategy func(lines []string, sourceHint string) string

var nameStrategies = []nameStrategy{
	nameFromLabel,
	nameFromShapedLine,
	nameFromLowercaseLine,
	nameFromEmail,
	nameFromFilename,
	nameFromFirstShortLine,
}

// ExtractName walks the strategy chain over the document head. sourceHint is
// the document's source identifier, usually a filename; it feeds the email
// and filename strategies. Returns "" when every strategy misses.
func ExtractName(text, sourceHint string) string {
	lines := headLines(text)
	for _, strategy := range nameStrategies {
		if name := strategy(lines, sourceHint); name != "" && plausibleName(name) {
			return name
		}
	}
	return ""
}

func headLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
		if len(out) >= headScanLines {
			break
		}
	}
	return out
}

// plausibleName is the loose validation gate every strategy result passes
// through: no email markers, no long digit runs, bounded length.
func plausibleName(s string) bool {
	if s == "" || len(s) > 70 {
		return false
	}
	if strings.ContainsRune(s, '@') || digitRunRe.MatchString(s) {
		return false
	}
	return true
}

func nameFromLabel(lines []string, _ string) string {
	for _, line := range lines {
		if m := nameLabelRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// looksLikeLatinName accepts 2-5 capitalized words, tolerating one
// out-of-shape word for particles and initials.
func looksLikeLatinName(line string) bool {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 5 {
		return false
	}
	shaped := 0
	for _, w := range words {
		if latinNameWordRe.MatchString(w) {
			shaped++
		}
	}
	return shaped >= len(words)-1 && shaped >= 2
}

func nameFromShapedLine(lines []string, _ string) string {
	for _, line := range lines {
		if boilerplateRe.MatchString(line) || strings.ContainsRune(line, '@') || digitRunRe.MatchString(line) {
			continue
		}
		if looksLikeLatinName(line) || thaiNameLineRe.MatchString(line) {
			return line
		}
	}
	return ""
}

func nameFromLowercaseLine(lines []string, _ string) string {
	for _, line := range lines {
		if boilerplateRe.MatchString(line) {
			continue
		}
		if lowerLineRe.MatchString(line) {
			return titleCase(line)
		}
	}
	return ""
}

// nameFromEmail rebuilds a name from the local part of the first email
// address, splitting on common separators and dropping resume noise words.
func nameFromEmail(lines []string, _ string) string {
	for _, line := range lines {
		addr := emailRe.FindString(line)
		if addr == "" {
			continue
		}
		local := addr[:strings.IndexByte(addr, '@')]
		var frags []string
		for _, frag := range fileSepRe.Split(local, -1) {
			frag = strings.ToLower(strings.TrimSpace(frag))
			if frag == "" || frag == "resume" || frag == "cv" || digitRunRe.MatchString(frag) {
				continue
			}
			frags = append(frags, frag)
			if len(frags) == 3 {
				break
			}
		}
		if len(frags) == 0 {
			return ""
		}
		return titleCase(strings.Join(frags, " "))
	}
	return ""
}

func nameFromFilename(_ []string, sourceHint string) string {
	if sourceHint == "" {
		return ""
	}
	base := filepath.Base(sourceHint)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = fileNoiseRe.ReplaceAllString(base, " ")
	base = strings.TrimSpace(fileSepRe.ReplaceAllString(base, " "))
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return ""
	}
	if thaiNameLineRe.MatchString(base) {
		return base
	}
	cased := titleCase(base)
	if looksLikeLatinName(cased) {
		return cased
	}
	return ""
}

// nameFromFirstShortLine is the last resort: the first short line near the
// top that is not boilerplate or contact data.
func nameFromFirstShortLine(lines []string, _ string) string {
	for i, line := range lines {
		if i >= 8 {
			break
		}
		if len(line) > 70 || boilerplateRe.MatchString(line) {
			continue
		}
		if strings.ContainsRune(line, '@') || digitRunRe.MatchString(line) {
			continue
		}
		return line
	}
	return ""
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
