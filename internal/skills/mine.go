package skills

import (
	"strings"
)

// compactStripper removes spaces, hyphens, underscores and dots so
// "PowerBI", "power-bi" and "power bi" all collapse to the same form.
var compactStripper = strings.NewReplacer(" ", "", "-", "", "_", "", ".", "")

func compact(s string) string {
	return compactStripper.Replace(strings.ToLower(s))
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// hasLatinOrDigit reports whether the alias has word-boundary semantics.
func hasLatinOrDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') {
			return true
		}
	}
	return false
}

// containsWord reports whether alias occurs in textLower delimited by
// non-word characters on both sides. Both inputs must be lower-cased.
func containsWord(textLower, alias string) bool {
	for from := 0; ; {
		idx := strings.Index(textLower[from:], alias)
		if idx < 0 {
			return false
		}
		idx += from
		startOK := idx == 0 || !isWordByte(textLower[idx-1])
		endIdx := idx + len(alias)
		endOK := endIdx == len(textLower) || !isWordByte(textLower[endIdx])
		if startOK && endOK {
			return true
		}
		from = idx + 1
	}
}

// aliasInText tests alias containment: word-boundary-aware for Latin or
// alphanumeric aliases, plain substring for script-based aliases (languages
// without word-boundary semantics), with a compact-form fallback so glued
// spellings like "PowerBI" still hit "power bi".
func aliasInText(textLower, textCompact, alias string) bool {
	if hasLatinOrDigit(alias) {
		if containsWord(textLower, alias) {
			return true
		}
	} else if strings.Contains(textLower, alias) {
		return true
	}
	// Compact fallback for multiword aliases only, so glued spellings like
	// "PowerBI" hit "power bi". Single-word aliases would match inside
	// unrelated words ("excel" in "excellent").
	if alias == compact(alias) {
		return false
	}
	aliasCompact := compact(alias)
	return aliasCompact != "" && strings.Contains(textCompact, aliasCompact)
}

// Mine scans the whole document for known aliases and returns their
// canonical forms, deduplicated, in table load order. Mining is higher
// recall and lower precision than an explicit skills section; callers union
// the two sources.
func Mine(text string, table *AliasTable) []string {
	if text == "" || table == nil {
		return nil
	}
	textLower := strings.ToLower(text)
	textCompact := compact(text)

	seen := make(map[string]struct{})
	var out []string
	for _, alias := range table.Aliases() {
		entry, _ := table.Lookup(alias)
		key := strings.ToLower(entry.Canonical)
		if _, dup := seen[key]; dup {
			continue
		}
		if aliasInText(textLower, textCompact, alias) {
			seen[key] = struct{}{}
			out = append(out, entry.Canonical)
		}
	}
	return out
}
