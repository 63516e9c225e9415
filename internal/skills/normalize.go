package skills

import (
	"regexp"
	"strings"
)

// tokenSplitRe splits raw skill input on common separators: commas, slashes,
// pipes, semicolons, bullet glyphs and newlines.
var tokenSplitRe = regexp.MustCompile(`[,/|;\n\x{2022}•·]+`)

// decorative character cleanup around a token.
var (
	leadingJunkRe   = regexp.MustCompile(`^[\-\x{2013}\x{2014}•·*+(\[{\s]+`)
	trailingJunkRe  = regexp.MustCompile(`[)\]}\s]+$`)
	parentheticalRe = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]|\{[^}]*\}`)
	spaceRe         = regexp.MustCompile(`\s+`)
	leadingFillerRe = regexp.MustCompile(`(?i)^(and|with|skills?:?)\s+`)
	trailingNounRe  = regexp.MustCompile(`(?i)\s+(skills?|tools?)$`)
	sentenceRe      = regexp.MustCompile(`(?i)\b(i'?m|i am|i have|seeking|excellent at|responsible for|presenting|gathering|analyzing)\b`)
)

// stopHeadersRe truncates a skills block at trailing sections that tend to
// follow it without a recognized header of their own.
var stopHeadersRe = regexp.MustCompile(`(?i)\b(certifications?|awards?|achievements?|courses?|training|publications?|career objective|objective)\b`)

// multiWordKeep lists long tool names exempt from the "too many words" noise
// filter.
var multiWordKeep = map[string]bool{
	"google analytics 4":          true,
	"search engine optimization":  true,
	"amazon web services":         true,
	"microsoft power bi desktop":  true,
	"food and beverage operations": true,
}

// cleanToken strips decorative characters, parentheticals and filler words
// from one raw token.
func cleanToken(token string) string {
	token = parentheticalRe.ReplaceAllString(token, "")
	token = leadingJunkRe.ReplaceAllString(token, "")
	token = trailingJunkRe.ReplaceAllString(token, "")
	token = spaceRe.ReplaceAllString(token, " ")
	token = leadingFillerRe.ReplaceAllString(token, "")
	token = trailingNounRe.ReplaceAllString(token, "")
	return strings.Trim(token, " .;,-–—•·|/_")
}

// isNoise rejects tokens that are prose fragments rather than skill names.
func isNoise(token string) bool {
	if token == "" {
		return true
	}
	if len(strings.Fields(token)) > 4 && !multiWordKeep[strings.ToLower(token)] {
		return true
	}
	return sentenceRe.MatchString(token)
}

// SplitTokens breaks a raw skill string into cleaned candidate tokens.
func SplitTokens(raw string) []string {
	parts := tokenSplitRe.Split(raw, -1)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.Contains(part, " & ") {
			for _, sub := range strings.Split(part, "&") {
				if t := cleanToken(sub); t != "" {
					out = append(out, t)
				}
			}
			continue
		}
		if t := cleanToken(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// TruncateAtStopHeaders cuts a skills block before trailing headerless
// sections (certifications, awards, objectives).
func TruncateAtStopHeaders(block string) string {
	if loc := stopHeadersRe.FindStringIndex(block); loc != nil {
		return strings.TrimSpace(block[:loc[0]])
	}
	return strings.TrimSpace(block)
}

// Normalize splits raw skill strings into tokens, resolves each through the
// alias table, and deduplicates case-insensitively on the canonical form,
// keeping first occurrence. Unknown tokens pass through verbatim. The
// operation is idempotent for a fixed table.
func Normalize(raw []string, table *AliasTable) []string {
	var tokens []string
	for _, item := range raw {
		tokens = append(tokens, SplitTokens(item)...)
	}

	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if isNoise(token) {
			continue
		}
		canonical := table.Canonical(token)
		key := strings.ToLower(canonical)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, canonical)
	}
	return out
}

// FromSection extracts and normalizes skills from an explicit skills block.
func FromSection(block string, table *AliasTable) []string {
	block = TruncateAtStopHeaders(block)
	if block == "" {
		return nil
	}
	return Normalize([]string{block}, table)
}

// Union merges skill lists in order, deduplicating case-insensitively on the
// canonical form with first occurrence winning.
func Union(table *AliasTable, lists ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, s := range list {
			canonical := table.Canonical(s)
			key := strings.ToLower(canonical)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, canonical)
		}
	}
	return out
}
