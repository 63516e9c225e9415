// Package extraction pulls atomic candidate attributes out of raw resume
// text and per-section text using locale-aware pattern rules with layered
// fallbacks. Every extractor is pure and independent; a field that cannot
// be extracted is left empty, never an error.
package extraction

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/dates"
	"github.com/jonathan/resume-screener/internal/industry"
	"github.com/jonathan/resume-screener/internal/sections"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\- ()]{7,}\d`)

	locationLineRe = regexp.MustCompile(`(?i)(Bangkok|Thailand|กรุงเทพ|ถนน|แขวง|เขต)`)

	chunkSplitRe  = regexp.MustCompile(`\n{2,}`)
	bulletGlyphRe = regexp.MustCompile(`^[\x{2022}•·\-–—*+]+\s*`)

	degreeRe      = regexp.MustCompile(`(?i)(B\.?Sc\.?|BEng|BBA|M\.?Sc\.?|MBA|Bachelor|Master|Ph\.?D\.?|ปริญญาตรี|ปริญญาโท|ปริญญาเอก)`)
	institutionRe = regexp.MustCompile(`(?i)(University|College|มหาวิทยาลัย|วิทยาลัย)[^,\n]*`)
)

// contactScanLines bounds how deep into the document the location hint scan
// looks.
const contactScanLines = 15

// maxFallbackYears caps the block-count experience heuristic.
const maxFallbackYears = 5.0

// BuildCandidate assembles a CandidateRecord from a document: per-section
// extraction, skill canonicalization with whole-document mining, the
// companion field extractor, and the experience-years computation with its
// coarse fallback.
func BuildCandidate(doc types.RawDocument, sm sections.SectionMap, table *skills.AliasTable, now time.Time) types.CandidateRecord {
	text := doc.Text

	record := types.CandidateRecord{
		SourceID:   doc.SourceID,
		Name:       ExtractName(text, doc.SourceID),
		Contacts:   ExtractContacts(text),
		Education:  ExtractEducation(sm[sections.KeyEducation]),
		Experience: ExtractExperiences(sm[sections.KeyExperience]),
	}

	sectionSkills := skills.FromSection(sm[sections.KeySkills], table)
	mined := skills.Mine(text, table)
	record.Skills = skills.Union(table, sectionSkills, mined)

	record.Industry = industry.Classify(text, record.Skills, table)

	record.Merge(ExtractExtras(text, sm, now))

	if record.ExperienceYears == 0 {
		if months, ok := dates.SumExperienceMonths(record.Experience, now); ok {
			record.ExperienceYears = dates.Years(months)
		} else if blocks := len(record.Experience); blocks > 0 {
			// Coarse heuristic of last resort: one experience block is
			// roughly one year, capped.
			years := float64(blocks)
			if years > maxFallbackYears {
				years = maxFallbackYears
			}
			record.ExperienceYears = years
			record.Notes = append(record.Notes, "experience years estimated from block count; no parsable date spans")
		}
	}

	if record.Name == "" {
		record.Notes = append(record.Notes, "name not found")
	}
	if len(record.Skills) == 0 {
		record.Notes = append(record.Notes, "no skills recognized")
	}

	return record
}

// ExtractContacts pulls email, phone and a location hint out of the text.
// Empty fields mean the pattern never matched.
func ExtractContacts(text string) types.Contacts {
	c := types.Contacts{
		Email: emailRe.FindString(text),
		Phone: strings.TrimSpace(phoneRe.FindString(text)),
	}
	for i, line := range strings.Split(text, "\n") {
		if i >= contactScanLines {
			break
		}
		if locationLineRe.MatchString(line) {
			c.Location = strings.TrimSpace(line)
			break
		}
	}
	return c
}

// splitChunks breaks a section block into blank-line separated chunks.
func splitChunks(block string) []string {
	var out []string
	for _, chunk := range chunkSplitRe.Split(block, -1) {
		if chunk = strings.TrimSpace(chunk); chunk != "" {
			out = append(out, chunk)
		}
	}
	return out
}

// splitBullets strips bullet glyphs from every non-empty line of a chunk.
func splitBullets(chunk string) []string {
	var items []string
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSpace(bulletGlyphRe.ReplaceAllString(strings.TrimSpace(line), ""))
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// ExtractExperiences parses the experience section into entries. The first
// line of each chunk is split on " at ", " @ " or " - " to separate title
// from employer; with " - " the longer side is taken as the employer.
func ExtractExperiences(block string) []types.Experience {
	if block == "" {
		return nil
	}
	var out []types.Experience
	for _, chunk := range splitChunks(block) {
		start, end := dates.ParseSpan(chunk)

		first := chunk
		if idx := strings.IndexByte(chunk, '\n'); idx >= 0 {
			first = chunk[:idx]
		}

		var title, employer string
		switch {
		case strings.Contains(first, " at "):
			parts := strings.SplitN(first, " at ", 2)
			title, employer = parts[0], parts[1]
		case strings.Contains(first, " @ "):
			parts := strings.SplitN(first, " @ ", 2)
			title, employer = parts[0], parts[1]
		case strings.Contains(first, " - "):
			parts := strings.SplitN(first, " - ", 2)
			if len(parts[1]) > len(parts[0]) {
				title, employer = parts[0], parts[1]
			} else {
				title, employer = parts[1], parts[0]
			}
		}

		out = append(out, types.Experience{
			Employer: strings.TrimSpace(employer),
			Title:    strings.TrimSpace(title),
			Start:    start,
			End:      end,
			Bullets:  splitBullets(chunk),
		})
	}
	return out
}

// ExtractEducation parses the education section into degree/institution
// entries with the same date-span handling as experience.
func ExtractEducation(block string) []types.Education {
	if block == "" {
		return nil
	}
	var out []types.Education
	for _, chunk := range splitChunks(block) {
		start, end := dates.ParseSpan(chunk)
		entry := types.Education{Start: start, End: end}
		if m := degreeRe.FindString(chunk); m != "" {
			entry.Degree = m
		}
		if m := institutionRe.FindString(chunk); m != "" {
			entry.Institution = strings.TrimSpace(m)
		}
		out = append(out, entry)
	}
	return out
}
