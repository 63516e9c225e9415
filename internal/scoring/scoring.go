// Package scoring turns a candidate record and a job profile into an
// explainable 0-100 fit score. Scoring is pure: the profile is an explicit
// argument on every call, there is no package-level current-profile state,
// and the same inputs always produce the same result.
package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Band is one row of the ordered threshold table.
type Band struct {
	Threshold float64
	Label     string
}

// Config tunes the evidence bonus and the band table. The band table is
// evaluated top-down; the first threshold the score meets or exceeds wins.
type Config struct {
	EvidenceBonusEach float64
	EvidenceBonusCap  float64
	Bands             []Band
}

// DefaultConfig returns the standard tuning: 2.5 points per evidence item
// capped at 10, and the 85/70/50 band table.
func DefaultConfig() Config {
	return Config{
		EvidenceBonusEach: 2.5,
		EvidenceBonusCap:  10.0,
		Bands: []Band{
			{85, "Excellent fit"},
			{70, "Strong fit"},
			{50, "Moderate fit"},
			{0, "Needs improvement"},
		},
	}
}

// Score evaluates the candidate against the profile with the default config.
func Score(candidate types.CandidateRecord, profile types.JobProfile, evidenceCount int, table *skills.AliasTable) types.ScoreResult {
	return ScoreWithConfig(candidate, profile, evidenceCount, table, DefaultConfig())
}

// ScoreWithConfig is the full scoring computation. Candidate and profile
// skills are both pushed through the alias table so spelling variants match.
// The required and nice-to-have weight maps produce separate sub-scores
// combined by the profile's weight split; a profile with no nice-to-haves
// gives its full weight to the required side.
func ScoreWithConfig(candidate types.CandidateRecord, profile types.JobProfile, evidenceCount int, table *skills.AliasTable, cfg Config) types.ScoreResult {
	have := haveSet(candidate.Skills, table)

	required := matchWeights(profile.RequiredSkills, have, table)
	nice := matchWeights(profile.NiceToHaveSkills, have, table)

	var fraction float64
	if len(profile.NiceToHaveSkills) == 0 {
		fraction = required.fraction()
	} else {
		reqPct, nicePct := profile.Weights.RequiredPct, profile.Weights.NicePct
		if reqPct == 0 && nicePct == 0 {
			reqPct, nicePct = types.DefaultRequiredPct, types.DefaultNicePct
		}
		fraction = reqPct*required.fraction() + nicePct*nice.fraction()
	}

	base := fraction * 100.0
	bonus := math.Min(cfg.EvidenceBonusEach*float64(evidenceCount), cfg.EvidenceBonusCap)
	final := math.Max(0, math.Min(100, base+bonus))

	matched := append(required.matched, nice.matched...)
	missing := append(required.missing, nice.missing...)

	return types.ScoreResult{
		RawScore:      round(fraction, 4),
		Score:         round(final, 1),
		Band:          bandLabel(final, cfg.Bands),
		Matched:       matched,
		Missing:       missing,
		EvidenceBonus: bonus,
		Contributions: append(required.contributions, nice.contributions...),
		Notes:         buildNotes(matched, missing),
		Machine: types.MachineView{
			FitScore: round(final/100.0, 2),
			Gaps:     missing,
		},
	}
}

// haveSet canonicalizes the candidate's skills into a lower-cased lookup set.
func haveSet(candidateSkills []string, table *skills.AliasTable) map[string]struct{} {
	set := make(map[string]struct{}, len(candidateSkills))
	for _, s := range candidateSkills {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		set[canonKey(s, table)] = struct{}{}
	}
	return set
}

func canonKey(name string, table *skills.AliasTable) string {
	if table != nil {
		name = table.Canonical(name)
	}
	return strings.ToLower(name)
}

type weightMatch struct {
	raw           float64
	max           float64
	matched       []string
	missing       []string
	contributions []types.Contribution
}

// fraction divides raw by max, treating an empty weight map as max 1.0.
func (m weightMatch) fraction() float64 {
	if m.max == 0 {
		return 0
	}
	return m.raw / m.max
}

// matchWeights walks a weight map in sorted skill order so matched, missing
// and the contribution rows come out deterministic.
func matchWeights(weights map[string]float64, have map[string]struct{}, table *skills.AliasTable) weightMatch {
	m := weightMatch{max: 1.0}
	if len(weights) == 0 {
		return m
	}

	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)

	m.max = 0
	for _, name := range names {
		weight := weights[name]
		m.max += weight
		_, hit := have[canonKey(name, table)]
		if hit {
			m.raw += weight
			m.matched = append(m.matched, name)
		} else {
			m.missing = append(m.missing, name)
		}
		m.contributions = append(m.contributions, types.Contribution{Skill: name, Weight: weight, Hit: hit})
	}
	if m.max == 0 {
		m.max = 1.0
	}
	return m
}

func bandLabel(score float64, bands []Band) string {
	for _, b := range bands {
		if score >= b.Threshold {
			return b.Label
		}
	}
	return bands[len(bands)-1].Label
}

func buildNotes(matched, missing []string) []string {
	var notes []string
	if len(missing) > 0 {
		notes = append(notes, fmt.Sprintf("Key gaps: %s", strings.Join(missing, ", ")))
	}
	if len(matched) > 0 {
		notes = append(notes, fmt.Sprintf("Strengths: %s", strings.Join(matched, ", ")))
	} else {
		notes = append(notes, "No required skills matched yet.")
	}
	return notes
}

func round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
