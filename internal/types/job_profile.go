package types

import (
	"github.com/go-playground/validator/v10"
)

// Default split between the required and nice-to-have score components.
const (
	DefaultRequiredPct = 0.8
	DefaultNicePct     = 0.2
)

// ProfileWeights controls how the required and nice-to-have sub-scores are
// combined. Percentages are 0-1 fractions and should sum to 1.
type ProfileWeights struct {
	RequiredPct float64 `json:"required_pct" mapstructure:"required_pct" validate:"gte=0,lte=1"`
	NicePct     float64 `json:"nice_pct" mapstructure:"nice_pct" validate:"gte=0,lte=1"`
}

// JobProfile is the scoring target: weighted skill maps plus title keywords.
// It is supplied by an external configuration collaborator and treated as
// read-only for the lifetime of a scoring call.
type JobProfile struct {
	Name             string             `json:"name" mapstructure:"name"`
	Source           string             `json:"source,omitempty" mapstructure:"source"`
	TitleKeywords    []string           `json:"title_keywords,omitempty" mapstructure:"title_keywords"`
	RequiredSkills   map[string]float64 `json:"required_skills" mapstructure:"required_skills" validate:"required"`
	NiceToHaveSkills map[string]float64 `json:"nice_to_have_skills,omitempty" mapstructure:"nice_to_have_skills"`
	Weights          ProfileWeights     `json:"weights" mapstructure:"weights"`
}

// Validate validates the JobProfile using the validator.
func (p *JobProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Contribution is one row of the per-skill scoring breakdown.
type Contribution struct {
	Skill  string  `json:"skill"`
	Weight float64 `json:"weight"`
	Hit    bool    `json:"hit"`
}

// MachineView is the terse programmatic projection of a ScoreResult.
// It is derived from the same computation as the full result, never recomputed.
type MachineView struct {
	FitScore float64  `json:"fit_score"`
	Gaps     []string `json:"gaps"`
}

// ScoreResult is the explainable outcome of scoring a candidate against a
// job profile. The score is never a bare number: matched, missing and the
// per-skill contributions are always populated.
type ScoreResult struct {
	RawScore      float64        `json:"raw_score_0_1"`
	Score         float64        `json:"score_0_100"`
	Band          string         `json:"band"`
	Matched       []string       `json:"matched"`
	Missing       []string       `json:"missing"`
	EvidenceBonus float64        `json:"evidence_bonus"`
	Contributions []Contribution `json:"contributions"`
	Notes         []string       `json:"notes,omitempty"`
	Machine       MachineView    `json:"machine_view"`
}
