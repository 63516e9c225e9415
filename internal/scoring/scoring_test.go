package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

func halfPythonHalfSQL() types.JobProfile {
	return types.JobProfile{
		Name:           "data_analyst",
		RequiredSkills: map[string]float64{"Python": 0.5, "SQL": 0.5},
	}
}

func TestScore_HalfMatchLandsOnModerateFit(t *testing.T) {
	candidate := types.CandidateRecord{Skills: []string{"Python"}}

	result := Score(candidate, halfPythonHalfSQL(), 0, skills.Default())

	assert.InDelta(t, 50.0, result.Score, 0.001)
	assert.Equal(t, "Moderate fit", result.Band)
	assert.Equal(t, []string{"Python"}, result.Matched)
	assert.Equal(t, []string{"SQL"}, result.Missing)
	assert.InDelta(t, 0.5, result.RawScore, 0.001)
}

func TestScore_AliasVariantsMatchBothSides(t *testing.T) {
	candidate := types.CandidateRecord{Skills: []string{"py", "postgres"}}
	profile := types.JobProfile{
		RequiredSkills: map[string]float64{"python": 0.5, "postgresql": 0.5},
	}

	result := Score(candidate, profile, 0, skills.Default())

	assert.InDelta(t, 100.0, result.Score, 0.001)
	assert.Equal(t, "Excellent fit", result.Band)
	assert.Empty(t, result.Missing)
}

func TestScore_EvidenceBonusIsCapped(t *testing.T) {
	candidate := types.CandidateRecord{Skills: []string{"Python"}}

	result := Score(candidate, halfPythonHalfSQL(), 5, skills.Default())

	assert.InDelta(t, 10.0, result.EvidenceBonus, 0.001)
	assert.InDelta(t, 60.0, result.Score, 0.001)
}

func TestScore_EvidenceAloneStaysInLowestBand(t *testing.T) {
	candidate := types.CandidateRecord{Skills: nil}

	result := Score(candidate, halfPythonHalfSQL(), 10, skills.Default())

	assert.InDelta(t, 10.0, result.Score, 0.001)
	assert.Equal(t, "Needs improvement", result.Band)
	assert.Contains(t, result.Notes, "No required skills matched yet.")
}

func TestScore_ClampsAtHundred(t *testing.T) {
	candidate := types.CandidateRecord{Skills: []string{"Python", "SQL"}}

	result := Score(candidate, halfPythonHalfSQL(), 4, skills.Default())

	assert.InDelta(t, 100.0, result.Score, 0.001)
}

func TestScore_NiceToHaveSplit(t *testing.T) {
	candidate := types.CandidateRecord{Skills: []string{"Welding"}}
	profile := types.JobProfile{
		RequiredSkills:   map[string]float64{"Welding": 1.0},
		NiceToHaveSkills: map[string]float64{"Forklift": 1.0},
	}

	result := Score(candidate, profile, 0, nil)

	// Required side fully hit, nice side fully missed, default 0.8/0.2 split.
	assert.InDelta(t, 80.0, result.Score, 0.001)
	assert.Equal(t, "Strong fit", result.Band)
	assert.Equal(t, []string{"Welding"}, result.Matched)
	assert.Equal(t, []string{"Forklift"}, result.Missing)
}

func TestScore_ExplicitWeightSplit(t *testing.T) {
	candidate := types.CandidateRecord{Skills: []string{"Forklift"}}
	profile := types.JobProfile{
		RequiredSkills:   map[string]float64{"Welding": 1.0},
		NiceToHaveSkills: map[string]float64{"Forklift": 1.0},
		Weights:          types.ProfileWeights{RequiredPct: 0.5, NicePct: 0.5},
	}

	result := Score(candidate, profile, 0, nil)

	assert.InDelta(t, 50.0, result.Score, 0.001)
}

func TestScore_EmptyRequiredSkills(t *testing.T) {
	candidate := types.CandidateRecord{Skills: []string{"Python"}}
	profile := types.JobProfile{RequiredSkills: map[string]float64{}}

	result := Score(candidate, profile, 0, skills.Default())

	assert.InDelta(t, 0.0, result.Score, 0.001)
	assert.Equal(t, "Needs improvement", result.Band)
}

func TestScore_ContributionsAlwaysPopulatedAndSorted(t *testing.T) {
	candidate := types.CandidateRecord{Skills: []string{"SQL"}}
	profile := types.JobProfile{
		RequiredSkills: map[string]float64{"SQL": 0.6, "Excel": 0.4},
	}

	result := Score(candidate, profile, 0, skills.Default())

	require.Len(t, result.Contributions, 2)
	assert.Equal(t, types.Contribution{Skill: "Excel", Weight: 0.4, Hit: false}, result.Contributions[0])
	assert.Equal(t, types.Contribution{Skill: "SQL", Weight: 0.6, Hit: true}, result.Contributions[1])
	assert.Contains(t, result.Notes[0], "Key gaps: Excel")
}

func TestScore_MachineViewDerivedFromSameComputation(t *testing.T) {
	candidate := types.CandidateRecord{Skills: []string{"Python"}}

	result := Score(candidate, halfPythonHalfSQL(), 0, skills.Default())

	assert.InDelta(t, 0.5, result.Machine.FitScore, 0.001)
	assert.Equal(t, result.Missing, result.Machine.Gaps)
}

func TestScore_Deterministic(t *testing.T) {
	candidate := types.CandidateRecord{Skills: []string{"Python", "Excel"}}
	profile := types.JobProfile{
		RequiredSkills: map[string]float64{"Python": 0.4, "SQL": 0.3, "Excel": 0.3},
	}

	first := Score(candidate, profile, 1, skills.Default())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score(candidate, profile, 1, skills.Default()))
	}
}
