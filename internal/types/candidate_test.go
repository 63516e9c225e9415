package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateRecord_MergeLastWriterWins(t *testing.T) {
	years := 3.5
	record := &CandidateRecord{
		Name:         "From Header",
		LastJobTitle: "Analyst",
		Contacts:     Contacts{Location: "Bangkok"},
	}

	record.Merge(&CandidateExtras{
		Name:            "From Extras",
		ExperienceYears: &years,
		Availability:    "immediately",
	})

	assert.Equal(t, "From Extras", record.Name)
	assert.Equal(t, 3.5, record.ExperienceYears)
	assert.Equal(t, "immediately", record.Availability)
	// Empty extras fields never clobber existing values.
	assert.Equal(t, "Analyst", record.LastJobTitle)
	assert.Equal(t, "Bangkok", record.Contacts.Location)
}

func TestCandidateRecord_MergeNilExtras(t *testing.T) {
	record := &CandidateRecord{Name: "Unchanged"}
	record.Merge(nil)
	assert.Equal(t, "Unchanged", record.Name)
}

func TestCandidateRecord_Validate(t *testing.T) {
	record := &CandidateRecord{
		Name:     "Jane Doe",
		Contacts: Contacts{Email: "jane@example.com"},
	}
	assert.NoError(t, record.Validate())

	record.Contacts.Email = "not-an-email"
	assert.Error(t, record.Validate())
}

func TestCandidateRecord_StableJSONFieldNames(t *testing.T) {
	record := &CandidateRecord{
		Name:       "Jane Doe",
		Contacts:   Contacts{Email: "jane@example.com", Phone: "+66 81 234 5678"},
		Education:  []Education{},
		Experience: []Experience{{Employer: "Acme", Title: "Analyst", Start: "2020-01", End: "present"}},
		Skills:     []string{"Python", "SQL"},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	// Downstream reports and filters key off these names directly.
	for _, key := range []string{"name", "contacts", "education", "experience", "skills"} {
		assert.Contains(t, doc, key)
	}
	contacts := doc["contacts"].(map[string]interface{})
	assert.Contains(t, contacts, "email")
	assert.Contains(t, contacts, "phone")
	assert.Contains(t, contacts, "location")
}

func TestJobProfile_Validate(t *testing.T) {
	profile := &JobProfile{
		Name:           "data_analyst",
		RequiredSkills: map[string]float64{"Python": 0.5, "SQL": 0.5},
		Weights:        ProfileWeights{RequiredPct: DefaultRequiredPct, NicePct: DefaultNicePct},
	}
	assert.NoError(t, profile.Validate())

	profile.Weights.RequiredPct = 1.5
	assert.Error(t, profile.Validate())
}

func TestScoreResult_StableJSONFieldNames(t *testing.T) {
	result := &ScoreResult{
		RawScore: 0.5,
		Score:    50,
		Band:     "Moderate fit",
		Matched:  []string{"Python"},
		Missing:  []string{"SQL"},
		Contributions: []Contribution{
			{Skill: "Python", Weight: 0.5, Hit: true},
			{Skill: "SQL", Weight: 0.5, Hit: false},
		},
		Machine: MachineView{FitScore: 0.5, Gaps: []string{"SQL"}},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	for _, key := range []string{"raw_score_0_1", "score_0_100", "band", "matched", "missing", "evidence_bonus", "contributions", "machine_view"} {
		assert.Contains(t, doc, key)
	}
	machine := doc["machine_view"].(map[string]interface{})
	assert.Contains(t, machine, "fit_score")
	assert.Contains(t, machine, "gaps")
}
