package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMine_FindsAliasesInFreeText(t *testing.T) {
	text := "Built dashboards in Power BI and wrote python ETL jobs against PostgreSQL."
	got := Mine(text, Default())

	assert.Contains(t, got, "Power BI")
	assert.Contains(t, got, "Python")
	assert.Contains(t, got, "PostgreSQL")
	assert.Contains(t, got, "ETL")
}

func TestMine_WordBoundaryForLatinAliases(t *testing.T) {
	// "r" vs "car", "go" vs "google": mid-word fragments must not match.
	got := Mine("An excellent negotiator, googled gossip daily.", Default())
	assert.NotContains(t, got, "Go")
	assert.NotContains(t, got, "Excel")
	assert.NotContains(t, got, "SQL")
}

func TestMine_ThaiSubstringContainment(t *testing.T) {
	// Thai has no word-boundary semantics; substring containment applies.
	got := Mine("เคยทำงานบริการลูกค้าที่โรงแรมห้าดาว", Default())
	assert.Contains(t, got, "Customer Service")
}

func TestMine_CompactFormMatchesGluedSpelling(t *testing.T) {
	got := Mine("Reporting in PowerBI and GoogleAnalytics", Default())
	assert.Contains(t, got, "Power BI")
	assert.Contains(t, got, "Google Analytics")
}

func TestMine_CanonicalDeduplicated(t *testing.T) {
	got := Mine("python, Python and py", Default())
	count := 0
	for _, s := range got {
		if s == "Python" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestMine_Deterministic(t *testing.T) {
	text := "Python SQL Excel Tableau Docker Git AWS"
	first := Mine(text, Default())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Mine(text, Default()))
	}
}

func TestMine_EmptyInputs(t *testing.T) {
	assert.Nil(t, Mine("", Default()))
	assert.Nil(t, Mine("anything", nil))
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text  string
		alias string
		want  bool
	}{
		{"worked with sql daily", "sql", true},
		{"postgresql expert", "sql", false},
		{"sql", "sql", true},
		{"sql,", "sql", true},
		{"(sql)", "sql", true},
		{"mysql and sql", "sql", true},
		{"nosql", "sql", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, containsWord(tt.text, tt.alias), "%q in %q", tt.alias, tt.text)
	}
}
