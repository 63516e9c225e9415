package skills

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LoadsEmbeddedVocabulary(t *testing.T) {
	table := Default()
	require.NotNil(t, table)
	assert.Greater(t, table.Len(), 50)

	e, ok := table.Lookup("py")
	require.True(t, ok)
	assert.Equal(t, "Python", e.Canonical)
	assert.Equal(t, "Tech", e.Industry)

	e, ok = table.Lookup("powerbi")
	require.True(t, ok)
	assert.Equal(t, "Power BI", e.Canonical)
}

func TestDefault_CachedSingleInstance(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestAliasTable_ReflexiveCanonicalNames(t *testing.T) {
	table := Default()
	for _, alias := range table.Aliases() {
		e, ok := table.Lookup(alias)
		require.True(t, ok)
		// Every canonical name must be its own alias.
		self, ok := table.Lookup(e.Canonical)
		require.True(t, ok, "canonical %q is not self-registered", e.Canonical)
		assert.Equal(t, e.Canonical, self.Canonical)
	}
}

func TestAliasTable_CaseInsensitiveLookup(t *testing.T) {
	table := Default()
	assert.Equal(t, "Python", table.Canonical("PYTHON"))
	assert.Equal(t, "Python", table.Canonical("  Python "))
	assert.Equal(t, "SQL", table.Canonical("sql"))
}

func TestAliasTable_UnknownTokenPassesThrough(t *testing.T) {
	assert.Equal(t, "Underwater Basket Weaving", Default().Canonical("Underwater Basket Weaving"))
}

func TestLoadCSV_ExternalFileLayersOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.csv")
	content := strings.Join([]string{
		"alias,canonical,industry",
		"# comment row is ignored",
		"",
		`"qgis / arcgis",GIS,Tech`,
		`"internal tool, itool",Internal Tool,`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := LoadCSV(path)
	require.NoError(t, err)

	// External rows are present; slash-delimited aliases expanded.
	assert.Equal(t, "GIS", table.Canonical("qgis"))
	assert.Equal(t, "GIS", table.Canonical("arcgis"))
	assert.Equal(t, "Internal Tool", table.Canonical("itool"))

	// Built-in defaults still resolve behind them.
	assert.Equal(t, "Python", table.Canonical("py"))
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestAliasTable_FirstRegistrationWins(t *testing.T) {
	table := NewAliasTable()
	table.Add("bi", "Power BI", "Tech")
	table.Add("bi", "Business Intelligence", "Tech")
	assert.Equal(t, "Power BI", table.Canonical("bi"))
}
