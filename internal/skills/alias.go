// Package skills maps free-text skill mentions to a controlled vocabulary of
// canonical names via an alias dictionary, and mines known skills out of
// whole documents.
package skills

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"sync"
)

//go:embed skills_master.csv
var embeddedVocabulary embed.FS

// Entry is the canonical name and industry tag an alias resolves to.
type Entry struct {
	Canonical string
	Industry  string
}

// AliasTable maps lower-cased alias strings to canonical entries. It is
// loaded once by the caller and read-only during a scoring run. Every
// canonical name is its own alias, so canonicalization is idempotent.
type AliasTable struct {
	entries map[string]Entry
	order   []string // aliases in load order, for deterministic mining
}

// NewAliasTable returns an empty table.
func NewAliasTable() *AliasTable {
	return &AliasTable{entries: make(map[string]Entry)}
}

// Add registers an alias for a canonical name. The first registration of an
// alias wins; the canonical name is self-registered to keep the table
// reflexive.
func (t *AliasTable) Add(alias, canonical, industry string) {
	t.add(alias, canonical, industry)
	t.add(canonical, canonical, industry)
}

func (t *AliasTable) add(alias, canonical, industry string) {
	key := strings.ToLower(strings.TrimSpace(alias))
	if key == "" || canonical == "" {
		return
	}
	if _, exists := t.entries[key]; exists {
		return
	}
	t.entries[key] = Entry{Canonical: canonical, Industry: industry}
	t.order = append(t.order, key)
}

// Lookup returns the entry for an alias, matched case-insensitively.
func (t *AliasTable) Lookup(alias string) (Entry, bool) {
	e, ok := t.entries[strings.ToLower(strings.TrimSpace(alias))]
	return e, ok
}

// Canonical resolves a token to its canonical form. Unknown tokens pass
// through unchanged: the system must not silently drop candidate-claimed
// skills it cannot recognize.
func (t *AliasTable) Canonical(token string) string {
	if e, ok := t.Lookup(token); ok {
		return e.Canonical
	}
	return token
}

// IndustryFor returns the industry tag attached to a canonical name, or "".
func (t *AliasTable) IndustryFor(canonical string) string {
	if e, ok := t.Lookup(canonical); ok {
		return e.Industry
	}
	return ""
}

// Aliases returns all aliases in load order.
func (t *AliasTable) Aliases() []string {
	return t.order
}

// Len returns the number of distinct aliases.
func (t *AliasTable) Len() int {
	return len(t.entries)
}

// aliasCellSplitRe splits a multi-alias cell on commas and slashes.
var aliasCellSplitRe = regexp.MustCompile(`[,/]`)

// readCSV loads rows of (alias, canonical[, industry]) into a table.
// Comment rows (leading #) and blank rows are ignored; a multi-alias cell
// may carry several comma/slash-delimited spellings.
func readCSV(r io.Reader, into *AliasTable) error {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read vocabulary header: %w", err)
	}

	aliasCol, canonCol, indCol := 0, 1, 2
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "alias", "aliases":
			aliasCol = i
		case "canonical":
			canonCol = i
		case "industry", "category":
			indCol = i
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read vocabulary row: %w", err)
		}
		if aliasCol >= len(row) || canonCol >= len(row) {
			continue
		}
		canonical := strings.TrimSpace(row[canonCol])
		industry := ""
		if indCol < len(row) {
			industry = strings.TrimSpace(row[indCol])
		}
		for _, alias := range aliasCellSplitRe.Split(row[aliasCol], -1) {
			if strings.TrimSpace(alias) == "" {
				continue
			}
			into.Add(alias, canonical, industry)
		}
	}
	return nil
}

var (
	defaultTableOnce sync.Once
	defaultTable     *AliasTable
)

// Default returns the built-in vocabulary, loaded once from the embedded
// CSV and cached for the run.
func Default() *AliasTable {
	defaultTableOnce.Do(func() {
		defaultTable = NewAliasTable()
		f, err := embeddedVocabulary.Open("skills_master.csv")
		if err != nil {
			// The embedded resource is compiled in; an open failure is a
			// programmer error.
			panic(fmt.Sprintf("embedded vocabulary missing: %v", err))
		}
		defer func() { _ = f.Close() }()
		if err := readCSV(f, defaultTable); err != nil {
			panic(fmt.Sprintf("embedded vocabulary unreadable: %v", err))
		}
	})
	return defaultTable
}

// LoadCSV reads an external vocabulary file, layered over the built-in
// table so external rows win for new aliases while the defaults still
// resolve. A missing or malformed file is reported so the caller can
// degrade to Default() and continue.
func LoadCSV(path string) (*AliasTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	table := NewAliasTable()
	if err := readCSV(f, table); err != nil {
		return nil, err
	}
	// Defaults fill in behind the external rows.
	for _, alias := range Default().Aliases() {
		e, _ := Default().Lookup(alias)
		table.add(alias, e.Canonical, e.Industry)
	}
	return table, nil
}
