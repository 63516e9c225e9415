// Package ingestion builds RawDocument values from plain-text resume renderings.
// Unicode normalization (NFKC, non-breaking spaces) is the upstream
// extractor's job by convention; this package only does minimal whitespace
// cleanup so the rest of the pipeline can assume tidy lines.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

var spaceRunRe = regexp.MustCompile(`[ \t]+`)

// CleanText applies the minimal cleanup the core is allowed to do:
// CR stripping, tab/space-run collapse, trailing-space trim. Line structure
// is preserved because the section locator and extractors are line-oriented.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRunRe.ReplaceAllString(line, " ")
		cleaned = append(cleaned, strings.TrimRight(line, " "))
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// New builds a RawDocument from already-extracted text. An empty sourceID
// gets a generated one so batch outputs always have a stable key.
func New(sourceID, text string) types.RawDocument {
	if sourceID == "" {
		sourceID = uuid.NewString()
	}
	return types.RawDocument{
		SourceID: sourceID,
		Text:     CleanText(text),
	}
}

// FromFile reads a plain-text resume file into a RawDocument. The file stem
// doubles as the source ID so the filename-based name fallback can use it.
func FromFile(path string) (types.RawDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.RawDocument{}, fmt.Errorf("document file not found: %s", path)
		}
		return types.RawDocument{}, fmt.Errorf("failed to read document file %s: %w", path, err)
	}

	base := filepath.Base(path)
	return New(base, string(content)), nil
}
