package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/skills"
)

// loadAliasTable resolves the skills vocabulary: embedded defaults, with an
// external CSV layered on top when one is supplied. A broken external file
// degrades to the defaults with a warning instead of failing the run.
func loadAliasTable(path string) *skills.AliasTable {
	if path == "" {
		return skills.Default()
	}
	table, err := skills.LoadCSV(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load aliases from %s, using embedded defaults: %v\n", path, err)
		return skills.Default()
	}
	return table
}

// readInput reads the input file, or stdin when path is "-" or empty.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(content), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return string(content), nil
}

// writeArtifact marshals v with indentation, validates it against the given
// boundary schema, and writes it to outPath (stdout when empty). A schema
// that cannot be loaded warns and continues; an artifact that fails
// validation is an error.
func writeArtifact(v any, schemaRel, outPath string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := schemas.ValidateArtifact(schemaRel, jsonBytes); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
	}

	if outPath == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(outPath, append(jsonBytes, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
