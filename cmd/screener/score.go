package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/profile"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate record against a job profile",
	Long:  "Score a CandidateRecord JSON against a job profile supplied inline, as free text, or as a named template, producing an explainable ScoreResult JSON.",
	RunE:  runScore,
}

var (
	scoreCandidateFile  string
	scoreOutputFile     string
	scoreProfileInline  string
	scoreProfileText    string
	scoreProfileTemplat string
	scoreEvidence       int
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCandidateFile, "candidate", "c", "", "Path to CandidateRecord JSON (\"-\" for stdin)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreProfileInline, "profile-inline", "", "Inline JSON job profile")
	scoreCmd.Flags().StringVar(&scoreProfileText, "profile-text", "", "Free-text job description to mine skills from")
	scoreCmd.Flags().StringVar(&scoreProfileTemplat, "profile-template", "", "Named profile from the templates YAML")
	scoreCmd.Flags().IntVar(&scoreEvidence, "evidence", 0, "Count of corroborating evidence items (portfolio links, certificates)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	raw, err := readInput(scoreCandidateFile)
	if err != nil {
		return err
	}

	var candidate types.CandidateRecord
	if err := json.Unmarshal([]byte(raw), &candidate); err != nil {
		return fmt.Errorf("failed to parse candidate JSON: %w", err)
	}

	table := loadAliasTable(flagAliases)
	jobProfile, err := profile.Resolve(profile.Options{
		Inline:        scoreProfileInline,
		Text:          scoreProfileText,
		Template:      scoreProfileTemplat,
		TemplatesPath: flagTemplates,
	}, table)
	if err != nil {
		return err
	}

	result := scoring.Score(candidate, jobProfile, scoreEvidence, table)

	if flagVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobProfile(&jobProfile)
		printer.PrintScore(&result)
	}

	return writeArtifact(result, schemas.ScoreResultSchema, scoreOutputFile)
}
