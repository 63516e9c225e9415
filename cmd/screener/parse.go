package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/sections"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract a structured candidate record from resume text",
	Long:  "Parse a plain-text resume rendering into a structured CandidateRecord JSON that validates against the candidate_record schema.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseSourceID   string
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume text file (\"-\" for stdin)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseSourceID, "source-id", "", "Source identifier for the document (default: input filename)")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	text, err := readInput(parseInputFile)
	if err != nil {
		return err
	}

	sourceID := parseSourceID
	if sourceID == "" && parseInputFile != "" && parseInputFile != "-" {
		sourceID = parseInputFile
	}
	doc := ingestion.New(sourceID, text)

	table := loadAliasTable(flagAliases)
	sm := sections.Locate(doc.Text)
	record := extraction.BuildCandidate(doc, sm, table, time.Now())

	if flagVerbose {
		observability.NewPrinter(os.Stderr).PrintCandidate(&record)
	}

	return writeArtifact(record, schemas.CandidateRecordSchema, parseOutputFile)
}
