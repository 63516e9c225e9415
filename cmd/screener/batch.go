package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logging"
	"github.com/jonathan/resume-screener/internal/profile"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/sections"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse and score a directory of resume text files",
	Long:  "Process every .txt file in a directory: extract a candidate record, score it against the supplied job profile, and write per-document JSON artifacts. One failing document is logged and skipped; the batch continues.",
	RunE:  runBatch,
}

var (
	batchInDir           string
	batchProfileInline   string
	batchProfileText     string
	batchProfileTemplate string
	batchEvidence        int
)

func init() {
	batchCmd.Flags().StringVar(&batchInDir, "in-dir", "", "Directory of resume .txt files (required)")
	batchCmd.Flags().String("out-dir", "out", "Directory for per-document JSON artifacts")
	batchCmd.Flags().Int("workers", 4, "Concurrent document workers")
	batchCmd.Flags().StringVar(&batchProfileInline, "profile-inline", "", "Inline JSON job profile")
	batchCmd.Flags().StringVar(&batchProfileText, "profile-text", "", "Free-text job description to mine skills from")
	batchCmd.Flags().StringVar(&batchProfileTemplate, "profile-template", "", "Named profile from the templates YAML")
	batchCmd.Flags().IntVar(&batchEvidence, "evidence", 0, "Evidence count applied to every document")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if batchInDir == "" {
		return fmt.Errorf("--in-dir is required")
	}

	cfg, err := config.Load(flagConfig, cmd.Flags())
	if err != nil {
		return err
	}
	cfg.Verbose = cfg.Verbose || flagVerbose
	cfg.JSONLogs = cfg.JSONLogs || flagJSONLogs
	cfg.Debug = cfg.Debug || flagDebug

	logger, err := logging.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	files, err := listResumeFiles(batchInDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .txt files in %s", batchInDir)
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Shared read-only state: alias table and profile are resolved once.
	table := loadAliasTable(flagAliases)
	jobProfile, err := profile.Resolve(profile.Options{
		Inline:        batchProfileInline,
		Text:          batchProfileText,
		Template:      batchProfileTemplate,
		TemplatesPath: flagTemplates,
	}, table)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	now := time.Now()
	logger.Info("batch started",
		zap.String("run_id", runID),
		zap.Int("documents", len(files)),
		zap.Int("workers", cfg.Workers),
		zap.String("profile", jobProfile.Name),
		zap.String("profile_source", jobProfile.Source),
	)

	var processed, failed atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(cfg.Workers)

	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := processDocument(path, cfg.OutDir, table, jobProfile, batchEvidence, now); err != nil {
				failed.Add(1)
				logger.Error("document failed",
					zap.String("run_id", runID),
					zap.String("file", path),
					zap.Error(err),
				)
				return nil
			}
			processed.Add(1)
			logger.Debug("document processed", zap.String("run_id", runID), zap.String("file", path))
			return nil
		})
	}
	_ = g.Wait()

	logger.Info("batch finished",
		zap.String("run_id", runID),
		zap.Int64("processed", processed.Load()),
		zap.Int64("failed", failed.Load()),
	)

	if processed.Load() == 0 {
		return fmt.Errorf("all %d documents failed", failed.Load())
	}
	return nil
}

func listResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".txt") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// processDocument runs the full per-document pipeline. Documents are
// independent; this function shares only the read-only table and profile.
func processDocument(path, outDir string, table *skills.AliasTable, jobProfile types.JobProfile, evidence int, now time.Time) error {
	doc, err := ingestion.FromFile(path)
	if err != nil {
		return err
	}

	sm := sections.Locate(doc.Text)
	record := extraction.BuildCandidate(doc, sm, table, now)
	result := scoring.Score(record, jobProfile, evidence, table)

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := writeArtifact(record, schemas.CandidateRecordSchema, filepath.Join(outDir, stem+".candidate.json")); err != nil {
		return err
	}
	return writeArtifact(result, schemas.ScoreResultSchema, filepath.Join(outDir, stem+".score.json"))
}
