// Package main provides the resume screener CLI: structured candidate
// extraction and explainable scoring over plain-text resume renderings.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Resume structuring and scoring CLI",
	Long:  "Screener turns plain-text resume renderings into structured candidate records and scores them against job profiles with an explainable 0-100 fit score.",
}

var (
	flagConfig    string
	flagAliases   string
	flagTemplates string
	flagVerbose   bool
	flagJSONLogs  bool
	flagDebug     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagAliases, "aliases", "", "Path to skills vocabulary CSV layered over embedded defaults")
	rootCmd.PersistentFlags().StringVar(&flagTemplates, "templates", "", "Path to job-profile templates YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print formatted summaries to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
