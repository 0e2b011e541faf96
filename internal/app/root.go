// Package app contains the Cobra command tree for jobfunnel.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tallgrass-systems/jobfunnel/internal/config"
	"github.com/tallgrass-systems/jobfunnel/internal/output"
	"github.com/tallgrass-systems/jobfunnel/internal/pipeline"
	"github.com/tallgrass-systems/jobfunnel/internal/store"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "jobfunnel",
	Short: "Track job applications and resume performance",
	Long: `jobfunnel tracks job applications, resume versions, and pipeline
progress in a local SQLite database, and computes funnel analytics per
resume: apply, interview, and offer conversion rates, plus heuristic
recommendations.

Run 'jobfunnel' with no arguments to see a quick dashboard summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/jobfunnel/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
}

// env bundles the loaded configuration, the active pipeline variant, and
// an open database handle.
type env struct {
	cfg  *config.Config
	pipe pipeline.Pipeline
	db   *store.DB
}

// openEnv loads config, resolves the pipeline variant, applies output
// settings, and opens the store.
func openEnv() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	} else {
		output.AutoDetect()
	}

	pipe, err := pipeline.ByName(cfg.Pipeline)
	if err != nil {
		return nil, fmt.Errorf("resolving pipeline: %w", err)
	}

	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &env{cfg: cfg, pipe: pipe, db: db}, nil
}

func (e *env) close() {
	_ = e.db.Close()
}
