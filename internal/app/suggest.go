package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallgrass-systems/jobfunnel/internal/analytics"
	"github.com/tallgrass-systems/jobfunnel/internal/output"
	"github.com/tallgrass-systems/jobfunnel/internal/recommend"
)

var suggestCategory string

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Resume recommendations",
	Long: `Evaluate the recommendation rules against current funnel analytics
and print the resulting advice: which resume to prioritize, which ones look
stale, and whether rates suggest tailoring or rewriting.`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestCategory, "category", "", "Filter by category (getting-started, prioritize, tailoring, content, stale, positive)")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	snap, err := e.db.LoadSnapshot(context.Background())
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	result := analytics.Compute(snap.Applications, snap.Resumes, e.pipe)
	engine := recommend.NewEngine(e.cfg.Thresholds())
	recs := engine.Run(result)

	if suggestCategory != "" {
		recs = filterByCategory(recs, suggestCategory)
	}

	if flagJSON {
		return printJSON(recs)
	}

	fmt.Println(output.Section("Recommendations"))
	fmt.Println()
	if len(recs) == 0 {
		fmt.Println(" No recommendations in this category.")
		return nil
	}
	for i, r := range recs {
		fmt.Printf(" #%d %s %s\n", i+1, output.StyleMuted.Render("["+r.Category+"]"), r.Message)
	}
	return nil
}

func filterByCategory(recs []recommend.Recommendation, category string) []recommend.Recommendation {
	var filtered []recommend.Recommendation
	for _, r := range recs {
		if r.Category == category {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
