package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallgrass-systems/jobfunnel/internal/analytics"
	"github.com/tallgrass-systems/jobfunnel/internal/output"
)

// runDashboard renders the quick summary shown by the bare root command.
func runDashboard(cmd *cobra.Command, args []string) error {
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

	fmt.Println("jobfunnel", appVersion)
	fmt.Println()
	fmt.Printf(" Applications: %s   Resumes: %s   Pipeline: %s\n",
		output.StyleBold.Render(fmt.Sprintf("%d", len(snap.Applications))),
		output.StyleBold.Render(fmt.Sprintf("%d", len(snap.Resumes))),
		output.StyleMuted.Render(e.pipe.Name),
	)

	if top, ok := result.TopResume(); ok {
		fmt.Printf(" Top resume:   %s (%.1f%% success over %d applications)\n",
			output.StyleSuccess.Render(top.ResumeName), top.OverallSuccessRate, top.TotalApplications)
	}

	if len(snap.Applications) == 0 {
		fmt.Println()
		fmt.Println(" No applications yet. Get started:")
		fmt.Println("   jobfunnel resume add \"Tech Resume\" --file resume.pdf")
		fmt.Println("   jobfunnel add --title \"Backend Engineer\" --company Initech")
		return nil
	}

	fmt.Println()
	fmt.Println(" Subcommands:")
	fmt.Println("   add        Record a job application")
	fmt.Println("   list       List applications")
	fmt.Println("   set-stage  Move an application through the pipeline")
	fmt.Println("   resume     Manage resume versions")
	fmt.Println("   stats      Funnel analytics per resume")
	fmt.Println("   suggest    Resume recommendations")
	fmt.Println("   watch      Monitor the funnel and alert on changes")
	return nil
}
