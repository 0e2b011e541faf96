package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallgrass-systems/jobfunnel/internal/output"
	"github.com/tallgrass-systems/jobfunnel/internal/watcher"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Monitor the funnel and alert on changes",
	Long: `Recompute analytics at a regular interval and print an alert when
the funnel changes in a notable way: a new offer, a sharp success-rate
drop, or a resume crossing the stale threshold.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 30*time.Second, "Check interval")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := watcher.New(e.db, e.pipe, e.cfg.Thresholds(), watchInterval, printAlert)

	fmt.Printf("Watching %s every %s. Ctrl-C to stop.\n", e.cfg.DBPath(), watchInterval)
	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func printAlert(a watcher.Alert) {
	var label string
	switch a.Level {
	case "success":
		label = output.StyleSuccess.Render("[OFFER]")
	case "warning":
		label = output.StyleWarning.Render("[WARN]")
	default:
		label = output.StyleMuted.Render("[INFO]")
	}
	fmt.Printf("%s %s %s: %s\n", a.Time.Format("15:04:05"), label, output.StyleBold.Render(a.Title), a.Message)
}
