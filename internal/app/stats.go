package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tallgrass-systems/jobfunnel/internal/analytics"
	"github.com/tallgrass-systems/jobfunnel/internal/output"
)

var (
	statsMetric string
	statsSort   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Funnel analytics per resume",
	Long: `Compute per-resume funnel analytics from the current data: apply,
interview, and offer conversion rates, overall statistics, a bar chart for
the selected metric, and the pipeline status distribution.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsMetric, "metric", "success-rate", "Chart metric: applications, success-rate, interview-rate")
	statsCmd.Flags().BoolVar(&statsSort, "sort", false, "Sort the table and chart by success rate")
	rootCmd.AddCommand(statsCmd)
}

// statsOutput is the JSON-serializable output for the stats command.
type statsOutput struct {
	Pipeline     string                        `json:"pipeline"`
	Resumes      []analytics.ResumeAnalytics   `json:"resumes"`
	Overall      analytics.OverallStats        `json:"overall"`
	TopResumeID  string                        `json:"top_resume_id,omitempty"`
	Metric       string                        `json:"metric"`
	Chart        []analytics.ChartPoint        `json:"chart"`
	Distribution []analytics.DistributionPoint `json:"distribution"`
}

func runStats(cmd *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	metric, err := analytics.ParseMetric(statsMetric)
	if err != nil {
		return err
	}

	snap, err := e.db.LoadSnapshot(context.Background())
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	result := analytics.Compute(snap.Applications, snap.Resumes, e.pipe)

	entries := result.Resumes
	if statsSort {
		entries = make([]analytics.ResumeAnalytics, len(result.Resumes))
		copy(entries, result.Resumes)
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].OverallSuccessRate > entries[j].OverallSuccessRate
		})
	}

	chart := analytics.BuildChartSeries(entries, metric, e.cfg.Chart.MaxLabel)
	distribution := analytics.BuildStatusDistribution(snap.Applications, e.pipe)

	if flagJSON {
		return printJSON(statsOutput{
			Pipeline:     e.pipe.Name,
			Resumes:      entries,
			Overall:      result.Overall,
			TopResumeID:  result.TopResumeID,
			Metric:       metric.String(),
			Chart:        chart,
			Distribution: distribution,
		})
	}

	renderStats(e, result, entries, metric, chart, distribution)
	return nil
}

func renderStats(e *env, result analytics.Result, entries []analytics.ResumeAnalytics, metric analytics.Metric, chart []analytics.ChartPoint, distribution []analytics.DistributionPoint) {
	fmt.Println(output.Section("Resume Performance"))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println(" No resume has linked applications yet.")
		fmt.Println(" Link applications with: jobfunnel add --resume <name> ...")
		return
	}

	tbl := output.NewTable("RESUME", "APPS", "APPLY%", "INTERVIEW%", "OFFER%", "SUCCESS").RightAlign(1, 2, 3, 4, 5)
	for _, ra := range entries {
		tbl.AddRow(
			ra.ResumeName,
			fmt.Sprintf("%d", ra.TotalApplications),
			fmt.Sprintf("%.1f", ra.ApplyRate),
			fmt.Sprintf("%.1f", ra.InterviewRate),
			fmt.Sprintf("%.1f", ra.OfferRate),
			fmt.Sprintf("%.1f%%", ra.OverallSuccessRate),
		)
	}
	tbl.Print()
	fmt.Println()

	if top, ok := result.TopResume(); ok {
		fmt.Printf(" Top performer: %s  %s\n",
			output.StyleBold.Render(top.ResumeName),
			output.RateBar(top.OverallSuccessRate, 20))
		fmt.Println()
	}

	fmt.Println(output.Section(chartTitle(metric)))
	fmt.Println()
	unit := "%"
	if metric == analytics.MetricApplications {
		unit = ""
	}
	fmt.Print(output.BarChart(chartBars(chart), e.cfg.Chart.Width, unit))
	fmt.Println()

	fmt.Println(output.Section("Status Distribution"))
	fmt.Println()
	bars := make([]output.Bar, len(distribution))
	for i, d := range distribution {
		bars[i] = output.Bar{Label: string(d.Stage), Value: float64(d.Count)}
	}
	fmt.Print(output.BarChart(bars, e.cfg.Chart.Width, ""))
	fmt.Println()

	o := result.Overall
	fmt.Println(output.Section("Overall"))
	fmt.Println()
	fmt.Printf(" Linked applications:  %d\n", o.TotalApplications)
	fmt.Printf(" Success rate:         %.1f%%\n", o.OverallSuccessRate)
	fmt.Printf(" Interview rate:       %.1f%%\n", o.OverallInterviewRate)
	fmt.Printf(" Apps per resume:      %.1f\n", o.AverageApplicationsPerResume)
}

func chartBars(points []analytics.ChartPoint) []output.Bar {
	bars := make([]output.Bar, len(points))
	for i, p := range points {
		bars[i] = output.Bar{Label: p.Label, Value: p.Value}
	}
	return bars
}

func chartTitle(m analytics.Metric) string {
	switch m {
	case analytics.MetricApplications:
		return "Applications per Resume"
	case analytics.MetricInterviewRate:
		return "Interview Rate per Resume"
	default:
		return "Success Rate per Resume"
	}
}
