package analytics

import (
	"math"

	"github.com/tallgrass-systems/jobfunnel/internal/model"
	"github.com/tallgrass-systems/jobfunnel/internal/pipeline"
)

// DefaultMaxLabel is the label truncation bound used when the caller
// passes a non-positive value.
const DefaultMaxLabel = 18

// BuildChartSeries produces one chart point per analytics entry, in the
// order of the input slice (callers control ordering). Resume names longer
// than maxLabel runes are truncated with an ellipsis. Rate metrics are
// rounded to one decimal place; the applications metric is a raw count.
func BuildChartSeries(entries []ResumeAnalytics, metric Metric, maxLabel int) []ChartPoint {
	if maxLabel <= 0 {
		maxLabel = DefaultMaxLabel
	}

	points := make([]ChartPoint, 0, len(entries))
	for _, e := range entries {
		var v float64
		switch metric {
		case MetricApplications:
			v = float64(e.TotalApplications)
		case MetricSuccessRate:
			v = round1(e.OverallSuccessRate)
		case MetricInterviewRate:
			v = round1(e.InterviewRate)
		}
		points = append(points, ChartPoint{
			Label: truncateLabel(e.ResumeName, maxLabel),
			Value: v,
		})
	}
	return points
}

// BuildStatusDistribution counts, among applications that reference any
// resume, how many sit at each pipeline stage. Points follow pipeline
// stage order; zero-count stages are omitted.
func BuildStatusDistribution(apps []model.Application, p pipeline.Pipeline) []DistributionPoint {
	counts := make(map[pipeline.Stage]int, len(p.Stages))
	for _, a := range apps {
		if !a.HasResume() {
			continue
		}
		if p.Contains(a.Stage) {
			counts[a.Stage]++
		}
	}

	var points []DistributionPoint
	for _, s := range p.Stages {
		if counts[s] > 0 {
			points = append(points, DistributionPoint{Stage: s, Count: counts[s]})
		}
	}
	return points
}

// truncateLabel bounds a label to max runes, marking truncation with an
// ellipsis.
func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
