package watcher

import (
	"fmt"
	"time"
)

// successRateDropThreshold is the percentage-point fall in the overall
// success rate between two cycles that triggers a warning.
const successRateDropThreshold = 5.0

// Compare detects notable changes between two watch states and returns alerts.
func (w *Watcher) Compare(prev, curr *WatchState) []Alert {
	var alerts []Alert
	now := time.Now()

	// First linked application recorded.
	if prev.Result.Overall.TotalApplications == 0 && curr.Result.Overall.TotalApplications > 0 {
		alerts = append(alerts, Alert{
			Level:   "info",
			Title:   "Tracking started",
			Message: fmt.Sprintf("First linked application recorded (%d total)", curr.Result.Overall.TotalApplications),
			Time:    now,
		})
	}

	// New offer reached.
	if curr.offerCount > prev.offerCount {
		alerts = append(alerts, Alert{
			Level:   "success",
			Title:   "Offer reached",
			Message: fmt.Sprintf("Applications at the offer stage went from %d to %d", prev.offerCount, curr.offerCount),
			Time:    now,
		})
	}

	// Overall success rate dropped sharply.
	drop := prev.Result.Overall.OverallSuccessRate - curr.Result.Overall.OverallSuccessRate
	if drop > successRateDropThreshold && prev.Result.Overall.TotalApplications > 0 {
		alerts = append(alerts, Alert{
			Level:   "warning",
			Title:   "Success rate drop",
			Message: fmt.Sprintf("Overall success rate fell from %.1f%% to %.1f%%", prev.Result.Overall.OverallSuccessRate, curr.Result.Overall.OverallSuccessRate),
			Time:    now,
		})
	}

	// A resume crossed the stale threshold: enough applications, no offers.
	prevStale := staleResumes(prev, w)
	for _, e := range curr.Result.Resumes {
		if e.TotalApplications >= w.thresholds.MinApplicationsForStale && e.OverallSuccessRate == 0 && !prevStale[e.ResumeID] {
			alerts = append(alerts, Alert{
				Level:   "warning",
				Title:   fmt.Sprintf("Resume going stale: %s", e.ResumeName),
				Message: fmt.Sprintf("%d applications without an offer; consider updating it", e.TotalApplications),
				Time:    now,
			})
		}
	}

	return alerts
}

func staleResumes(state *WatchState, w *Watcher) map[string]bool {
	stale := make(map[string]bool)
	for _, e := range state.Result.Resumes {
		if e.TotalApplications >= w.thresholds.MinApplicationsForStale && e.OverallSuccessRate == 0 {
			stale[e.ResumeID] = true
		}
	}
	return stale
}
