package analytics

import (
	"github.com/tallgrass-systems/jobfunnel/internal/model"
	"github.com/tallgrass-systems/jobfunnel/internal/pipeline"
)

// Compute derives per-resume funnel analytics and overall statistics from
// complete application and resume snapshots. It is deterministic, linear in
// the input sizes, and never fails: applications whose resume reference does
// not resolve are excluded from per-resume aggregation but still count in
// the overall totals, and every division is zero-guarded.
func Compute(apps []model.Application, resumes []model.Resume, p pipeline.Pipeline) Result {
	// One accumulator per known resume, preserving input order.
	accs := make([]*ResumeAnalytics, 0, len(resumes))
	byID := make(map[string]*ResumeAnalytics, len(resumes))
	for _, r := range resumes {
		acc := &ResumeAnalytics{
			ResumeID:    r.ID,
			ResumeName:  r.Name,
			StageCounts: zeroStageCounts(p),
		}
		accs = append(accs, acc)
		byID[r.ID] = acc
	}

	// Overall counters run over every application that references any
	// resume, resolved or not.
	var (
		overallTotal       int
		overallOffers      int
		overallSubmitted   int
		overallInterviewed int
	)

	for _, a := range apps {
		if !a.HasResume() {
			continue
		}

		overallTotal++
		if a.Stage == p.Offer() {
			overallOffers++
		}
		if p.PastInitial(a.Stage) {
			overallSubmitted++
		}
		if p.ReachedInterview(a.Stage) {
			overallInterviewed++
		}

		acc, ok := byID[a.ResumeID]
		if !ok {
			continue // dangling reference
		}
		acc.TotalApplications++
		if p.Contains(a.Stage) {
			acc.StageCounts[a.Stage]++
		}
	}

	// Rates per resume, then drop zero-activity entries.
	result := Result{Resumes: make([]ResumeAnalytics, 0, len(accs))}
	activeResumes := 0
	for _, acc := range accs {
		if acc.TotalApplications == 0 {
			continue
		}
		activeResumes++

		submitted := 0
		interviewed := 0
		for stage, n := range acc.StageCounts {
			if p.PastInitial(stage) {
				submitted += n
			}
			if p.ReachedInterview(stage) {
				interviewed += n
			}
		}
		offers := acc.StageCounts[p.Offer()]

		acc.ApplyRate = percent(submitted, acc.TotalApplications)
		acc.InterviewRate = percent(interviewed, submitted)
		acc.OfferRate = percent(offers, interviewed)
		acc.OverallSuccessRate = percent(offers, acc.TotalApplications)

		result.Resumes = append(result.Resumes, *acc)
	}

	result.Overall = OverallStats{
		TotalApplications:            overallTotal,
		OverallSuccessRate:           percent(overallOffers, overallTotal),
		OverallInterviewRate:         percent(overallInterviewed, overallSubmitted),
		AverageApplicationsPerResume: ratio(overallTotal, activeResumes),
	}

	// Top performer: highest success rate, first in input order on ties.
	best := -1.0
	for _, ra := range result.Resumes {
		if ra.OverallSuccessRate > best {
			best = ra.OverallSuccessRate
			result.TopResumeID = ra.ResumeID
		}
	}

	return result
}

func zeroStageCounts(p pipeline.Pipeline) map[pipeline.Stage]int {
	counts := make(map[pipeline.Stage]int, len(p.Stages))
	for _, s := range p.Stages {
		counts[s] = 0
	}
	return counts
}

// percent returns numerator/denominator as a percentage, or 0 when the
// denominator is zero.
func percent(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}

// ratio returns numerator/denominator, or 0 when the denominator is zero.
func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
