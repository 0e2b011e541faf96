// Package analytics computes resume-performance funnel analytics from
// application and resume snapshots. Every function here is a pure transform:
// no retained state, no side effects, no error paths. Degenerate inputs
// (empty collections, dangling references, zero denominators) resolve to
// zero values rather than failures.
package analytics

import (
	"fmt"
	"strings"

	"github.com/tallgrass-systems/jobfunnel/internal/pipeline"
)

// ResumeAnalytics is the derived funnel record for one resume with at
// least one linked application. Entries with zero linked applications are
// never materialized.
type ResumeAnalytics struct {
	ResumeID   string `json:"resume_id"`
	ResumeName string `json:"resume_name"`

	// StageCounts maps each pipeline stage to the number of linked
	// applications currently at that stage. Stages with zero count are
	// present with value 0 so renderers can iterate the full pipeline.
	StageCounts map[pipeline.Stage]int `json:"stage_counts"`

	TotalApplications int `json:"total_applications"`

	// ApplyRate is the percentage of linked applications that progressed
	// beyond the initial stage.
	ApplyRate float64 `json:"apply_rate"`

	// InterviewRate is the percentage of submitted applications
	// (applied or later) that reached an interview stage or an offer.
	InterviewRate float64 `json:"interview_rate"`

	// OfferRate is the percentage of interview-reaching applications
	// that converted to an offer.
	OfferRate float64 `json:"offer_rate"`

	// OverallSuccessRate is offers as a percentage of all linked
	// applications.
	OverallSuccessRate float64 `json:"overall_success_rate"`
}

// OfferCount returns the number of linked applications at the offer stage.
func (r ResumeAnalytics) OfferCount(p pipeline.Pipeline) int {
	return r.StageCounts[p.Offer()]
}

// OverallStats aggregates across all applications that reference any
// resume, including references that no longer resolve.
type OverallStats struct {
	TotalApplications            int     `json:"total_applications"`
	OverallSuccessRate           float64 `json:"overall_success_rate"`
	OverallInterviewRate         float64 `json:"overall_interview_rate"`
	AverageApplicationsPerResume float64 `json:"average_applications_per_resume"`
}

// Result is the full output of one analytics computation.
type Result struct {
	Resumes []ResumeAnalytics `json:"resumes"`
	Overall OverallStats      `json:"overall"`

	// TopResumeID identifies the entry with the highest overall success
	// rate; empty when no resume has activity. Ties go to the first
	// entry in input order.
	TopResumeID string `json:"top_resume_id,omitempty"`
}

// TopResume returns the top-performing entry, if any.
func (r Result) TopResume() (ResumeAnalytics, bool) {
	for _, ra := range r.Resumes {
		if ra.ResumeID == r.TopResumeID {
			return ra, true
		}
	}
	return ResumeAnalytics{}, false
}

// Metric selects which value a chart series plots.
type Metric int

const (
	MetricApplications Metric = iota
	MetricSuccessRate
	MetricInterviewRate
)

// String returns the CLI-facing name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricApplications:
		return "applications"
	case MetricSuccessRate:
		return "success-rate"
	case MetricInterviewRate:
		return "interview-rate"
	default:
		return "unknown"
	}
}

// ParseMetric resolves a user-supplied metric name.
func ParseMetric(raw string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "applications", "apps":
		return MetricApplications, nil
	case "success-rate", "success":
		return MetricSuccessRate, nil
	case "interview-rate", "interview":
		return MetricInterviewRate, nil
	default:
		return MetricApplications, fmt.Errorf("unknown metric %q (want applications, success-rate, or interview-rate)", raw)
	}
}

// ChartPoint is one bar in a chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DistributionPoint is one slice of the status distribution.
type DistributionPoint struct {
	Stage pipeline.Stage `json:"stage"`
	Count int            `json:"count"`
}
