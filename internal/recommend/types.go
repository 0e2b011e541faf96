// Package recommend generates heuristic textual recommendations from
// resume-performance analytics. Rules are evaluated in a fixed order; each
// rule independently contributes zero or one recommendation, and every
// firing rule's message is included.
package recommend

import "github.com/tallgrass-systems/jobfunnel/internal/analytics"

// Categories group recommendations for display and filtering.
const (
	CategoryGettingStarted = "getting-started"
	CategoryPrioritize     = "prioritize"
	CategoryTailoring      = "tailoring"
	CategoryContent        = "content"
	CategoryStale          = "stale"
	CategoryPositive       = "positive"
)

// Recommendation is a single advisory message.
type Recommendation struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Thresholds are the tunable cutoffs the rules evaluate against. Exposed
// as configuration rather than literals so tests and users can adjust them.
type Thresholds struct {
	// LowInterviewRate fires the tailoring rule when the overall
	// interview rate (percent) falls below it.
	LowInterviewRate float64

	// LowSuccessRate fires the content rule when the overall success
	// rate (percent) falls below it.
	LowSuccessRate float64

	// MinApplicationsForStale is the minimum application count before a
	// zero-offer resume is flagged as stale.
	MinApplicationsForStale int
}

// DefaultThresholds returns the standard rule cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LowInterviewRate:        20,
		LowSuccessRate:          5,
		MinApplicationsForStale: 5,
	}
}

// Context carries everything the rules need for one evaluation pass.
type Context struct {
	Analytics  []analytics.ResumeAnalytics
	Overall    analytics.OverallStats
	TopResume  analytics.ResumeAnalytics
	HasTop     bool
	Thresholds Thresholds
}

// Rule examines the context and produces zero or one recommendation.
type Rule func(ctx *Context) []Recommendation

// Messages flattens recommendations to their plain message strings.
func Messages(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Message
	}
	return out
}
