package recommend

import (
	"github.com/tallgrass-systems/jobfunnel/internal/analytics"
)

// Engine evaluates the built-in rules in their fixed order.
type Engine struct {
	thresholds Thresholds
	rules      []Rule
}

// NewEngine creates an engine with all built-in rules registered, in
// evaluation order.
func NewEngine(t Thresholds) *Engine {
	return &Engine{
		thresholds: t,
		rules: []Rule{
			PrioritizeTopResume,
			LowInterviewRate,
			LowSuccessRate,
			StaleResumes,
		},
	}
}

// Run evaluates the rule set against an analytics result. With no active
// resumes it returns exactly one getting-started message. When no rule
// fires it returns one positive-reinforcement message.
func (e *Engine) Run(result analytics.Result) []Recommendation {
	if len(result.Resumes) == 0 {
		return []Recommendation{{
			Category: CategoryGettingStarted,
			Message:  "Start linking your applications to resumes to see which resume versions perform best.",
		}}
	}

	top, hasTop := result.TopResume()
	ctx := &Context{
		Analytics:  result.Resumes,
		Overall:    result.Overall,
		TopResume:  top,
		HasTop:     hasTop,
		Thresholds: e.thresholds,
	}

	var recs []Recommendation
	for _, rule := range e.rules {
		recs = append(recs, rule(ctx)...)
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Category: CategoryPositive,
			Message:  "Your resumes are performing well. Keep applying and tracking results.",
		})
	}
	return recs
}
