package recommend

import (
	"fmt"
	"strings"
)

// PrioritizeTopResume recommends focusing on the best-performing resume
// when more than one resume has activity.
func PrioritizeTopResume(ctx *Context) []Recommendation {
	if len(ctx.Analytics) <= 1 || !ctx.HasTop {
		return nil
	}
	return []Recommendation{{
		Category: CategoryPrioritize,
		Message: fmt.Sprintf(
			"%q is your best-performing resume with a %.1f%% success rate. Prioritize it for upcoming applications.",
			ctx.TopResume.ResumeName, ctx.TopResume.OverallSuccessRate,
		),
	}}
}

// LowInterviewRate recommends tailoring resumes when the overall interview
// rate falls below the configured threshold.
func LowInterviewRate(ctx *Context) []Recommendation {
	if ctx.Overall.OverallInterviewRate >= ctx.Thresholds.LowInterviewRate {
		return nil
	}
	return []Recommendation{{
		Category: CategoryTailoring,
		Message: fmt.Sprintf(
			"Your interview rate is %.1f%%. Tailor each resume more specifically to the roles you apply for.",
			ctx.Overall.OverallInterviewRate,
		),
	}}
}

// LowSuccessRate recommends revisiting resume content and format when the
// overall success rate falls below the configured threshold.
func LowSuccessRate(ctx *Context) []Recommendation {
	if ctx.Overall.OverallSuccessRate >= ctx.Thresholds.LowSuccessRate {
		return nil
	}
	return []Recommendation{{
		Category: CategoryContent,
		Message: fmt.Sprintf(
			"Your overall success rate is %.1f%%. Revisit your resume content and formatting.",
			ctx.Overall.OverallSuccessRate,
		),
	}}
}

// StaleResumes flags resumes with enough applications and zero offers,
// naming them all in one combined message.
func StaleResumes(ctx *Context) []Recommendation {
	var names []string
	for _, e := range ctx.Analytics {
		if e.TotalApplications >= ctx.Thresholds.MinApplicationsForStale && e.OverallSuccessRate == 0 {
			names = append(names, fmt.Sprintf("%q", e.ResumeName))
		}
	}
	if len(names) == 0 {
		return nil
	}
	return []Recommendation{{
		Category: CategoryStale,
		Message: fmt.Sprintf(
			"Consider updating or replacing %s: %d+ applications without an offer.",
			strings.Join(names, ", "), ctx.Thresholds.MinApplicationsForStale,
		),
	}}
}
