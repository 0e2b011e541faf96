// Package pipeline defines the ordered application-status enumeration.
// The tracker supports two pipeline variants, so the stage set is carried
// as a value through the analytics engine rather than hard-coded.
package pipeline

import (
	"fmt"
	"strings"
)

// Stage is a single pipeline status value.
type Stage string

// Stages used by the built-in pipeline variants.
const (
	StageToApply      Stage = "to-apply"
	StageSaved        Stage = "saved"
	StageApplied      Stage = "applied"
	StagePhoneScreen  Stage = "phone-screen"
	StageInterviewing Stage = "interviewing"
	StageInterview    Stage = "interview"
	StageOffer        Stage = "offer"
	StageRejected     Stage = "rejected"
)

// Pipeline is a closed, ordered set of stages plus the classification
// boundaries the funnel math needs.
type Pipeline struct {
	Name   string
	Stages []Stage

	initial   Stage
	offer     Stage
	rejected  Stage
	interview map[Stage]bool
}

// Classic returns the original 5-stage pipeline.
func Classic() Pipeline {
	return Pipeline{
		Name:      "classic",
		Stages:    []Stage{StageToApply, StageApplied, StageInterviewing, StageOffer, StageRejected},
		initial:   StageToApply,
		offer:     StageOffer,
		rejected:  StageRejected,
		interview: map[Stage]bool{StageInterviewing: true},
	}
}

// Industry returns the 6-stage pipeline used by most job boards. This is
// the default variant.
func Industry() Pipeline {
	return Pipeline{
		Name:      "industry",
		Stages:    []Stage{StageSaved, StageApplied, StagePhoneScreen, StageInterview, StageOffer, StageRejected},
		initial:   StageSaved,
		offer:     StageOffer,
		rejected:  StageRejected,
		interview: map[Stage]bool{StagePhoneScreen: true, StageInterview: true},
	}
}

// Default returns the pipeline used when no variant is configured.
func Default() Pipeline {
	return Industry()
}

// ByName resolves a pipeline variant from its configured name. Unknown
// names return the default variant along with an error so callers can
// degrade gracefully.
func ByName(name string) (Pipeline, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic":
		return Classic(), nil
	case "industry", "":
		return Industry(), nil
	default:
		return Default(), fmt.Errorf("unknown pipeline variant %q (want classic or industry)", name)
	}
}

// Initial returns the first stage of the pipeline.
func (p Pipeline) Initial() Stage {
	return p.initial
}

// Offer returns the offer stage.
func (p Pipeline) Offer() Stage {
	return p.offer
}

// Rejected returns the rejected stage.
func (p Pipeline) Rejected() Stage {
	return p.rejected
}

// Contains reports whether s is a member of this pipeline.
func (p Pipeline) Contains(s Stage) bool {
	for _, st := range p.Stages {
		if st == s {
			return true
		}
	}
	return false
}

// PastInitial reports whether s is a known stage that has progressed
// beyond the initial stage. Rejected counts: a rejection implies the
// application was submitted.
func (p Pipeline) PastInitial(s Stage) bool {
	return p.Contains(s) && s != p.initial
}

// ReachedInterview reports whether s is at an interview stage or beyond
// (offer). Rejected does not count; only the current stage is known, not
// how far the application got before rejection.
func (p Pipeline) ReachedInterview(s Stage) bool {
	return p.interview[s] || s == p.offer
}

// ParseStage validates a user-supplied stage string against this pipeline.
func (p Pipeline) ParseStage(raw string) (Stage, error) {
	s := Stage(strings.ToLower(strings.TrimSpace(raw)))
	if p.Contains(s) {
		return s, nil
	}
	names := make([]string, len(p.Stages))
	for i, st := range p.Stages {
		names[i] = string(st)
	}
	return "", fmt.Errorf("unknown stage %q (want one of: %s)", raw, strings.Join(names, ", "))
}
