package analytics

import (
	"reflect"
	"testing"

	"github.com/tallgrass-systems/jobfunnel/internal/model"
	"github.com/tallgrass-systems/jobfunnel/internal/pipeline"
)

func app(resumeID string, stage pipeline.Stage) model.Application {
	return model.Application{ID: "a-" + string(stage) + resumeID, ResumeID: resumeID, Stage: stage}
}

func resume(id, name string) model.Resume {
	return model.Resume{ID: id, Name: name}
}

func TestCompute_EmptyInputs(t *testing.T) {
	r := Compute(nil, nil, pipeline.Industry())
	if len(r.Resumes) != 0 {
		t.Fatalf("expected no resume analytics, got %d", len(r.Resumes))
	}
	if r.Overall.TotalApplications != 0 {
		t.Errorf("expected 0 total applications, got %d", r.Overall.TotalApplications)
	}
	if r.TopResumeID != "" {
		t.Errorf("expected no top resume, got %q", r.TopResumeID)
	}
}

func TestCompute_BasicFunnel(t *testing.T) {
	p := pipeline.Industry()
	resumes := []model.Resume{resume("r1", "Tech Resume")}
	apps := []model.Application{
		app("r1", pipeline.StageApplied),
		app("r1", pipeline.StageOffer),
	}

	r := Compute(apps, resumes, p)
	if len(r.Resumes) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(r.Resumes))
	}
	e := r.Resumes[0]
	if e.TotalApplications != 2 {
		t.Errorf("expected 2 applications, got %d", e.TotalApplications)
	}
	if e.OfferCount(p) != 1 {
		t.Errorf("expected 1 offer, got %d", e.OfferCount(p))
	}
	if e.OverallSuccessRate != 50.0 {
		t.Errorf("expected 50%% success rate, got %f", e.OverallSuccessRate)
	}
	if e.ApplyRate != 100.0 {
		t.Errorf("expected 100%% apply rate, got %f", e.ApplyRate)
	}
	if r.TopResumeID != "r1" {
		t.Errorf("expected r1 as top resume, got %q", r.TopResumeID)
	}
}

func TestCompute_NothingPastInitialStage(t *testing.T) {
	p := pipeline.Classic()
	resumes := []model.Resume{resume("r1", "Base")}
	apps := []model.Application{app("r1", pipeline.StageToApply)}

	r := Compute(apps, resumes, p)
	if len(r.Resumes) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(r.Resumes))
	}
	e := r.Resumes[0]
	if e.ApplyRate != 0 {
		t.Errorf("expected 0%% apply rate, got %f", e.ApplyRate)
	}
	if e.InterviewRate != 0 || e.OfferRate != 0 || e.OverallSuccessRate != 0 {
		t.Errorf("expected all downstream rates 0, got %f/%f/%f", e.InterviewRate, e.OfferRate, e.OverallSuccessRate)
	}
}

func TestCompute_ZeroActivityResumesExcluded(t *testing.T) {
	resumes := []model.Resume{resume("r1", "Used"), resume("r2", "Unused")}
	apps := []model.Application{app("r1", pipeline.StageApplied)}

	r := Compute(apps, resumes, pipeline.Industry())
	if len(r.Resumes) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(r.Resumes))
	}
	for _, e := range r.Resumes {
		if e.TotalApplications == 0 {
			t.Errorf("entry %q has zero applications", e.ResumeID)
		}
	}
}

func TestCompute_DanglingReference(t *testing.T) {
	resumes := []model.Resume{resume("r1", "Known")}
	apps := []model.Application{
		app("r1", pipeline.StageApplied),
		app("ghost", pipeline.StageOffer), // resume no longer exists
	}

	r := Compute(apps, resumes, pipeline.Industry())

	// The dangling application appears in no per-resume entry.
	if len(r.Resumes) != 1 || r.Resumes[0].ResumeID != "r1" {
		t.Fatalf("expected only r1 in analytics, got %+v", r.Resumes)
	}
	if r.Resumes[0].TotalApplications != 1 {
		t.Errorf("expected 1 application for r1, got %d", r.Resumes[0].TotalApplications)
	}

	// It still counts in the overall totals.
	if r.Overall.TotalApplications != 2 {
		t.Errorf("expected 2 overall applications, got %d", r.Overall.TotalApplications)
	}
	if r.Overall.OverallSuccessRate != 50.0 {
		t.Errorf("expected 50%% overall success rate, got %f", r.Overall.OverallSuccessRate)
	}
}

func TestCompute_UnlinkedApplicationsIgnored(t *testing.T) {
	apps := []model.Application{
		{ID: "a1", Stage: pipeline.StageOffer}, // no resume attached
	}
	r := Compute(apps, nil, pipeline.Industry())
	if r.Overall.TotalApplications != 0 {
		t.Errorf("unlinked applications should not count, got %d", r.Overall.TotalApplications)
	}
}

func TestCompute_TopPerformerAndTieBreak(t *testing.T) {
	resumes := []model.Resume{resume("r1", "Old"), resume("r2", "New")}
	apps := []model.Application{
		app("r1", pipeline.StageApplied),
		app("r1", pipeline.StageApplied),
		app("r1", pipeline.StageRejected),
		app("r1", pipeline.StageRejected),
		app("r1", pipeline.StageRejected),
		app("r2", pipeline.StageApplied),
		app("r2", pipeline.StageOffer),
	}

	r := Compute(apps, resumes, pipeline.Industry())
	if r.TopResumeID != "r2" {
		t.Errorf("expected r2 as top performer, got %q", r.TopResumeID)
	}
	top, ok := r.TopResume()
	if !ok {
		t.Fatal("expected a top resume entry")
	}
	if top.OverallSuccessRate != 50.0 {
		t.Errorf("expected 50%% for r2, got %f", top.OverallSuccessRate)
	}

	// Equal rates: first in input order wins.
	tied := Compute([]model.Application{
		app("r1", pipeline.StageApplied),
		app("r2", pipeline.StageApplied),
	}, resumes, pipeline.Industry())
	if tied.TopResumeID != "r1" {
		t.Errorf("expected first-encountered tie-break (r1), got %q", tied.TopResumeID)
	}
}

func TestCompute_RatesBounded(t *testing.T) {
	p := pipeline.Industry()
	resumes := []model.Resume{resume("r1", "A"), resume("r2", "B")}
	apps := []model.Application{
		app("r1", pipeline.StageSaved),
		app("r1", pipeline.StageApplied),
		app("r1", pipeline.StagePhoneScreen),
		app("r1", pipeline.StageInterview),
		app("r1", pipeline.StageOffer),
		app("r1", pipeline.StageRejected),
		app("r2", pipeline.StageOffer),
	}

	r := Compute(apps, resumes, p)
	for _, e := range r.Resumes {
		for name, rate := range map[string]float64{
			"apply":     e.ApplyRate,
			"interview": e.InterviewRate,
			"offer":     e.OfferRate,
			"success":   e.OverallSuccessRate,
		} {
			if rate < 0 || rate > 100 {
				t.Errorf("%s: %s rate out of bounds: %f", e.ResumeID, name, rate)
			}
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	resumes := []model.Resume{resume("r1", "A"), resume("r2", "B")}
	apps := []model.Application{
		app("r1", pipeline.StageApplied),
		app("r1", pipeline.StageInterview),
		app("r2", pipeline.StageOffer),
		app("ghost", pipeline.StageRejected),
	}

	first := Compute(apps, resumes, pipeline.Industry())
	second := Compute(apps, resumes, pipeline.Industry())
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different results")
	}
}

func TestCompute_InterviewRateDenominator(t *testing.T) {
	// 4 linked apps: 1 still saved, 3 submitted, 2 reached interview-or-offer.
	p := pipeline.Industry()
	resumes := []model.Resume{resume("r1", "A")}
	apps := []model.Application{
		app("r1", pipeline.StageSaved),
		app("r1", pipeline.StageApplied),
		app("r1", pipeline.StagePhoneScreen),
		app("r1", pipeline.StageOffer),
	}

	r := Compute(apps, resumes, p)
	e := r.Resumes[0]
	if e.ApplyRate != 75.0 {
		t.Errorf("expected apply rate 75, got %f", e.ApplyRate)
	}
	want := 2.0 / 3.0 * 100
	if diff := e.InterviewRate - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected interview rate %.6f, got %f", want, e.InterviewRate)
	}
	if e.OfferRate != 50.0 {
		t.Errorf("expected offer rate 50, got %f", e.OfferRate)
	}
}

func TestCompute_AverageApplicationsPerResume(t *testing.T) {
	resumes := []model.Resume{resume("r1", "A"), resume("r2", "B"), resume("r3", "Idle")}
	apps := []model.Application{
		app("r1", pipeline.StageApplied),
		app("r1", pipeline.StageApplied),
		app("r2", pipeline.StageApplied),
		app("ghost", pipeline.StageApplied),
	}

	r := Compute(apps, resumes, pipeline.Industry())
	// 4 linked applications across 2 resumes with activity.
	if r.Overall.AverageApplicationsPerResume != 2.0 {
		t.Errorf("expected 2.0 applications per resume, got %f", r.Overall.AverageApplicationsPerResume)
	}
}
