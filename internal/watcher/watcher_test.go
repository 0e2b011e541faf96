package watcher

import (
	"context"
	"testing"
	"time"

	"github.com/tallgrass-systems/jobfunnel/internal/model"
	"github.com/tallgrass-systems/jobfunnel/internal/pipeline"
	"github.com/tallgrass-systems/jobfunnel/internal/recommend"
)

// fakeSource returns a swappable in-memory snapshot.
type fakeSource struct {
	snap *model.Snapshot
	err  error
}

func (f *fakeSource) LoadSnapshot(ctx context.Context) (*model.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

func newTestWatcher(src Source) *Watcher {
	return New(src, pipeline.Industry(), recommend.DefaultThresholds(), time.Minute, nil)
}

func snapshotOf(apps []model.Application, resumes []model.Resume) *model.Snapshot {
	return &model.Snapshot{Applications: apps, Resumes: resumes, TakenAt: time.Now()}
}

func TestCheck_OfferAlert(t *testing.T) {
	resumes := []model.Resume{{ID: "r1", Name: "Tech"}}
	src := &fakeSource{snap: snapshotOf([]model.Application{
		{ID: "a1", ResumeID: "r1", Stage: pipeline.StageInterview},
	}, resumes)}

	w := newTestWatcher(src)
	initial, err := w.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.previous = initial

	// The application converts to an offer.
	src.snap = snapshotOf([]model.Application{
		{ID: "a1", ResumeID: "r1", Stage: pipeline.StageOffer},
	}, resumes)

	alerts := w.Check(context.Background())
	if len(alerts) == 0 {
		t.Fatal("expected an alert")
	}
	var sawOffer bool
	for _, a := range alerts {
		if a.Title == "Offer reached" && a.Level == "success" {
			sawOffer = true
		}
	}
	if !sawOffer {
		t.Errorf("expected an offer alert, got %+v", alerts)
	}
}

func TestCheck_DedupSuppressesRepeats(t *testing.T) {
	resumes := []model.Resume{{ID: "r1", Name: "Old"}}
	var apps []model.Application
	for i := 0; i < 5; i++ {
		apps = append(apps, model.Application{ID: string(rune('a' + i)), ResumeID: "r1", Stage: pipeline.StageRejected})
	}

	// Previous state has no applications; the stale alert fires once.
	src := &fakeSource{snap: snapshotOf(nil, resumes)}
	w := newTestWatcher(src)
	initial, err := w.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.previous = initial

	src.snap = snapshotOf(apps, resumes)
	first := w.Check(context.Background())
	var staleCount int
	for _, a := range first {
		if a.Level == "warning" {
			staleCount++
		}
	}
	if staleCount == 0 {
		t.Fatalf("expected a stale-resume warning, got %+v", first)
	}

	// Same data next cycle: the stale condition persists between prev and
	// curr, so Compare no longer reports a crossing and nothing repeats.
	second := w.Check(context.Background())
	if len(second) != 0 {
		t.Errorf("expected no repeated alerts, got %+v", second)
	}
}

func TestCheck_SnapshotFailure(t *testing.T) {
	src := &fakeSource{err: context.DeadlineExceeded}
	w := newTestWatcher(src)

	alerts := w.Check(context.Background())
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
	if alerts[0].Title != "Snapshot failed" {
		t.Errorf("unexpected alert: %+v", alerts[0])
	}
}

func TestCompare_TrackingStartedAndDrop(t *testing.T) {
	w := newTestWatcher(&fakeSource{})
	resumes := []model.Resume{{ID: "r1", Name: "Tech"}}

	empty, _ := (&Watcher{source: &fakeSource{snap: snapshotOf(nil, resumes)}, pipe: pipeline.Industry()}).Snapshot(context.Background())
	started, _ := (&Watcher{source: &fakeSource{snap: snapshotOf([]model.Application{
		{ID: "a1", ResumeID: "r1", Stage: pipeline.StageApplied},
	}, resumes)}, pipe: pipeline.Industry()}).Snapshot(context.Background())

	alerts := w.Compare(empty, started)
	if len(alerts) != 1 || alerts[0].Title != "Tracking started" {
		t.Errorf("expected tracking-started alert, got %+v", alerts)
	}

	// Success rate falls from 50% to 25%.
	high, _ := (&Watcher{source: &fakeSource{snap: snapshotOf([]model.Application{
		{ID: "a1", ResumeID: "r1", Stage: pipeline.StageOffer},
		{ID: "a2", ResumeID: "r1", Stage: pipeline.StageApplied},
	}, resumes)}, pipe: pipeline.Industry()}).Snapshot(context.Background())
	low, _ := (&Watcher{source: &fakeSource{snap: snapshotOf([]model.Application{
		{ID: "a1", ResumeID: "r1", Stage: pipeline.StageOffer},
		{ID: "a2", ResumeID: "r1", Stage: pipeline.StageApplied},
		{ID: "a3", ResumeID: "r1", Stage: pipeline.StageApplied},
		{ID: "a4", ResumeID: "r1", Stage: pipeline.StageApplied},
	}, resumes)}, pipe: pipeline.Industry()}).Snapshot(context.Background())

	alerts = w.Compare(high, low)
	var sawDrop bool
	for _, a := range alerts {
		if a.Title == "Success rate drop" {
			sawDrop = true
		}
	}
	if !sawDrop {
		t.Errorf("expected a success-rate drop alert, got %+v", alerts)
	}
}

func TestRun_CancellationStopsLoop(t *testing.T) {
	src := &fakeSource{snap: snapshotOf(nil, nil)}
	w := New(src, pipeline.Industry(), recommend.DefaultThresholds(), 10*time.Millisecond, func(Alert) {})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after cancellation")
	}
}
