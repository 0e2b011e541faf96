// Package watcher recomputes analytics from store snapshots at a regular
// interval and emits alerts when the funnel changes in notable ways. The
// engine itself stays stateless; the watcher owns the latest-snapshot pair
// and calls it fresh on every cycle.
package watcher

import (
	"context"
	"fmt"
	"time"

	"github.com/tallgrass-systems/jobfunnel/internal/analytics"
	"github.com/tallgrass-systems/jobfunnel/internal/model"
	"github.com/tallgrass-systems/jobfunnel/internal/pipeline"
	"github.com/tallgrass-systems/jobfunnel/internal/recommend"
)

// Source supplies complete snapshots of both collections.
type Source interface {
	LoadSnapshot(ctx context.Context) (*model.Snapshot, error)
}

// WatchState captures one recomputation cycle.
type WatchState struct {
	Timestamp time.Time
	Result    analytics.Result

	// offerCount is the number of linked applications at the offer stage.
	offerCount int
}

// Alert represents a notable change detected between two cycles.
type Alert struct {
	Level   string // "info", "warning", "success"
	Title   string
	Message string
	Time    time.Time
}

// Watcher monitors the store at a regular interval and emits alerts when
// the analytics result changes in notable ways.
type Watcher struct {
	source     Source
	pipe       pipeline.Pipeline
	thresholds recommend.Thresholds
	interval   time.Duration
	previous   *WatchState
	alertFn    func(Alert)     // callback for emitting alerts
	lastKeys   map[string]bool // dedup: suppress repeated identical alerts
}

// New creates a Watcher over the given snapshot source.
func New(source Source, p pipeline.Pipeline, t recommend.Thresholds, interval time.Duration, alertFn func(Alert)) *Watcher {
	return &Watcher{
		source:     source,
		pipe:       p,
		thresholds: t,
		interval:   interval,
		alertFn:    alertFn,
		lastKeys:   make(map[string]bool),
	}
}

// Run starts the watch loop. It takes an initial snapshot, then checks at
// every interval. Blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	initial, err := w.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}
	w.previous = initial

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			alerts := w.Check(ctx)
			for _, a := range alerts {
				if w.alertFn != nil {
					w.alertFn(a)
				}
			}
		}
	}
}

// Check performs a single cycle: takes a new snapshot, compares against
// the previous state, updates the previous state, and returns any alerts.
// Identical alerts are suppressed until the underlying data changes.
func (w *Watcher) Check(ctx context.Context) []Alert {
	curr, err := w.Snapshot(ctx)
	if err != nil {
		return []Alert{{
			Level:   "warning",
			Title:   "Snapshot failed",
			Message: fmt.Sprintf("Could not read application data: %v", err),
			Time:    time.Now(),
		}}
	}

	var raw []Alert
	if w.previous != nil {
		raw = w.Compare(w.previous, curr)
	}

	// Deduplicate: suppress alerts with the same title+message as last cycle.
	currentKeys := make(map[string]bool, len(raw))
	var alerts []Alert
	for _, a := range raw {
		key := a.Level + ":" + a.Title + ":" + a.Message
		currentKeys[key] = true
		if !w.lastKeys[key] {
			alerts = append(alerts, a)
		}
	}
	w.lastKeys = currentKeys

	w.previous = curr
	return alerts
}

// Snapshot loads both collections and recomputes the full analytics result.
func (w *Watcher) Snapshot(ctx context.Context) (*WatchState, error) {
	snap, err := w.source.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := analytics.Compute(snap.Applications, snap.Resumes, w.pipe)

	offers := 0
	for _, e := range result.Resumes {
		offers += e.OfferCount(w.pipe)
	}

	return &WatchState{
		Timestamp:  time.Now(),
		Result:     result,
		offerCount: offers,
	}, nil
}
