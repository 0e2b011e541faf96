package store

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tallgrass-systems/jobfunnel/internal/model"
)

// LoadSnapshot reads both collections and returns them as one consistent
// pair for the analytics engine. The two reads run concurrently; analytics
// are only ever computed once both are available.
func (db *DB) LoadSnapshot(ctx context.Context) (*model.Snapshot, error) {
	snap := &model.Snapshot{TakenAt: time.Now().UTC()}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		apps, err := db.ListApplications()
		if err != nil {
			return err
		}
		snap.Applications = apps
		return nil
	})
	g.Go(func() error {
		resumes, err := db.ListResumes()
		if err != nil {
			return err
		}
		snap.Resumes = resumes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
