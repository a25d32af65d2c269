// Package jobs runs scheduled background work.
package jobs

import (
	"github.com/robfig/cron/v3"

	"assetfolio/internal/logger"
	"assetfolio/internal/services"
)

// SnapshotScheduler records net-worth snapshots for all users on a cron
// schedule. It is the only background worker in the process.
type SnapshotScheduler struct {
	cron      *cron.Cron
	snapshots services.SnapshotServicer
}

// NewSnapshotScheduler creates a scheduler for the given cron spec
// (standard 5-field format).
func NewSnapshotScheduler(spec string, snapshots services.SnapshotServicer) (*SnapshotScheduler, error) {
	s := &SnapshotScheduler{
		cron:      cron.New(),
		snapshots: snapshots,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins the schedule in its own goroutine.
func (s *SnapshotScheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule. Already-running jobs finish.
func (s *SnapshotScheduler) Stop() {
	s.cron.Stop()
}

func (s *SnapshotScheduler) run() {
	logger.Get().Infow("recording portfolio snapshots")
	if err := s.snapshots.RecordAll(); err != nil {
		logger.Get().Errorw("snapshot run failed", "error", err)
	}
}
