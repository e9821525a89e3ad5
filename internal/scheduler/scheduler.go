// Package scheduler runs the nightly expiry sweeps.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"fitdesk/internal/logger"
	"fitdesk/internal/metrics"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = time.Minute

type ClientRefresher interface {
	RefreshStatuses(ctx context.Context, today time.Time) (int64, error)
}

type GymDeactivator interface {
	DeactivateLapsed(ctx context.Context, today time.Time) (int64, error)
}

type Scheduler struct {
	cron    *cron.Cron
	clients ClientRefresher
	gyms    GymDeactivator
	now     func() time.Time
}

// New registers the sweep on a standard five-field cron spec.
func New(spec string, clients ClientRefresher, gyms GymDeactivator) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		clients: clients,
		gyms:    gyms,
		now:     time.Now,
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", spec, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop halts the cron and waits for a running sweep to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
	logger.Info("scheduler stopped")
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	s.RunOnce(ctx)
}

// RunOnce refreshes client statuses and then deactivates lapsed gyms. A failure
// in one sweep does not skip the other.
func (s *Scheduler) RunOnce(ctx context.Context) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if n, err := s.clients.RefreshStatuses(ctx, today); err != nil {
		logger.Error("client status sweep failed", "error", err)
	} else {
		metrics.RecordSweep("clients", n)
		logger.Info("client status sweep done", "updated", n)
	}

	if n, err := s.gyms.DeactivateLapsed(ctx, today); err != nil {
		logger.Error("gym deactivation sweep failed", "error", err)
	} else {
		metrics.RecordSweep("gyms", n)
		logger.Info("gym deactivation sweep done", "deactivated", n)
	}
}
