// Package jobs runs the background maintenance tasks of the dashboard.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultJobTimeout = 5 * time.Minute

// SnapshotPruner deletes feed snapshots older than a retention window.
type SnapshotPruner interface {
	PruneSnapshots(ctx context.Context, olderThan time.Duration) (int64, error)
}

type SchedulerConfig struct {
	PruneSchedule string
	Retention     time.Duration
	Location      *time.Location
	JobTimeout    time.Duration
}

// Scheduler runs snapshot pruning on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	pruner SnapshotPruner
	config SchedulerConfig
	logger *slog.Logger
}

func NewScheduler(pruner SnapshotPruner, cfg SchedulerConfig, logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = defaultJobTimeout
	}

	s := &Scheduler{
		cron:   cron.New(cron.WithLocation(cfg.Location)),
		pruner: pruner,
		config: cfg,
		logger: logger,
	}

	if _, err := s.cron.AddFunc(cfg.PruneSchedule, s.prune); err != nil {
		return nil, fmt.Errorf("unable to schedule snapshot pruning %q: %w", cfg.PruneSchedule, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("job scheduler started",
		"prune_schedule", s.config.PruneSchedule,
		"retention", s.config.Retention.String())
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("job scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.JobTimeout)
	defer cancel()

	start := time.Now()
	deleted, err := s.pruner.PruneSnapshots(ctx, s.config.Retention)
	if err != nil {
		s.logger.Error("snapshot pruning failed", "error", err)
		return
	}
	s.logger.Info("snapshot pruning finished",
		"deleted", deleted,
		"duration_ms", time.Since(start).Milliseconds())
}
