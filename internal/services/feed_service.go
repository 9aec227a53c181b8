package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"monetrix-dashboard/internal/feed"
	"monetrix-dashboard/internal/models"
	"monetrix-dashboard/internal/repositories"
)

var ErrInvalidRetention = errors.New("snapshot retention must be positive")

type feedService struct {
	snapshotRepo repositories.FeedSnapshotRepositoryInterface
	loader       FeedLoaderInterface
	metrics      MetricsRecorderInterface
	feedLogger   FeedLoggerInterface
	lenient      bool
	now          func() time.Time
}

// NewFeedService builds the snapshot import service. With lenient set,
// directory imports keep the banks that loaded and record the failed ones
// as error consents instead of rejecting the whole feed.
func NewFeedService(
	snapshotRepo repositories.FeedSnapshotRepositoryInterface,
	loader FeedLoaderInterface,
	metrics MetricsRecorderInterface,
	feedLogger FeedLoggerInterface,
	lenient bool,
) FeedServiceInterface {
	return &feedService{
		snapshotRepo: snapshotRepo,
		loader:       loader,
		metrics:      metrics,
		feedLogger:   feedLogger,
		lenient:      lenient,
		now:          time.Now,
	}
}

func (s *feedService) ImportSnapshot(ctx context.Context, clientID string, data feed.Data) (*models.FeedSnapshot, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}

	snapshot := &models.FeedSnapshot{
		ClientID:     clientID,
		Accounts:     data.Accounts,
		Transactions: data.Transactions,
		Consents:     data.Consents,
		FetchedAt:    s.now().UTC(),
	}

	if err := s.snapshotRepo.Create(ctx, snapshot); err != nil {
		s.metrics.IncrementCounter(MetricSnapshotImported, map[string]string{"status": "error"})
		s.feedLogger.LogSnapshotImportFailed(ctx, clientID, err.Error())
		return nil, fmt.Errorf("%w: create: %w", ErrSnapshotStore, err)
	}

	s.metrics.IncrementCounter(MetricSnapshotImported, map[string]string{"status": "ok"})
	s.feedLogger.LogSnapshotImported(ctx, clientID, snapshot.ID.String(), len(snapshot.Accounts), len(snapshot.Transactions))

	return snapshot, nil
}

func (s *feedService) ImportDirectory(ctx context.Context, clientID, dir string) (*models.FeedSnapshot, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}

	start := time.Now()
	load := s.loader.Load
	if s.lenient {
		load = s.loader.LoadLenient
	}

	data, err := load(ctx, dir)
	s.metrics.RecordProcessingTime(MetricFeedLoadDuration, time.Since(start))
	if err != nil {
		s.metrics.IncrementCounter(MetricSnapshotImported, map[string]string{"status": "rejected"})
		s.feedLogger.LogSnapshotImportFailed(ctx, clientID, err.Error())
		return nil, fmt.Errorf("failed to load feed directory %s: %w", dir, err)
	}

	s.metrics.RecordGauge(MetricFeedBanksLoaded, float64(len(data.Consents)), nil)
	slog.DebugContext(ctx, "feed directory loaded",
		"client_id", clientID,
		"dir", dir,
		"bank_count", len(data.Consents),
		"lenient", s.lenient)

	return s.ImportSnapshot(ctx, clientID, *data)
}

// ListClients returns the clients that have at least one stored snapshot.
func (s *feedService) ListClients(ctx context.Context) ([]string, error) {
	clientIDs, err := s.snapshotRepo.ListClientIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list clients: %w", ErrSnapshotStore, err)
	}
	if clientIDs == nil {
		clientIDs = []string{}
	}
	return clientIDs, nil
}

func (s *feedService) PruneSnapshots(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, ErrInvalidRetention
	}

	cutoff := s.now().Add(-olderThan).UTC()
	deleted, err := s.snapshotRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: prune: %w", ErrSnapshotStore, err)
	}

	s.metrics.AddCounter(MetricSnapshotsPruned, float64(deleted), nil)
	s.feedLogger.LogSnapshotsPruned(ctx, deleted, cutoff)

	return deleted, nil
}
