package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"monetrix-dashboard/internal/models"

	"gorm.io/gorm"
)

// ErrSnapshotNotFound is returned when a client has no stored snapshot.
var ErrSnapshotNotFound = errors.New("feed snapshot not found")

// FeedSnapshotRepository handles database operations for feed snapshots
type FeedSnapshotRepository struct {
	db *gorm.DB
}

// NewFeedSnapshotRepository creates a new feed snapshot repository
func NewFeedSnapshotRepository(db *gorm.DB) FeedSnapshotRepositoryInterface {
	return &FeedSnapshotRepository{
		db: db,
	}
}

// Create stores a new snapshot
func (r *FeedSnapshotRepository) Create(ctx context.Context, snapshot *models.FeedSnapshot) error {
	if snapshot == nil {
		return errors.New("feed snapshot cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to create feed snapshot: %w", err)
	}

	return nil
}

// GetLatestByClientID returns the most recently fetched snapshot for a client
func (r *FeedSnapshotRepository) GetLatestByClientID(ctx context.Context, clientID string) (*models.FeedSnapshot, error) {
	var snapshot models.FeedSnapshot
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("fetched_at DESC").
		Order("created_at DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get latest feed snapshot: %w", err)
	}

	return &snapshot, nil
}

// ListClientIDs returns every client with at least one snapshot, sorted
func (r *FeedSnapshotRepository) ListClientIDs(ctx context.Context) ([]string, error) {
	var clientIDs []string
	if err := r.db.WithContext(ctx).
		Model(&models.FeedSnapshot{}).
		Distinct("client_id").
		Order("client_id").
		Pluck("client_id", &clientIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list client IDs: %w", err)
	}

	return clientIDs, nil
}

// DeleteOlderThan removes snapshots fetched before cutoff. The latest
// snapshot of each client is always kept.
func (r *FeedSnapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("fetched_at < ?", cutoff.UTC()).
		Where("fetched_at < (SELECT MAX(latest.fetched_at) FROM feed_snapshots latest WHERE latest.client_id = feed_snapshots.client_id)").
		Delete(&models.FeedSnapshot{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old feed snapshots: %w", result.Error)
	}

	return result.RowsAffected, nil
}
