package repositories

import (
	"context"
	"time"

	"monetrix-dashboard/internal/models"
)

// FeedSnapshotRepositoryInterface defines the contract for feed snapshot storage
type FeedSnapshotRepositoryInterface interface {
	Create(ctx context.Context, snapshot *models.FeedSnapshot) error
	GetLatestByClientID(ctx context.Context, clientID string) (*models.FeedSnapshot, error)
	ListClientIDs(ctx context.Context) ([]string, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
