package services

import (
	"context"
	"time"

	"monetrix-dashboard/internal/feed"
	"monetrix-dashboard/internal/models"
)

// DashboardServiceInterface renders the client dashboard from the latest
// stored feed snapshot.
type DashboardServiceInterface interface {
	// GetBanks groups the client's accounts by bank
	GetBanks(ctx context.Context, clientID string) ([]models.AggregatedBank, error)

	// GetCashflow returns the recent monthly income/outcome series
	GetCashflow(ctx context.Context, clientID string) ([]models.MonthlyFlowPoint, error)

	// GetSummary returns net worth, cashflow outlook, banks and the cashflow series
	GetSummary(ctx context.Context, clientID string) (*models.DashboardSummary, error)

	// ListTransactions filters and pages the raw transactions
	ListTransactions(ctx context.Context, clientID string, filter models.TransactionFilter) (*models.TransactionPage, error)

	// GetRecommendations derives advisory cards from balances and cashflow
	GetRecommendations(ctx context.Context, clientID string) ([]models.Recommendation, error)
}

// FeedServiceInterface stores and prunes feed snapshots.
type FeedServiceInterface interface {
	ImportSnapshot(ctx context.Context, clientID string, data feed.Data) (*models.FeedSnapshot, error)
	ImportDirectory(ctx context.Context, clientID, dir string) (*models.FeedSnapshot, error)
	ListClients(ctx context.Context) ([]string, error)
	PruneSnapshots(ctx context.Context, olderThan time.Duration) (int64, error)
}

// FeedLoaderInterface reads a client's per-bank feed directory.
type FeedLoaderInterface interface {
	Load(ctx context.Context, dir string) (*feed.Data, error)
	LoadLenient(ctx context.Context, dir string) (*feed.Data, error)
}

// ExportServiceInterface renders the dashboard as a spreadsheet.
type ExportServiceInterface interface {
	ExportDashboard(ctx context.Context, clientID string) ([]byte, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	AddCounter(name string, value float64, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type FeedLoggerInterface interface {
	LogSnapshotImported(ctx context.Context, clientID string, snapshotID string, accounts, transactions int)
	LogSnapshotImportFailed(ctx context.Context, clientID string, errorMsg string)
	LogSnapshotsPruned(ctx context.Context, deleted int64, cutoff time.Time)
	LogAggregationCompleted(ctx context.Context, clientID, kind string, records int, durationMs int64)
	LogTransactionsSkipped(ctx context.Context, clientID string, undated, zeroOrMalformed int)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogFeedUnavailable(ctx context.Context, clientID string, errorMsg string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
