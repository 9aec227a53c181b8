package services

import (
	"context"
	"log/slog"
	"time"
)

type correlationKey struct{}

// WithCorrelationID returns ctx carrying id for FeedLogger events.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

type FeedLogger struct {
	logger *slog.Logger
}

func NewFeedLogger(logger *slog.Logger) FeedLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedLogger{
		logger: logger,
	}
}

func (fl *FeedLogger) LogSnapshotImported(ctx context.Context, clientID string, snapshotID string, accounts, transactions int) {
	fl.logger.InfoContext(ctx, "feed snapshot imported",
		slog.String("event_type", "snapshot_imported"),
		slog.String("client_id", clientID),
		slog.String("snapshot_id", snapshotID),
		slog.Int("account_count", accounts),
		slog.Int("transaction_count", transactions),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FeedLogger) LogSnapshotImportFailed(ctx context.Context, clientID string, errorMsg string) {
	fl.logger.WarnContext(ctx, "feed snapshot import failed",
		slog.String("event_type", "snapshot_import_failed"),
		slog.String("client_id", clientID),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FeedLogger) LogSnapshotsPruned(ctx context.Context, deleted int64, cutoff time.Time) {
	fl.logger.InfoContext(ctx, "feed snapshots pruned",
		slog.String("event_type", "snapshots_pruned"),
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FeedLogger) LogAggregationCompleted(ctx context.Context, clientID, kind string, records int, durationMs int64) {
	fl.logger.DebugContext(ctx, "aggregation completed",
		slog.String("event_type", "aggregation_completed"),
		slog.String("client_id", clientID),
		slog.String("kind", kind),
		slog.Int("records", records),
		slog.Int64("duration_ms", durationMs),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FeedLogger) LogTransactionsSkipped(ctx context.Context, clientID string, undated, zeroOrMalformed int) {
	if undated == 0 && zeroOrMalformed == 0 {
		return
	}

	attrs := []slog.Attr{
		slog.String("event_type", "transactions_skipped"),
		slog.String("client_id", clientID),
		slog.String("correlation_id", getCorrelationID(ctx)),
	}
	if undated > 0 {
		attrs = append(attrs, slog.Int("undated", undated))
	}
	if zeroOrMalformed > 0 {
		attrs = append(attrs, slog.Int("zero_or_malformed", zeroOrMalformed))
	}

	fl.logger.LogAttrs(ctx, slog.LevelInfo, "transactions skipped by cashflow", attrs...)
}

func (fl *FeedLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	fl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (fl *FeedLogger) LogFeedUnavailable(ctx context.Context, clientID string, errorMsg string) {
	fl.logger.ErrorContext(ctx, "feed store unavailable",
		slog.String("event_type", "feed_unavailable"),
		slog.String("client_id", clientID),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationKey{}).(string); ok {
		return correlationID
	}

	return ""
}
