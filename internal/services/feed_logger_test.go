package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedFeedLogger(level slog.Level) (FeedLoggerInterface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
	return NewFeedLogger(logger), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestFeedLogger_SnapshotImportedCarriesCorrelationID(t *testing.T) {
	fl, buf := newBufferedFeedLogger(slog.LevelInfo)
	ctx := WithCorrelationID(context.Background(), "trace-123")

	fl.LogSnapshotImported(ctx, "client-1", "snap-1", 3, 10)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "feed snapshot imported", entries[0]["msg"])
	assert.Equal(t, "snapshot_imported", entries[0]["event_type"])
	assert.Equal(t, "client-1", entries[0]["client_id"])
	assert.Equal(t, float64(3), entries[0]["account_count"])
	assert.Equal(t, "trace-123", entries[0]["correlation_id"])
}

func TestFeedLogger_TransactionsSkipped(t *testing.T) {
	fl, buf := newBufferedFeedLogger(slog.LevelInfo)

	fl.LogTransactionsSkipped(context.Background(), "client-1", 0, 0)
	assert.Zero(t, buf.Len())

	fl.LogTransactionsSkipped(context.Background(), "client-1", 2, 0)
	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(2), entries[0]["undated"])
	assert.NotContains(t, entries[0], "zero_or_malformed")
	assert.Equal(t, "", entries[0]["correlation_id"])
}

func TestFeedLogger_Levels(t *testing.T) {
	fl, buf := newBufferedFeedLogger(slog.LevelInfo)
	ctx := context.Background()

	fl.LogAggregationCompleted(ctx, "client-1", "banks", 5, 1)
	fl.LogSnapshotsPruned(ctx, 4, time.Now())
	fl.LogSnapshotImportFailed(ctx, "client-1", "boom")
	fl.LogCircuitBreakerStateChange(ctx, "feed_store", "closed", "open")
	fl.LogFeedUnavailable(ctx, "client-1", "circuit breaker is open")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 4)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, float64(4), entries[0]["deleted"])
	assert.Equal(t, "WARN", entries[1]["level"])
	assert.Equal(t, "WARN", entries[2]["level"])
	assert.Equal(t, "open", entries[2]["new_state"])
	assert.Equal(t, "ERROR", entries[3]["level"])
}
