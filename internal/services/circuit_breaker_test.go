package services

import (
	"testing"
	"time"

	"monetrix-dashboard/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transition struct {
	from, to models.CircuitBreakerState
}

func newTestBreaker(t *testing.T, clock *time.Time) (*CircuitBreaker, *[]transition) {
	t.Helper()
	var seen []transition
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Name:            "feed_store",
		MaxFailures:     2,
		ResetTimeout:    time.Second,
		HalfOpenMaxSucc: 2,
		OnStateChange: func(_ string, from, to models.CircuitBreakerState) {
			seen = append(seen, transition{from, to})
		},
	}).(*CircuitBreaker)
	cb.now = func() time.Time { return *clock }
	return cb, &seen
}

func TestCircuitBreaker_OpensAfterMaxFailures(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb, seen := newTestBreaker(t, &clock)

	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 1, cb.GetFailureCount())

	cb.RecordFailure()
	assert.True(t, cb.IsOpen())
	assert.Equal(t, models.CircuitBreakerOpen, cb.GetState())
	assert.Equal(t, []transition{{models.CircuitBreakerClosed, models.CircuitBreakerOpen}}, *seen)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	clock := time.Now()
	cb, _ := newTestBreaker(t, &clock)

	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	assert.False(t, cb.IsOpen())
	assert.Equal(t, 1, cb.GetFailureCount())
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb, seen := newTestBreaker(t, &clock)
	cb.RecordFailure()
	cb.RecordFailure()
	require.True(t, cb.IsOpen())

	clock = clock.Add(2 * time.Second)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, models.CircuitBreakerHalfOpen, cb.GetState())

	cb.RecordSuccess()
	assert.Equal(t, models.CircuitBreakerHalfOpen, cb.GetState())
	cb.RecordSuccess()
	assert.Equal(t, models.CircuitBreakerClosed, cb.GetState())

	assert.Equal(t, []transition{
		{models.CircuitBreakerClosed, models.CircuitBreakerOpen},
		{models.CircuitBreakerOpen, models.CircuitBreakerHalfOpen},
		{models.CircuitBreakerHalfOpen, models.CircuitBreakerClosed},
	}, *seen)
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cb, _ := newTestBreaker(t, &clock)
	cb.RecordFailure()
	cb.RecordFailure()
	clock = clock.Add(2 * time.Second)
	require.False(t, cb.IsOpen())

	cb.RecordFailure()

	assert.True(t, cb.IsOpen())
}

func TestCircuitBreaker_Reset(t *testing.T) {
	clock := time.Now()
	cb, _ := newTestBreaker(t, &clock)
	cb.RecordFailure()
	cb.RecordFailure()

	cb.Reset()

	assert.Equal(t, models.CircuitBreakerClosed, cb.GetState())
	assert.Zero(t, cb.GetFailureCount())
}

func TestObserveStateChanges_ExportsGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg).(*PrometheusMetrics)
	hook := ObserveStateChanges(metrics, NewFeedLogger(nil))

	hook("feed_store", models.CircuitBreakerClosed, models.CircuitBreakerOpen)

	assert.Equal(t, float64(models.CircuitBreakerOpen),
		testutil.ToFloat64(metrics.circuitBreakerState.WithLabelValues("feed_store")))
}

func TestCircuitBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", models.CircuitBreakerClosed.String())
	assert.Equal(t, "open", models.CircuitBreakerOpen.String())
	assert.Equal(t, "half_open", models.CircuitBreakerHalfOpen.String())
	assert.Equal(t, "unknown", models.CircuitBreakerState(9).String())
}
