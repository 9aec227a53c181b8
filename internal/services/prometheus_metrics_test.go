package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) (*PrometheusMetrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, ok := NewPrometheusMetrics(reg).(*PrometheusMetrics)
	require.True(t, ok)
	return m, reg
}

func TestPrometheusMetrics_Counters(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.IncrementCounter(MetricAggregationPass, map[string]string{"kind": "banks"})
	m.IncrementCounter(MetricAggregationPass, map[string]string{"kind": "banks"})
	m.AddCounter(MetricTransactionsSkipped, 4, map[string]string{"reason": "undated"})
	m.IncrementCounter(MetricSnapshotLoad, map[string]string{"status": "ok"})
	m.IncrementCounter(MetricSnapshotImported, map[string]string{"status": "error"})
	m.AddCounter(MetricSnapshotsPruned, 7, nil)
	m.IncrementCounter(MetricExportGenerated, map[string]string{"status": "ok"})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.aggregationPasses.WithLabelValues("banks")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.transactionsSkipped.WithLabelValues("undated")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.snapshotLoads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.snapshotsImported.WithLabelValues("error")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.snapshotsPruned))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exportsGenerated.WithLabelValues("ok")))
}

func TestPrometheusMetrics_MissingLabelIgnored(t *testing.T) {
	m, _ := newTestMetrics(t)

	m.IncrementCounter(MetricSnapshotLoad, nil)
	m.AddCounter(MetricTransactionsSkipped, 1, map[string]string{})

	assert.Equal(t, 0, testutil.CollectAndCount(m.snapshotLoads))
	assert.Equal(t, 0, testutil.CollectAndCount(m.transactionsSkipped))
}

func TestPrometheusMetrics_GaugesAndHistograms(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.RecordGauge(MetricFeedBanksLoaded, 3, nil)
	m.RecordGauge(MetricCircuitBreakerState, 1, map[string]string{"service": "feed_store"})
	m.RecordGauge(MetricAggregationRecords, 12, map[string]string{"kind": "cashflow"})
	m.RecordProcessingTime(MetricAggregationDuration, 3*time.Millisecond)
	m.RecordProcessingTime(MetricExportDuration, 40*time.Millisecond)
	m.RecordProcessingTime(MetricFeedLoadDuration, 5*time.Millisecond)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.feedBanksLoaded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.circuitBreakerState.WithLabelValues("feed_store")))

	families, err := reg.Gather()
	require.NoError(t, err)
	counts := map[string]uint64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if h := metric.GetHistogram(); h != nil {
				counts[mf.GetName()] += h.GetSampleCount()
			}
		}
	}
	assert.Equal(t, uint64(1), counts["dashboard_aggregation_input_records"])
	assert.Equal(t, uint64(1), counts["dashboard_aggregation_duration_milliseconds"])
	assert.Equal(t, uint64(1), counts["dashboard_export_duration_milliseconds"])
	assert.Equal(t, uint64(1), counts["feed_load_duration_milliseconds"])
}

func TestPrometheusMetrics_UnknownNameIsNoop(t *testing.T) {
	m, reg := newTestMetrics(t)

	m.IncrementCounter("unknown.metric", map[string]string{"status": "ok"})
	m.RecordGauge("unknown.metric", 1, nil)
	m.RecordProcessingTime("unknown.metric", time.Second)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				assert.Zero(t, c.GetValue(), mf.GetName())
			}
		}
	}
}
