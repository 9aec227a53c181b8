package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics.
const (
	MetricAggregationPass     = "aggregation.pass"
	MetricAggregationRecords  = "aggregation.records"
	MetricAggregationDuration = "aggregation.duration"
	MetricTransactionsSkipped = "cashflow.transactions_skipped"
	MetricSnapshotLoad        = "snapshot.load"
	MetricSnapshotImported    = "snapshot.imported"
	MetricSnapshotsPruned     = "snapshot.pruned"
	MetricCircuitBreakerState = "circuit_breaker.state"
	MetricExportGenerated     = "export.generated"
	MetricExportDuration      = "export.duration"
	MetricFeedBanksLoaded     = "feed.banks_loaded"
	MetricFeedLoadDuration    = "feed.load"
)

type PrometheusMetrics struct {
	aggregationPasses   *prometheus.CounterVec
	aggregationRecords  *prometheus.HistogramVec
	aggregationDuration prometheus.Histogram
	transactionsSkipped *prometheus.CounterVec
	snapshotLoads       *prometheus.CounterVec
	snapshotsImported   *prometheus.CounterVec
	snapshotsPruned     prometheus.Counter
	circuitBreakerState *prometheus.GaugeVec
	exportsGenerated    *prometheus.CounterVec
	exportDuration      prometheus.Histogram
	feedBanksLoaded     prometheus.Gauge
	feedLoadDuration    prometheus.Histogram
}

// NewPrometheusMetrics registers the dashboard metrics with reg. A nil reg
// means the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		aggregationPasses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_aggregation_passes_total",
				Help: "Total number of aggregation passes",
			},
			[]string{"kind"},
		),
		aggregationRecords: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_aggregation_input_records",
				Help:    "Number of raw records fed into one aggregation pass",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"kind"},
		),
		aggregationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_aggregation_duration_milliseconds",
				Help:    "Aggregation pass duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
		),
		transactionsSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_cashflow_transactions_skipped_total",
				Help: "Transactions left out of the cashflow series",
			},
			[]string{"reason"},
		),
		snapshotLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_snapshot_loads_total",
				Help: "Snapshot reads by outcome",
			},
			[]string{"status"},
		),
		snapshotsImported: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "feed_snapshots_imported_total",
				Help: "Snapshot imports by outcome",
			},
			[]string{"status"},
		),
		snapshotsPruned: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "feed_snapshots_pruned_total",
				Help: "Snapshots deleted by retention pruning",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		exportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_exports_total",
				Help: "Spreadsheet exports by outcome",
			},
			[]string{"status"},
		),
		exportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_export_duration_milliseconds",
				Help:    "Spreadsheet export duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		feedBanksLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "feed_banks_loaded",
				Help: "Number of bank files in the last loaded feed directory",
			},
		),
		feedLoadDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "feed_load_duration_milliseconds",
				Help:    "Feed directory load duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	m.AddCounter(name, 1, tags)
}

func (m *PrometheusMetrics) AddCounter(name string, value float64, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricAggregationPass:
		m.aggregationPasses.WithLabelValues(tags["kind"]).Add(value)
	case MetricTransactionsSkipped:
		if reason := tags["reason"]; reason != "" {
			m.transactionsSkipped.WithLabelValues(reason).Add(value)
		}
	case MetricSnapshotLoad:
		if status != "" {
			m.snapshotLoads.WithLabelValues(status).Add(value)
		}
	case MetricSnapshotImported:
		if status != "" {
			m.snapshotsImported.WithLabelValues(status).Add(value)
		}
	case MetricSnapshotsPruned:
		m.snapshotsPruned.Add(value)
	case MetricExportGenerated:
		if status != "" {
			m.exportsGenerated.WithLabelValues(status).Add(value)
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	ms := float64(duration.Microseconds()) / 1000
	switch name {
	case MetricAggregationDuration:
		m.aggregationDuration.Observe(ms)
	case MetricExportDuration:
		m.exportDuration.Observe(ms)
	case MetricFeedLoadDuration:
		m.feedLoadDuration.Observe(ms)
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricAggregationRecords:
		m.aggregationRecords.WithLabelValues(tags["kind"]).Observe(value)
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricFeedBanksLoaded:
		m.feedBanksLoaded.Set(value)
	}
}
