package commands

import (
	"fmt"
	"log/slog"

	"monetrix-dashboard/internal/config"
	"monetrix-dashboard/internal/feed"
	"monetrix-dashboard/internal/normalize"
	"monetrix-dashboard/internal/repositories"
	"monetrix-dashboard/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

// serviceSet is everything the HTTP server and the jobs are built from
type serviceSet struct {
	Metrics   services.MetricsRecorderInterface
	Dashboard services.DashboardServiceInterface
	Feed      services.FeedServiceInterface
	Export    services.ExportServiceInterface
}

func newNormalizer(cfg config.DashboardConfig) (*normalize.Normalizer, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", cfg.Timezone, err)
	}
	return normalize.New(
		normalize.WithLocale(normalize.Locale(cfg.Locale)),
		normalize.WithLocation(loc),
		normalize.WithMonthCap(cfg.CashflowMonths),
	), nil
}

func newServiceSet(
	cfg *config.Config,
	repo repositories.FeedSnapshotRepositoryInterface,
	banks feed.BankNames,
	reg prometheus.Registerer,
	logger *slog.Logger,
) (*serviceSet, error) {
	normalizer, err := newNormalizer(cfg.Dashboard)
	if err != nil {
		return nil, err
	}

	metrics := services.NewPrometheusMetrics(reg)
	feedLogger := services.NewFeedLogger(logger)

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		Name:            "feed_store",
		MaxFailures:     cfg.Feed.BreakerFailureThreshold,
		ResetTimeout:    cfg.Feed.BreakerTimeout,
		HalfOpenMaxSucc: cfg.Feed.BreakerSuccessThreshold,
		OnStateChange:   services.ObserveStateChanges(metrics, feedLogger),
	})

	dashboard := services.NewDashboardService(repo, normalizer, breaker, metrics, feedLogger, services.DashboardOptions{
		DefaultPageLimit: cfg.Dashboard.DefaultPageLimit,
		MaxPageLimit:     cfg.Dashboard.MaxPageLimit,
	})

	loader := feed.NewLoader(banks, feed.WithLogger(logger))

	return &serviceSet{
		Metrics:   metrics,
		Dashboard: dashboard,
		Feed:      services.NewFeedService(repo, loader, metrics, feedLogger, cfg.Feed.Lenient),
		Export:    services.NewExportService(dashboard, metrics),
	}, nil
}
