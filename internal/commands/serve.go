package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"monetrix-dashboard/internal/config"
	"monetrix-dashboard/internal/database"
	"monetrix-dashboard/internal/jobs"
	"monetrix-dashboard/internal/middleware"
	"monetrix-dashboard/internal/repositories"
	"monetrix-dashboard/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API and snapshot pruning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := setupLogger(os.Stdout, cfg.Server)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, cfg, logger)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", "error", err)
		}
	}()

	banks, err := config.LoadBankDirectory(cfg.Feed.BankDirectoryPath)
	if err != nil {
		return err
	}

	svc, err := newServiceSet(cfg, repositories.NewFeedSnapshotRepository(db.DB), banks, prometheus.DefaultRegisterer, logger)
	if err != nil {
		return err
	}

	loc, _ := cfg.Dashboard.Location()
	scheduler, err := jobs.NewScheduler(svc.Feed, jobs.SchedulerConfig{
		PruneSchedule: cfg.Feed.PruneSchedule,
		Retention:     cfg.Feed.SnapshotRetention,
		Location:      loc,
	}, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, 2*cfg.Server.RateLimitPerSecond)
	go limiter.Run(ctx)

	e := server.New(server.Dependencies{
		Config:      cfg.Server,
		Store:       db,
		Dashboard:   svc.Dashboard,
		Feed:        svc.Feed,
		Export:      svc.Export,
		Gatherer:    prometheus.DefaultGatherer,
		RateLimiter: limiter,
	})
	srv := server.NewHTTPServer(cfg.Server, e)

	scheduler.Start()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := scheduler.Stop(shutdownCtx); err != nil {
		logger.Warn("scheduler did not stop in time", "error", err)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("server stopped gracefully")
	return nil
}
