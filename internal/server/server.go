// Package server wires the echo instance: middleware order, error handling
// and the dashboard routes.
package server

import (
	"net/http"
	"time"

	"monetrix-dashboard/internal/config"
	"monetrix-dashboard/internal/handlers"
	"monetrix-dashboard/internal/middleware"
	"monetrix-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxFeedBody bounds POST /api/feeds payloads
const maxFeedBody = "10M"

// Dependencies are the collaborators the routes are served from.
type Dependencies struct {
	Config      config.ServerConfig
	Store       handlers.HealthChecker
	Dashboard   services.DashboardServiceInterface
	Feed        services.FeedServiceInterface
	Export      services.ExportServiceInterface
	Gatherer    prometheus.Gatherer
	RateLimiter *middleware.RateLimiter
}

// New builds the echo instance with every route registered.
func New(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  deps.Config.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader, echo.HeaderContentDisposition},
	}))

	health := handlers.NewHealthCheckHandler(deps.Store)
	e.GET("/health", health.HealthCheck)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}

	dashboard := handlers.NewDashboardHandler(deps.Dashboard, deps.Export)
	dash := api.Group("/dashboard")
	dash.GET("/summary", dashboard.GetSummary)
	dash.GET("/banks", dashboard.GetBanks)
	dash.GET("/cashflow", dashboard.GetCashflow)
	dash.GET("/transactions", dashboard.ListTransactions)
	dash.GET("/export", dashboard.Export)
	api.GET("/recommendations", dashboard.GetRecommendations)

	feeds := handlers.NewFeedHandler(deps.Feed)
	api.GET("/feeds", feeds.ListClients)
	api.POST("/feeds/:clientId", feeds.ImportFeed, echomw.BodyLimit(maxFeedBody))

	return e
}

// NewHTTPServer applies the configured address and timeouts to e.
func NewHTTPServer(cfg config.ServerConfig, e *echo.Echo) *http.Server {
	return &http.Server{
		Addr:              cfg.Host + ":" + cfg.Port,
		Handler:           e,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}
}
