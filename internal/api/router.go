package api

import (
	"log/slog"
	"net/http"
	"time"

	"credit-dashboard/internal/analytics"
	"credit-dashboard/internal/api/handler"
	mw "credit-dashboard/internal/api/middleware"
	"credit-dashboard/internal/config"
	"credit-dashboard/internal/domain/portfolio"

	_ "credit-dashboard/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func SetupRouter(store *portfolio.Store, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupPortfolioRoutes(router, store, cfg, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupPortfolioRoutes(router *chi.Mux, store *portfolio.Store, cfg *config.Config, logger *slog.Logger) {
	thresholds := analytics.AlertThresholds{
		Warning:  cfg.Alerts.WarningThreshold,
		Critical: cfg.Alerts.CriticalThreshold,
	}
	h := handler.NewDashboardHandler(store, thresholds, logger)

	router.Route("/portfolio", func(r chi.Router) {
		r.Get("/summary", h.GetSummary)
		r.Get("/installment-states", h.GetInstallmentStates)
		r.Get("/client-categories", h.GetClientCategories)
		r.Get("/monthly-disbursements", h.GetMonthlyDisbursements)
		r.Get("/loan-statuses", h.GetLoanStatuses)
		r.Get("/clients/top-active", h.GetTopActiveClients)
		r.Route("/delinquency", func(r chi.Router) {
			r.Get("/top-clients", h.GetTopDelinquentClients)
			r.Get("/aging", h.GetDelinquencyAging)
			r.Get("/overdue-detail", h.GetOverdueDetail)
		})
		r.Get("/collections/projection", h.GetCollectionProjection)
	})
}
