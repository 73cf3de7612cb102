package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"credit-dashboard/internal/analytics"
	"credit-dashboard/internal/api"
	"credit-dashboard/internal/batch"
	"credit-dashboard/internal/config"
	"credit-dashboard/internal/domain/portfolio"
	"credit-dashboard/internal/event"
	"credit-dashboard/internal/infrastructure/logging"

	_ "credit-dashboard/docs"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// @title Credit Dashboard API
// @version 1.0
// @description Read API over a deterministically generated pharmacy credit portfolio: loans, installment schedules and delinquency analytics.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
func main() {
	cfg, logger := initializeApp()

	store := initializeStore(cfg, logger)

	publisher, amqpConn := initializePublisher(cfg, logger)
	defer closeBroker(amqpConn, logger)

	thresholds := analytics.AlertThresholds{
		Warning:  cfg.Alerts.WarningThreshold,
		Critical: cfg.Alerts.CriticalThreshold,
	}
	refreshJob := batch.NewRefreshSnapshotJob(store, publisher, thresholds, cfg.Generator.Seed, cfg.Generator.LoanCount, logger)

	cronScheduler := startBatchJobs(cfg, logger, refreshJob)
	router := api.SetupRouter(store, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, cronScheduler, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.Logger)
	slog.SetDefault(logger)
	logger.Info("Application starting...", "config_source", viper.ConfigFileUsed())

	return cfg, logger
}

func initializeStore(cfg *config.Config, logger *slog.Logger) *portfolio.Store {
	logger.Info("Building initial portfolio snapshot...",
		"seed", cfg.Generator.Seed, "loan_count", cfg.Generator.LoanCount)

	snap, err := portfolio.BuildSnapshot(cfg.Generator.Seed, cfg.Generator.LoanCount, time.Now())
	if err != nil {
		logger.Error("Failed to build initial snapshot", "error", err)
		os.Exit(1)
	}
	logger.Info("Initial snapshot ready",
		"loans", len(snap.Loans), "installments", len(snap.Installments))
	return portfolio.NewStore(snap)
}

func initializePublisher(cfg *config.Config, logger *slog.Logger) (event.EventPublisher, *amqp.Connection) {
	if cfg.RabbitMQ.Host == "" {
		logger.Info("No message broker configured, alert events will only be logged.")
		return event.NoopPublisher{Logger: logger}, nil
	}

	conn, err := connectToRabbitMQ(cfg.RabbitMQ, logger)
	if err != nil {
		logger.Warn("Could not connect to RabbitMQ, falling back to log-only events", "error", err)
		return event.NoopPublisher{Logger: logger}, nil
	}

	publisher, err := event.NewRabbitMQEventPublisher(conn, cfg.RabbitMQ.ExchangeName, logger)
	if err != nil {
		logger.Warn("Could not set up event publisher, falling back to log-only events", "error", err)
		conn.Close()
		return event.NoopPublisher{Logger: logger}, nil
	}
	return publisher, conn
}

func connectToRabbitMQ(cfg config.RabbitMQConfig, logger *slog.Logger) (*amqp.Connection, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.Username, cfg.Password, cfg.Host, cfg.Port)

	var conn *amqp.Connection
	var err error
	for attempt := 1; attempt <= 5; attempt++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			logger.Info("Connected to RabbitMQ", "host", cfg.Host, "attempt", attempt)
			return conn, nil
		}
		logger.Warn("RabbitMQ connection failed, retrying...", "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	return nil, fmt.Errorf("connecting to RabbitMQ after retries: %w", err)
}

func closeBroker(conn *amqp.Connection, logger *slog.Logger) {
	if conn == nil {
		return
	}
	logger.Info("Closing RabbitMQ connection...")
	if err := conn.Close(); err != nil {
		logger.Warn("Failed to close RabbitMQ connection", "error", err)
	}
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			serverErrors <- err
		} else {
			logger.Info("Server closed gracefully.")
			serverErrors <- nil
		}
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, cronScheduler *cron.Cron, shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	logger.Info("Shutdown handler started. Waiting for signal or server error...")

	var triggerReason string
	select {
	case sig := <-shutdownChan:
		triggerReason = "signal: " + sig.String()
		logger.Info("Shutdown signal received.", "signal", sig.String())
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server exited unexpectedly before signal", "error", err)
			os.Exit(1)
		}
		triggerReason = "server exited"
		logger.Info("Server goroutine finished before signal.", "error", err)
	}

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)

	logger.Info("Stopping cron scheduler...")
	cronCtx := cronScheduler.Stop()
	select {
	case <-cronCtx.Done():
		logger.Info("Cron scheduler stopped gracefully.")
	case <-time.After(15 * time.Second):
		logger.Warn("Cron scheduler shutdown timed out.")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server graceful shutdown failed", "error", err)
		} else {
			logger.Info("HTTP server shutdown initiated.")
		}
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}
	logger.Info("Waiting for server goroutine to confirm exit...")
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Server goroutine exited with unexpected error after shutdown", "error", err)
		} else {
			logger.Info("Server goroutine confirmed exit.")
		}
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for server goroutine confirmation.")
	}

	logger.Info("Application shutdown process complete.")
}

func startBatchJobs(cfg *config.Config, logger *slog.Logger, refreshJob *batch.RefreshSnapshotJob) *cron.Cron {
	logger.Info("Initializing batch job scheduler...")
	c := cron.New()

	scheduleSpec := cfg.Batch.RefreshSchedule
	if scheduleSpec == "" {
		scheduleSpec = "0 6 * * *"
		logger.Warn("Snapshot refresh schedule not configured, using default", "schedule", scheduleSpec)
	}
	jobTimeout := cfg.Batch.RefreshTimeout
	if jobTimeout <= 0 {
		jobTimeout = 5 * time.Minute
	}

	jobID, err := c.AddJob(scheduleSpec, cron.FuncJob(func() {
		jobLogger := logger.With("job_name", "SnapshotRefresh")
		jobLogger.Info("Cron triggered: Running snapshot refresh job.")

		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if runErr := refreshJob.Run(ctx); runErr != nil {
			jobLogger.Error("Snapshot refresh job finished with error", slog.Any("error", runErr))
		} else {
			jobLogger.Info("Snapshot refresh job finished successfully.")
		}
	}))

	if err != nil {
		logger.Error("Failed to schedule snapshot refresh job", "schedule", scheduleSpec, slog.Any("error", err))
	} else {
		logger.Info("Scheduled snapshot refresh job", "schedule", scheduleSpec, "job_id", jobID)
	}

	c.Start()
	logger.Info("Cron scheduler started.")
	return c
}
