package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"mercato/internal/app/events"
	"mercato/internal/config"
	healthhandler "mercato/internal/http/handlers/health"
	"mercato/internal/http/router"
	"mercato/internal/kafka"
	"mercato/internal/logging"
	"mercato/internal/telemetry"
)

func main() {
	// Top-level context with graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1) Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2) Initialize logger
	logger := logging.New(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceEnv,
	)

	logger.Info("starting service",
		"env", cfg.Environment,
	)

	// 3) Initialize telemetry (OpenTelemetry)
	otelShutdown, err := telemetry.Setup(ctx, cfg.Observability, logger)
	if err != nil {
		logger.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", "error", err)
		}
	}()

	// 4) Kafka service: one producer connection plus the standard
	// consumer group topology. A failed boot here is fatal by design.
	eventService := kafka.NewService(cfg.Kafka, logger)
	if cfg.Kafka.Enabled {
		regs := events.Registrations(cfg.Kafka, logger)
		if err := eventService.Start(ctx, regs); err != nil {
			logger.Error("failed to start kafka service", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Info("kafka disabled, event messaging not started")
	}

	// 5) HTTP surface: health, metrics, service info
	healthHandler := healthhandler.NewHandler(eventService, cfg.Kafka.Enabled)
	httpRouter := router.NewRouter(
		logger,
		cfg.Observability.ServiceName,
		healthHandler,
	)

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: otelhttp.NewHandler(
			httpRouter,
			cfg.Observability.ServiceName,
		),
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting",
			"host", cfg.HTTP.Host,
			"port", cfg.HTTP.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 6) Wait for shutdown signal or a fatal subsystem error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		logger.Error("fatal error from subsystem", "error", err)
		stop()
	}

	// 7) Graceful shutdown: stop taking requests, then drain consumers
	// and the producer.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", "error", err)
	}

	if err := eventService.Stop(shutdownCtx); err != nil {
		logger.Error("failed to stop kafka service", "error", err)
	}

	logger.Info("service stopped")
}
