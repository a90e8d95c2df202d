package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UnknownOlympus/agora/internal/api"
	"github.com/UnknownOlympus/agora/internal/config"
	"github.com/UnknownOlympus/agora/internal/graphdb"
	"github.com/UnknownOlympus/agora/internal/metrics"
	"github.com/UnknownOlympus/agora/internal/query"
	"github.com/UnknownOlympus/agora/internal/repository"
	"github.com/UnknownOlympus/agora/internal/service"
	"github.com/UnknownOlympus/agora/internal/vocabulary"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	// Create a separate registry for metrics with exemplar
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	// Allow-lists for area and type ids; the embedded file unless overridden.
	vocab, err := vocabulary.Load(cfg.VocabularyPath, cfg.Namespace)
	if err != nil {
		log.Fatalf("Failed to load vocabulary: %v", err)
	}

	queries, err := query.NewBuilder(vocab.Namespace())
	if err != nil {
		log.Fatalf("Failed to load SPARQL queries: %v", err)
	}

	// Every request is answered by the triple store; there is no local state.
	client := graphdb.NewClient(cfg.GraphDB.URL, cfg.GraphDB.Timeout, logger, appMetrics)
	repo := repository.NewRepository(client, queries, logger)

	facilities := service.NewFacilityService(logger, repo, vocab, appMetrics, service.Options{
		CleanLabels:  cfg.CleanLabels,
		DefaultLimit: cfg.SearchLimit,
		MaxLimit:     cfg.SearchMaxLimit,
	})

	server, err := api.New(api.Deps{
		Port:         cfg.Port,
		CORSOrigins:  cfg.CORSOrigins,
		WriteTimeout: cfg.GraphDB.Timeout + 5*time.Second,
		Logger:       logger,
		Service:      facilities,
		Metrics:      appMetrics,
	})
	if err != nil {
		log.Fatalf("Failed to create API server: %v", err)
	}

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.",
		"graphdb", client.Endpoint(),
		"namespace", vocab.Namespace(),
		"port", cfg.Port)

	// Start the monitoring server in a goroutine to allow main to listen for signals.
	go startMonitoringServer(ctx, logger, reg, cfg.MonitoringPort)

	if err = server.Start(ctx); err != nil {
		log.Fatalf("Failed to start API server: %v", err)
	}

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	if err = server.Close(); err != nil {
		logger.ErrorContext(ctx, "Failed to stop API server", "error", err)
	}

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// startMonitoringServer starts an HTTP server that provides liveness and metrics endpoints.
// It listens on the specified port and logs the server's status and any errors encountered.
//
// Parameters:
// - ctx: A context.Context for managing cancellation and timeouts.
// - log: A logger for logging server events and errors.
// - reg: A registry with Prometheus collectors.
// - port: The port number on which the server will listen.
func startMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	port int,
) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(writer http.ResponseWriter, _ *http.Request) {
		// Liveness only: readiness against the triple store is served on /health.
		writer.WriteHeader(http.StatusOK)
		if _, err := writer.Write([]byte("OK")); err != nil {
			log.ErrorContext(ctx, "failed to write reply", "error", err)
		}
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	log.InfoContext(ctx, "Starting monitoring server", "port", port)
	readTimeout := 5
	writeTimeout := 10
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}
	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "Monitoring server failed", "error", err)
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					return a
				},
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
