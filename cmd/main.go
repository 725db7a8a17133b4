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

	"github.com/prometheus/client_golang/prometheus"

	httpadapter "vast-core/internal/adapter/http"
	"vast-core/internal/adapter/postgres"
	"vast-core/internal/adapter/usecase"
	"vast-core/internal/config"
	"vast-core/internal/core/vast"
	"vast-core/internal/db"
	"vast-core/internal/metrics"
)

// main is the entry point of the vast-core service. It loads configuration,
// optionally runs database migrations, initializes the database pool and the
// parser, then starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	parser := vast.NewParser(vast.WithLimits(cfg.Parser.Limits()))
	repo := postgres.NewDocumentRepository(pool)
	svc := usecase.NewDocumentUseCase(repo, parser, metrics.New(prometheus.DefaultRegisterer), logger)

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, svc); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("sample documents seeded")
	}

	handler := httpadapter.NewHandler(svc, prometheus.DefaultGatherer, int64(parser.Limits().MaxInputBytes), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		exitCode = 0
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			return
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
