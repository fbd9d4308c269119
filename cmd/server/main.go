package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sms-ledger/internal/config"
	"sms-ledger/internal/database"
	"sms-ledger/internal/logging"
	"sms-ledger/internal/server"
	"sms-ledger/internal/services"

	"github.com/prometheus/client_golang/prometheus"
)

const auditPruneInterval = 24 * time.Hour

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, cfg.Server.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	deps, err := server.NewDependencies(cfg, db.DB, prometheus.DefaultRegisterer, prometheus.DefaultGatherer, logger)
	if err != nil {
		return err
	}

	e := server.NewRouter(*deps)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go deps.UnlockLimiter.Run(ctx)
	go pruneAuditLogs(ctx, deps.AuditService, cfg.Security.AuditRetention, logger)

	serverErr := make(chan error, 1)
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", slog.String("addr", addr), slog.String("environment", cfg.Server.Environment))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server exited")
	return nil
}

func pruneAuditLogs(ctx context.Context, auditService services.AuditServiceInterface, retention time.Duration, logger *slog.Logger) {
	if retention <= 0 {
		return
	}

	ticker := time.NewTicker(auditPruneInterval)
	defer ticker.Stop()

	for {
		deleted, err := auditService.PruneOlderThan(ctx, retention)
		if err != nil {
			logger.ErrorContext(ctx, "failed to prune audit logs", slog.Any("error", err))
		} else if deleted > 0 {
			logger.InfoContext(ctx, "pruned audit logs", slog.Int64("deleted", deleted))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
