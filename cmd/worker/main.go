package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/influencer-hub/backend/internal/config"
	"github.com/influencer-hub/backend/internal/db"
	"github.com/influencer-hub/backend/internal/repositories"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, 2, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	auditRepo := repositories.NewAuditRepo(pool)

	log.Info("worker started",
		zap.Duration("audit_retention", cfg.AuditRetention),
		zap.Duration("audit_prune_interval", cfg.AuditPruneInterval),
	)

	pruneTicker := time.NewTicker(cfg.AuditPruneInterval)
	defer pruneTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	runAuditPrune(ctx, auditRepo, cfg.AuditRetention, log)
	for {
		select {
		case <-pruneTicker.C:
			runAuditPrune(ctx, auditRepo, cfg.AuditRetention, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

func runAuditPrune(ctx context.Context, auditRepo *repositories.AuditRepo, retention time.Duration, log *zap.Logger) {
	if retention <= 0 {
		return
	}
	cutoff := time.Now().Add(-retention)
	n, err := auditRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Error("failed to prune audit log", zap.Error(err))
		return
	}
	if n > 0 {
		log.Info("pruned audit log", zap.Int64("rows", n), zap.Time("cutoff", cutoff))
	}
}
