// Package main is the entry point for the background worker.
// The worker drains the transactional outbox and drives the customer
// rollup recompute off the written events.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/muhammadrohan3/storeManagementSystem/internal/domain/rollup"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/cache"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/muhammadrohan3/storeManagementSystem/internal/infrastructure/storage/postgres/report_repo"
	"github.com/muhammadrohan3/storeManagementSystem/pkg/logger"
)

const (
	outboxBatchSize    = 100
	pollInterval       = 5 * time.Second
	purgeInterval      = time.Hour
	publishedRetention = 24 * time.Hour
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Info("starting storems worker")

	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	var balanceCache cache.BalanceCache = cache.NoopBalanceCache{}
	if redisAddr := getEnv("REDIS_ADDR", ""); redisAddr != "" {
		redisCache := cache.NewRedisBalanceCache(
			redisAddr,
			getEnv("REDIS_PASSWORD", ""),
			0,
		)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warnw("redis unavailable, cache invalidation disabled", "error", err)
		} else {
			balanceCache = redisCache
			defer redisCache.Close()
		}
	}

	rollupRepo := report_repo.NewRollupRepo(txManager)
	customerRepo := catalog_repo.NewCustomerRepo(txManager)
	rollupService := rollup.NewService(rollupRepo, customerRepo)

	handler := &rollupHandler{
		service:  rollupService,
		balances: balanceCache,
		log:      log.WithComponent("rollup"),
	}
	relay := postgres.NewOutboxRelay(pool.Unwrap(), outboxBatchSize, handler)

	worker := &Worker{
		relay: relay,
		log:   log.WithComponent("worker"),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		worker.Run(ctx)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	wg.Wait()
	log.Info("worker stopped")
}

// rollupHandler processes a batch of outbox messages with one full
// recompute. Every event means "some customer's records changed" and
// the recompute is a full scan, so one run settles the whole batch.
type rollupHandler struct {
	service  *rollup.Service
	balances cache.BalanceCache
	log      *logger.Logger
}

func (h *rollupHandler) Handle(ctx context.Context, msgs []*postgres.OutboxMessage) error {
	if err := h.service.Recompute(ctx); err != nil {
		return err
	}

	if err := h.balances.InvalidateAll(ctx); err != nil {
		h.log.Warnw("balance cache invalidation failed", "error", err)
	}

	h.log.Infow("rollup cycle complete", "events", len(msgs))
	return nil
}

// Worker polls the outbox and purges settled messages.
type Worker struct {
	relay *postgres.OutboxRelay
	log   *logger.Logger
}

// Run processes the outbox until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	pollTicker := time.NewTicker(pollInterval)
	defer pollTicker.Stop()

	purgeTicker := time.NewTicker(purgeInterval)
	defer purgeTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-pollTicker.C:
			processed, err := w.relay.ProcessBatch(ctx)
			if err != nil {
				w.log.Errorw("outbox batch failed", "error", err)
				continue
			}
			if processed > 0 {
				w.log.Debugw("outbox batch processed", "count", processed)
			}

		case <-purgeTicker.C:
			removed, err := w.relay.PurgePublished(ctx, publishedRetention)
			if err != nil {
				w.log.Errorw("outbox purge failed", "error", err)
				continue
			}
			if removed > 0 {
				w.log.Infow("outbox purged", "removed", removed)
			}
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}
