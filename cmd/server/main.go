package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-gin-event-wizard/config"
	"go-gin-event-wizard/internal/cache"
	"go-gin-event-wizard/internal/clock"
	"go-gin-event-wizard/internal/database"
	"go-gin-event-wizard/internal/gateway"
	"go-gin-event-wizard/internal/handler"
	"go-gin-event-wizard/internal/notify"
	"go-gin-event-wizard/internal/queue"
	"go-gin-event-wizard/internal/repository"
	"go-gin-event-wizard/internal/service"
	"go-gin-event-wizard/internal/worker"
	"go-gin-event-wizard/migrations"
	"go-gin-event-wizard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// backends Submission Gateway 與 listing 的實際儲存
type backends struct {
	drafts   cache.DraftStore
	queue    queue.PublishQueue
	listings repository.ListingRepository
	closers  []func()
}

func (b *backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

func main() {
	cfg := config.LoadConfig()
	if err := logger.SetLevel(cfg.Server.LogLevel); err != nil {
		logger.L.Fatal("Invalid log level", zap.Error(err))
	}
	defer logger.L.Sync()
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b, err := initBackends(ctx, cfg)
	if err != nil {
		logger.L.Fatal("Failed to initialize backends", zap.Error(err))
	}
	defer b.Close()

	clk := clock.NewSystem()
	gw := gateway.NewGateway(b.drafts, b.queue, clk)
	outbox := notify.NewOutbox(cfg.Wizard.OutboxSize)
	wizardService := service.NewWizardService(cfg.Wizard, gw, outbox, clk, notify.NewLogSink())
	listingService := service.NewListingService(b.listings, clk)

	if err := worker.NewPublishWorker(listingService, b.queue).Start(ctx); err != nil {
		logger.L.Fatal("Failed to start publish worker", zap.Error(err))
	}
	go worker.NewSessionJanitor(wizardService, cfg.Wizard.JanitorInterval).Start(ctx)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handler.NewWizardHandler(wizardService).RegisterRoutes(router)
	handler.NewListingHandler(listingService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.L.Info("Server listening",
			zap.String("addr", srv.Addr),
			zap.String("drafts", cfg.Backends.Drafts),
			zap.String("queue", cfg.Backends.Queue),
			zap.String("listings", cfg.Backends.Listings),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.L.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L.Error("Server shutdown failed", zap.Error(err))
	}
}

func initBackends(ctx context.Context, cfg *config.Config) (*backends, error) {
	b := &backends{}

	var rdb *redis.Client
	if cfg.Backends.Drafts == config.BackendRedis || cfg.Backends.Queue == config.BackendRedis {
		client, err := database.InitRedis(ctx, &cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		rdb = client
		b.closers = append(b.closers, func() { client.Close() })
	}

	switch cfg.Backends.Drafts {
	case config.BackendRedis:
		b.drafts = cache.NewRedisDraftStore(rdb, cfg.Wizard.DraftTTL)
	case config.BackendMemory:
		b.drafts = cache.NewMemoryDraftStore()
	default:
		b.Close()
		return nil, fmt.Errorf("unknown draft backend %q", cfg.Backends.Drafts)
	}

	retryPolicy := queue.RetryPolicy{
		MaxRetryCount: cfg.Backends.QueueMaxRetries,
		MinBackoff:    cfg.Backends.QueueRetryBackoff,
	}
	switch cfg.Backends.Queue {
	case config.BackendRedis:
		q, err := queue.NewRedisStreamPublishQueue(ctx, rdb, "", &queue.RedisStreamPublishQueueConfig{Retry: retryPolicy})
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("init publish queue: %w", err)
		}
		b.queue = q
	case config.BackendMemory:
		b.queue = queue.NewMemoryPublishQueue(100, &retryPolicy)
	default:
		b.Close()
		return nil, fmt.Errorf("unknown queue backend %q", cfg.Backends.Queue)
	}

	switch cfg.Backends.Listings {
	case config.BackendPostgres:
		pool, err := initPostgres(ctx, &cfg.Database)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.closers = append(b.closers, pool.Close)
		b.listings = repository.NewPgListingRepository(pool)
	case config.BackendMemory:
		b.listings = repository.NewMemoryListingRepository()
	default:
		b.Close()
		return nil, fmt.Errorf("unknown listing backend %q", cfg.Backends.Listings)
	}

	return b, nil
}

func initPostgres(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	pool, err := database.InitDatabase(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := migrations.Up(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return pool, nil
}
