package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"plaza_storefront_backend/internal/analytics"
	"plaza_storefront_backend/internal/email"
	"plaza_storefront_backend/internal/events"
	apphttp "plaza_storefront_backend/internal/http"
	"plaza_storefront_backend/internal/http/router"
	"plaza_storefront_backend/internal/leads"
	"plaza_storefront_backend/internal/notification"
	"plaza_storefront_backend/internal/properties"
	"plaza_storefront_backend/internal/scheduler"
	"plaza_storefront_backend/platform/config"
	"plaza_storefront_backend/platform/db"
	"plaza_storefront_backend/platform/httpkit"
	"plaza_storefront_backend/platform/logger"
	"plaza_storefront_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	shutdownTimeout   = 10 * time.Second
	limiterSweepEvery = 5 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	pool := initDatabase(ctx, cfg, log)
	if pool != nil {
		defer pool.Close()
	}

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	sender, emailEnabled, err := email.NewSender(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}
	log.Info("email sender initialized", "provider", email.ResolveProvider(cfg), "enabled", emailEnabled)

	queue, closeQueue := initConfirmationQueue(cfg, log)
	if closeQueue != nil {
		defer closeQueue()
	}

	redisClient := initRedis(cfg, log)
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	loc, err := time.LoadLocation(cfg.GetTimezone())
	if err != nil {
		panic("failed to load timezone: " + err.Error())
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.New(sender, log)
	if queue != nil {
		notificationModule.SetConfirmationQueue(queue)
	}
	notificationModule.RegisterHandlers(eventBus)

	catalog, err := loadPropertyCatalog(cfg.GetPropertiesFile())
	if err != nil {
		log.Error("failed to load property catalog", "error", err)
		panic("failed to load property catalog: " + err.Error())
	}
	propertiesModule := properties.NewModule(catalog)

	// A typed nil *redis.Client must not reach the analytics module.
	var funnelStore redis.UniversalClient
	if redisClient != nil {
		funnelStore = redisClient
	}
	analyticsModule := analytics.NewModule(funnelStore, loc, catalog, eventBus, val, log)

	leadsModule, err := leads.NewModule(cfg, leads.Deps{
		Pool:         pool,
		Properties:   catalog,
		Sender:       sender,
		EmailEnabled: emailEnabled,
		Bus:          eventBus,
		Validator:    val,
		Log:          log,
	})
	if err != nil {
		log.Error("failed to initialize leads module", "error", err)
		panic("failed to initialize leads module: " + err.Error())
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	limiter := httpkit.NewIPRateLimiter(rate.Limit(cfg.GetPublicRateLimit()), cfg.GetPublicRateBurst(), log)

	app := &apphttp.App{
		Config:            cfg,
		Logger:            log,
		EventBus:          eventBus,
		PublicRateLimiter: limiter,
		Modules: []apphttp.Module{
			propertiesModule,
			leadsModule,
			analyticsModule,
		},
	}
	if pool != nil {
		app.Health = pool
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		limiter.RunSweeper(gctx, limiterSweepEvery)
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		if err := eventBus.Wait(shutdownCtx); err != nil {
			log.Warn("event handlers still running at shutdown", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// initDatabase connects and migrates when DATABASE_URL is set. It returns nil otherwise.
func initDatabase(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) *pgxpool.Pool {
	if !cfg.IsDatabaseEnabled() {
		log.Warn("DATABASE_URL not configured; leads will not be persisted")
		return nil
	}

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	log.Info("database connection established")

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, pool, log)
	}); err != nil {
		pool.Close()
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	return pool
}

func initConfirmationQueue(cfg config.SchedulerConfig, log *logger.Logger) (scheduler.ConfirmationQueue, func()) {
	if !cfg.IsSchedulerEnabled() {
		log.Warn("REDIS_URL not configured; confirmation emails are sent in-process")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize confirmation queue client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func initRedis(cfg config.SchedulerConfig, log *logger.Logger) *redis.Client {
	if !cfg.IsSchedulerEnabled() {
		log.Warn("REDIS_URL not configured; funnel events are only logged")
		return nil
	}

	client, err := scheduler.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to initialize redis client", "error", err)
		return nil
	}
	return client
}

func loadPropertyCatalog(path string) (*properties.Catalog, error) {
	if path == "" {
		return properties.DefaultCatalog()
	}
	return properties.LoadCatalog(path)
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
