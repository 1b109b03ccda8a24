package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plantcare-backend/internal/adapter/postgres/uow"
	"github.com/heartmarshall/plantcare-backend/internal/config"
	"github.com/heartmarshall/plantcare-backend/internal/service/plant"
	"github.com/heartmarshall/plantcare-backend/internal/transport/middleware"
	"github.com/heartmarshall/plantcare-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies pending migrations when enabled and serves HTTP until
// ctx is cancelled. The pool is closed before Run returns.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildAttrs(),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		pool.Close()
		logger.Info("database pool closed")
	}()

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	uows := uow.NewFactory(pool)
	plantService := plant.NewService(logger)

	limit, stopLimiter := rateLimit(cfg.RateLimit, logger)
	defer stopLimiter()

	handler := rest.NewRouter(
		rest.NewPlantHandler(plantService, func() plant.UnitOfWork { return uows.New() }, logger),
		rest.NewHealthHandler(pool, BuildVersion(), logger),
		cfg.CORS,
		limit,
		logger,
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// serve runs srv until ctx is done or the listener fails, then shuts it down
// within the configured timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// rateLimit builds the per-client limiter when enabled. The returned stop
// function is always safe to call.
func rateLimit(cfg config.RateLimitConfig, logger *slog.Logger) (middleware.Middleware, func()) {
	if !cfg.Enabled() {
		return nil, func() {}
	}
	rl := middleware.NewRateLimiter(cfg.CleanupInterval)
	logger.Info("rate limiting enabled", slog.Int("per_minute", cfg.PerMinute))
	return rl.Limit(cfg.PerMinute), rl.Stop
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close() //nolint:errcheck

	if err := m.Up(ctx, logger); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
