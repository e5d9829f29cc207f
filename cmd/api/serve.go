package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-insights/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/kanso-insights/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-insights/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-insights/internal/config"
	"github.com/comitanigiacomo/kanso-insights/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-insights/internal/core/domain"
	"github.com/comitanigiacomo/kanso-insights/internal/core/services"
	"github.com/comitanigiacomo/kanso-insights/internal/core/workers"
	"github.com/comitanigiacomo/kanso-insights/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var port string

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info("starting kanso insights", "env", cfg.Server.Env, "storage", cfg.Storage.Backend,
		"timezone", cfg.Stats.Timezone, "locale", cfg.Stats.Locale)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		repo domain.EventRepository
		db   *sqlx.DB
		rdb  *redis.Client
	)

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		repo = repository.NewInMemoryEventRepository()
	default:
		db, err = openDB(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		log.Info("database connected", "driver", cfg.Database.Driver, "host", cfg.Database.Host)

		repo = repository.NewPostgresEventRepository(db)
	}

	if cfg.Redis.Enabled {
		rdb, err = cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		log.Info("redis connected", "host", cfg.Redis.Host, "cache_ttl", cfg.Redis.CacheTTL)

		repo = repository.NewCachedEventRepository(repo, rdb, cfg.Redis.CacheTTL, log)
	}

	loc := cfg.Stats.Location()
	calc := analytics.NewCalculator(
		analytics.WithLocation(loc),
		analytics.WithLocale(analytics.ParseLocale(cfg.Stats.Locale)),
	)

	worker := workers.NewStreakWorker(repo, calc, log)
	worker.Start(ctx)

	eventService := services.NewEventService(repo, worker, loc)
	statsService := services.NewStatsService(repo, calc)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := adapterHTTP.RouterDependencies{
		EventHandler:    adapterHTTP.NewEventHandler(eventService, log),
		StatsHandler:    adapterHTTP.NewStatsHandler(statsService, log),
		DB:              db,
		Redis:           rdb,
		RateLimit:       cfg.RateLimit.Requests,
		RateLimitWindow: cfg.RateLimit.Window,
		StartTime:       startTime,
		Logger:          log,
	}
	if cfg.Auth.Secret != "" {
		deps.Tokens = services.NewTokenService(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	} else {
		log.Warn("auth.secret not set, API is unauthenticated")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      adapterHTTP.NewRouter(deps),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("stop signal received, shutting down")
	}

	return shutdown(srv, log)
}

func shutdown(srv *http.Server, log *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}
