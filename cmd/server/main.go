package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	httpAdapter "github.com/dompet/dompet/internal/adapter/http"
	"github.com/dompet/dompet/internal/adapter/http/handler"
	postgresRepo "github.com/dompet/dompet/internal/adapter/repository/postgres"
	redisRepo "github.com/dompet/dompet/internal/adapter/repository/redis"
	"github.com/dompet/dompet/internal/adapter/telegram"
	"github.com/dompet/dompet/internal/infrastructure/config"
	"github.com/dompet/dompet/internal/infrastructure/logger"
	"github.com/dompet/dompet/internal/infrastructure/metrics"
	"github.com/dompet/dompet/internal/infrastructure/postgres"
	"github.com/dompet/dompet/internal/infrastructure/redis"
	"github.com/dompet/dompet/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger
	zerolog.DefaultContextLogger = &appLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}

	appLogger.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	// Connect to PostgreSQL
	pool, err := postgres.Connect(ctx, postgres.PoolConfig{
		DatabaseURL: cfg.DatabaseURL,
		MaxConns:    cfg.DatabaseMaxConns,
		MinConns:    cfg.DatabaseMinConns,
	}, cfg.DatabaseConnectRetry, logger)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()
	logger.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Redis is optional
	redisClient, updateStore := openUpdateStore(ctx, cfg, logger)
	if redisClient != nil {
		defer redisClient.Close()
	}

	var appMetrics *metrics.Metrics
	if cfg.MetricsEnabled {
		appMetrics = metrics.New(prometheus.DefaultRegisterer)
	}

	// Initialize repositories and use cases
	recordRepo := postgresRepo.NewRecordRepository(pool)
	recordUC := usecase.NewRecordUseCase(recordRepo, usecase.NewScanBalance(recordRepo), appMetrics)
	dashboardUC := usecase.NewDashboardUseCase(recordRepo, logger.With().Str("component", "dashboard").Logger(), appMetrics)

	// Initialize handlers
	var cachePinger handler.Pinger
	if redisClient != nil {
		cachePinger = handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}

	routerCfg := httpAdapter.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(recordUC, dashboardUC),
		HealthHandler:      handler.NewHealthHandler(pool, cachePinger),
		Logger:             logger.With().Str("component", "http").Logger(),
		AllowedOrigins:     cfg.CORSAllowedOrigins,
	}
	if cfg.MetricsEnabled {
		routerCfg.MetricsHandler = promhttp.Handler()
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      httpAdapter.NewRouter(routerCfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if bot := newBot(cfg, logger, recordUC, updateStore, appMetrics); bot != nil {
		g.Go(func() error {
			return bot.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// openUpdateStore connects to Redis when configured. Any failure leaves
// the bot running without de-duplication.
func openUpdateStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*goredis.Client, *redisRepo.UpdateStore) {
	if cfg.RedisURL == "" {
		logger.Info().Msg("redis not configured, update de-duplication disabled")
		return nil, nil
	}

	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, update de-duplication disabled")
		return nil, nil
	}
	logger.Info().Msg("connected to redis")

	return client, redisRepo.NewUpdateStore(client, cfg.TelegramDedupTTL)
}

// newBot builds the Telegram listener, or returns nil when it cannot run.
// The HTTP API keeps serving either way.
func newBot(cfg *config.Config, logger zerolog.Logger, records telegram.RecordService, updateStore *redisRepo.UpdateStore, m *metrics.Metrics) *telegram.Bot {
	if !cfg.BotEnabled() {
		logger.Warn().Msg("TELEGRAM_BOT_TOKEN not set, telegram listener disabled")
		return nil
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		logger.Error().Err(err).Msg("failed to start telegram client, listener disabled")
		return nil
	}
	api.Debug = cfg.TelegramDebug
	logger.Info().Str("username", api.Self.UserName).Msg("telegram bot authorized")

	botCfg := telegram.Config{
		API:         api,
		Handler:     telegram.NewMessageHandler(records, m),
		Logger:      logger.With().Str("component", "telegram").Logger(),
		Metrics:     m,
		PollTimeout: cfg.TelegramPollTimeout,
	}
	if updateStore != nil {
		botCfg.Dedup = updateStore
	}

	return telegram.NewBot(botCfg)
}
