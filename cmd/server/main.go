package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/careercompass/backend/internal/auth"
	"github.com/careercompass/backend/internal/chat"
	"github.com/careercompass/backend/internal/colleges"
	"github.com/careercompass/backend/internal/config"
	"github.com/careercompass/backend/internal/gemini"
	"github.com/careercompass/backend/internal/jobs"
	"github.com/careercompass/backend/internal/logging"
	"github.com/careercompass/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	// ── PostgreSQL ────────────────────────────────────────────
	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("postgres connect: %w", err)
	}
	defer pgPool.Close()
	users := store.NewPostgresStore(pgPool)
	if err := users.Migrate(ctx); err != nil {
		return fmt.Errorf("postgres migrate: %w", err)
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	defer mongoClient.Disconnect(context.Background())
	chats := store.NewMongoStore(mongoClient.Database(cfg.MongoDB))
	if err := chats.EnsureIndexes(ctx); err != nil {
		return err
	}

	// ── Redis ────────────────────────────────────────────────
	rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return err
	}
	defer rdb.Close()
	strategy, err := auth.NewStrategy(cfg, auth.NewTokenStore(rdb))
	if err != nil {
		return fmt.Errorf("auth strategy: %w", err)
	}

	// ── MinIO ────────────────────────────────────────────────
	// Only used to keep unparseable AI output, so the service runs without it.
	var archive colleges.Archive
	minioStore, err := store.NewMinioStore(
		ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
		cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Warn("minio unavailable, rejected AI output will not be archived", zap.Error(err))
	} else {
		archive = minioStore
	}

	// ── Upstream clients ─────────────────────────────────────
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, chat and college search will use fallbacks")
	}
	ai := gemini.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.UpstreamTimeout)
	jobClient := jobs.NewClient(cfg.JobsBaseURL, cfg.JobsAPIHost, cfg.JobsAPIKey, cfg.UpstreamTimeout)

	// ── Handlers ─────────────────────────────────────────────
	router := newRouter(logger, cfg.CORSOrigins, handlers{
		auth:     auth.NewHandler(users, strategy),
		chat:     chat.NewHandler(chat.NewService(chats, chat.NewAIResponder(ai), logger)),
		jobs:     jobs.NewHandler(jobClient, logger),
		colleges: colleges.NewHandler(colleges.NewService(ai, archive, logger)),
		authn:    strategy,
	})

	// ── Server ───────────────────────────────────────────────
	// Handlers may wait on an upstream for up to UpstreamTimeout.
	var writeTimeout time.Duration
	if cfg.UpstreamTimeout > 0 {
		writeTimeout = cfg.UpstreamTimeout + 15*time.Second
	}
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("auth_strategy", cfg.AuthStrategy))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return err
	}

	logger.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutCtx)
}
