package main

import (
	"LinkKeeper/internal/cache"
	"LinkKeeper/internal/config"
	"LinkKeeper/internal/handlers"
	"LinkKeeper/internal/logger"
	"LinkKeeper/internal/middleware"
	"LinkKeeper/internal/repo"
	"LinkKeeper/internal/service"
	"LinkKeeper/internal/token"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := zl.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		_ = zl.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, sugar); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, sugar *zap.SugaredLogger) error {
	zl := sugar.Desugar()
	initCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	sugar.Debugw("Opening database", "dsn", cfg.DatabaseDSN)
	gormDB, err := repo.InitDB(initCtx, cfg.DatabaseDSN, zl)
	if err != nil {
		return err
	}
	if err := repo.SetSingleShareLink(initCtx, gormDB, cfg.SingleShareLink); err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var linkCache service.LinkCache
	if cfg.RedisAddr != "" {
		rdb, err := cache.NewRedisClient(initCtx, cfg.RedisAddr)
		if err != nil {
			// кеш необязателен: работаем напрямую с БД
			sugar.Warnw("Share cache disabled", "redis", cfg.RedisAddr, "error", err)
		} else {
			defer rdb.Close()
			linkCache = cache.NewShareCache(rdb, cfg.ShareCacheTTL)
			sugar.Infow("Share cache enabled", "redis", cfg.RedisAddr, "ttl", cfg.ShareCacheTTL)
		}
	}

	userRepo := repo.NewUserRepository(gormDB)
	tagRepo := repo.NewTagRepository(gormDB)
	contentRepo := repo.NewContentRepository(gormDB)
	linkRepo := repo.NewShareLinkRepository(gormDB)

	userService := service.NewUserService(userRepo)
	tagService := service.NewTagService(tagRepo)
	contentService := service.NewContentService(contentRepo, tagService, cfg.OwnerOnlyDelete)
	shareService := service.NewShareService(linkRepo, contentRepo, linkCache, cfg.SingleShareLink, sugar)
	tokens := token.NewManager(cfg.AuthSecret, cfg.TokenTTL)

	h := handlers.NewHandler(userService, contentService, shareService, tokens, sqlDB, sugar, cfg)
	defer h.Close()

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sugar.Infow("Starting server", "addr", cfg.BaseURL)
	sugar.Infow("Config",
		"EnableHTTPS", cfg.EnableHTTPS,
		"TokenTTL", cfg.TokenTTL,
		"SingleShareLink", cfg.SingleShareLink,
		"OwnerOnlyDelete", cfg.OwnerOnlyDelete,
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sugar.Infow("Shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}
