package main

import (
	"GopherMarket/internal/config"
	"GopherMarket/internal/handlers"
	"GopherMarket/internal/middleware"
	"GopherMarket/internal/repo"
	"GopherMarket/internal/service"
	"GopherMarket/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	// секрет обязателен: молча подставлять небезопасный дефолт нельзя
	if cfg.AuthSecret == "" {
		sugar.Fatalw("AUTH_SECRET is required, refusing to start without it")
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	blobs, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		sugar.Fatalw("failed to initialize upload storage", "dir", cfg.UploadDir, "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)
	cartRepo := repo.NewCartRepository(gormDB)

	userService := service.NewUserService(userRepo, cfg.BcryptCost)
	itemService := service.NewItemService(itemRepo, blobs, sugar)
	cartService := service.NewCartService(cartRepo, itemRepo)

	h := handlers.NewHandler(userService, itemService, cartService, blobs, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"UploadDir", cfg.UploadDir,
	)

	srv := &http.Server{Addr: addr, Handler: h.Router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("HTTP shutdown failed", "error", err)
	}

	// дожидаемся возврата соединений в пул и закрываем стор
	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			sugar.Errorw("DB close failed", "error", err)
		}
	}
}
