//	@title			Lanternfly API
//	@version		1.0
//	@description	Image upload and public gallery backed by blob storage.
//
//	@host		localhost:5000
//	@BasePath	/

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/lanternfly/service/internal/config"
	"github.com/lanternfly/service/internal/image"
	"github.com/lanternfly/service/internal/logger"
	"github.com/lanternfly/service/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot, _ := zap.NewProduction()
		boot.Fatal("invalid configuration", zap.Error(err))
	}

	log, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatal("object storage init failed", zap.Error(err))
	}

	ensureCtx, cancelEnsure := context.WithTimeout(context.Background(), 30*time.Second)
	err = store.EnsureContainer(ensureCtx)
	cancelEnsure()
	if err != nil {
		log.Fatal("ensure container failed", zap.String("container", cfg.Container), zap.Error(err))
	}
	log.Info("storage ready",
		zap.String("driver", cfg.StorageDriver),
		zap.String("container_url", cfg.ContainerURL()),
	)

	// Wire dependencies: storage → service → handler
	imageSvc := image.NewService(store, cfg.MaxUploadBytes, log)
	imageHandler := image.NewHandler(imageSvc)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(imageHandler, cfg.MaxUploadBytes, log),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
