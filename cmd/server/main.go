package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ummahconnect/backend/internal/config"
	"github.com/ummahconnect/backend/internal/server"
	"github.com/ummahconnect/backend/internal/store"
	"github.com/ummahconnect/backend/pkg/logger"
	"github.com/ummahconnect/backend/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	logger.Setup(cfg.AppEnv)

	st, err := openStore(cfg)
	if err != nil {
		logrus.Fatalf("failed to open record store: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		logrus.Warn("REDIS_URL not set, rate limiting disabled")
	}

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		logrus.WithError(err).Warn("image storage unavailable, uploads disabled")
		imageStorage = nil
	}

	srv := server.New(cfg, st, redisClient, imageStorage)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logrus.WithFields(logrus.Fields{"port": cfg.Port, "store": cfg.StoreDriver}).Info("server starting")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server exited with error: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting requests, then release the store.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logrus.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
	if err := st.Close(ctx); err != nil {
		logrus.WithError(err).Error("failed to close record store")
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	logrus.Info("shutdown complete")
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return store.OpenMongo(ctx, cfg.MongoURL, cfg.MongoDatabase)
	default:
		return store.OpenFile(cfg.DataDir)
	}
}
