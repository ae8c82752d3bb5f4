package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"leave-approval/internal/holiday"
	"leave-approval/internal/leave"
	"leave-approval/internal/messaging/kafka"
	"leave-approval/internal/middleware"
	"leave-approval/internal/shared/connection"
	"leave-approval/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// App holds the clients opened by BuildApp so main can close them on
// shutdown.
type App struct {
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
}

func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

func BuildApp(router *gin.Engine, cfg Config) (*App, error) {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		cfg.MaxConnectRetries,
	)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	a := &App{GormDB: gormDB, DB: sqlDB}

	if err := migrate(gormDB, sqlDB); err != nil {
		a.Close()
		return nil, err
	}
	logger.Info("database schema ready")

	if cfg.RedisAddr != "" {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.MaxConnectRetries)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.Redis = rdb
	} else {
		logger.Warn("REDIS_ADDR not set, holiday cache and idempotency disabled")
	}

	store, err := newDocumentStore(cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L().Named("http")),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)
	if cfg.StorageDriver == StorageDriverLocal {
		router.Static("/files", cfg.LocalStorageDir)
	}

	registerModules(router, sqlDB, gormDB, a.Redis, store, cfg)
	return a, nil
}

func migrate(gormDB *gorm.DB, sqlDB *sql.DB) error {
	if err := gormDB.AutoMigrate(&leave.LeaveRequest{}, &holiday.Holiday{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := kafka.EnsureOutboxSchema(ctx, sqlDB); err != nil {
		return fmt.Errorf("outbox schema: %w", err)
	}
	return nil
}

func newDocumentStore(cfg Config, logger *zap.Logger) (storage.DocumentStore, error) {
	switch cfg.StorageDriver {
	case StorageDriverLocal:
		logger.Info("using local document store",
			zap.String("dir", cfg.LocalStorageDir),
			zap.String("overwrite_policy", cfg.OverwritePolicy.String()),
		)
		return storage.NewLocalStore(cfg.LocalStorageDir, cfg.LocalStorageBaseURL, cfg.OverwritePolicy)
	case StorageDriverAzure:
		client, err := connection.ConnectAzureBlob(cfg.AzureConnectionString)
		if err != nil {
			return nil, err
		}
		logger.Info("using azure blob document store",
			zap.String("container", cfg.AzureContainer),
			zap.String("overwrite_policy", cfg.OverwritePolicy.String()),
		)
		return storage.NewAzureBlobStore(client, cfg.AzureContainer, cfg.OverwritePolicy), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
