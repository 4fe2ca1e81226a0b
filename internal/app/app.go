package app

import (
	"net/http"

	"employee-service/internal/config"
	"employee-service/internal/middleware"
	"employee-service/internal/shared/connection"
	"employee-service/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and mounts every route on router.
// The returned cleanup closes the connections it opened.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	log := logger.Named("app.api")

	gormDB, err := connection.ConnectGORMWithRetry(cfg, log)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, cfg.Database.MaxRetries, log)
		if err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	} else {
		log.Warn("REDIS_ADDR not set, Idempotency-Key handling disabled")
	}

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}

	useCommon(router, logger)
	registerModules(router, sqlDB, gormDB, rdb, cfg, logger)

	return cleanup, nil
}

func useCommon(router *gin.Engine, logger *zap.Logger) {
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		gin.Recovery(),
	)
	router.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, nil)
	})
}
