package app

import (
	"database/sql"

	"employee-service/internal/config"
	"employee-service/internal/employee"
	"employee-service/internal/messaging/kafka"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router gin.IRouter,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	assembler := employee.NewModelAssembler(cfg.PublicBaseURL)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, assembler, outboxRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)

	// --- Routes Registration ---
	employee.RegisterRoutes(router, employeeHandler, employee.RouteOptions{
		Redis:          rdb,
		IdempotencyTTL: cfg.IdempotencyTTL,
		WriteRPS:       rate.Limit(cfg.RateLimit.RPS),
		WriteBurst:     cfg.RateLimit.Burst,
	})
}
