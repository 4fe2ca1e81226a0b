package employee

import (
	"time"

	"employee-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type RouteOptions struct {
	// Redis enables Idempotency-Key handling on POST when set.
	Redis          *redis.Client
	IdempotencyTTL time.Duration
	WriteRPS       rate.Limit
	WriteBurst     int
}

func RegisterRoutes(r gin.IRouter, handler *Handler, opts RouteOptions) {
	writeGuards := []gin.HandlerFunc{}
	if opts.WriteRPS > 0 {
		writeGuards = append(writeGuards, middleware.RateLimitByIP(opts.WriteRPS, opts.WriteBurst))
	}

	createChain := append([]gin.HandlerFunc{}, writeGuards...)
	if opts.Redis != nil {
		createChain = append(createChain, middleware.Idempotency(opts.Redis, opts.IdempotencyTTL))
	}

	employees := r.Group("/employees")
	{
		employees.GET("", handler.FindAll)
		employees.GET("/search", handler.FindByEmail)
		employees.GET("/:id", handler.FindByID)

		employees.POST("", append(createChain, handler.Create)...)
		employees.PUT("/:id", append(append([]gin.HandlerFunc{}, writeGuards...), handler.Replace)...)
		employees.DELETE("/:id", append(append([]gin.HandlerFunc{}, writeGuards...), handler.Delete)...)
	}
}
