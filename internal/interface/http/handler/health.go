package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/xiebiao/bookreviews/pkg/response"
)

// HealthHandler 健康检查
type HealthHandler struct {
	db    *gorm.DB
	redis *goredis.Client
}

// NewHealthHandler redis为nil表示未启用缓存
func NewHealthHandler(db *gorm.DB, redis *goredis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// Ping 存活检查
// @Summary  存活检查
// @Tags     健康检查
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"message": "pong",
		"status":  "healthy",
	})
}

// Ready 就绪检查：数据库(以及启用时的Redis)可用
// @Summary  就绪检查
// @Tags     健康检查
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  503 {object} map[string]string
// @Router   /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{"database": "ok"}
	ready := true

	if err := h.pingDB(ctx); err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("database not ready")
		checks["database"] = "unavailable"
		ready = false
	}
	if h.redis != nil {
		checks["redis"] = "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("redis not ready")
			checks["redis"] = "unavailable"
			ready = false
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "checks": checks})
		return
	}
	response.Success(c, gin.H{"status": "ready", "checks": checks})
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
