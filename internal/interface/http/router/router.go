package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/bookreviews/docs"
	"github.com/xiebiao/bookreviews/internal/infrastructure/config"
	"github.com/xiebiao/bookreviews/internal/interface/http/handler"
	"github.com/xiebiao/bookreviews/internal/interface/http/middleware"
	"github.com/xiebiao/bookreviews/pkg/response"
)

// slowRequestThreshold 超过该耗时记录慢请求
const slowRequestThreshold = 3 * time.Second

// Handlers 路由依赖的处理器
type Handlers struct {
	Book      *handler.BookHandler
	Review    *handler.ReviewHandler
	Inference *handler.InferenceHandler
	Health    *handler.HealthHandler
}

// NewRouter 创建Gin引擎并注册全部路由
//
//	POST   /books                 创建图书
//	GET    /books                 图书列表
//	GET    /books/:id             图书详情
//	PUT    /books/:id             部分更新
//	DELETE /books/:id             删除图书
//	POST   /books/:id/reviews     添加评论
//	GET    /books/:id/reviews     评论列表
//	GET    /textsummarizer        文本摘要(限流)
//	GET    /recommendations       图书推荐(限流)
//
// limiter为nil时推理接口不限流
func NewRouter(cfg *config.Config, h Handlers, limiter *middleware.RateLimiter) *gin.Engine {
	switch cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()

	// 未配置代理时ClientIP只取连接地址，忽略X-Forwarded-For
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		log.Error().Err(err).Strs("trusted_proxies", cfg.Server.TrustedProxies).Msg("invalid trusted proxies")
	}

	// 中间件顺序：Tracing → Logger → Recovery → Metrics
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(cfg.Tracing.ServiceName))
	}
	r.Use(middleware.Logger(slowRequestThreshold), middleware.Recovery())
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
	}

	r.NoRoute(func(c *gin.Context) {
		response.ErrorWithStatus(c, http.StatusNotFound, "Not found")
	})

	// 健康检查
	r.GET("/ping", h.Health.Ping)
	r.GET("/health/ready", h.Health.Ready)

	// 图书
	books := r.Group("/books")
	{
		books.POST("", h.Book.CreateBook)
		books.GET("", h.Book.ListBooks)
		books.GET("/:id", h.Book.GetBook)
		books.PUT("/:id", h.Book.UpdateBook)
		books.DELETE("/:id", h.Book.DeleteBook)

		// 评论
		books.POST("/:id/reviews", h.Review.AddReview)
		books.GET("/:id/reviews", h.Review.ListReviews)
	}

	// 推理(可能较慢，按IP限流)
	inference := r.Group("")
	if limiter != nil {
		inference.Use(limiter.Middleware())
	}
	{
		inference.GET("/textsummarizer", h.Inference.Summarize)
		inference.GET("/recommendations", h.Inference.Recommend)
	}

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	if cfg.Server.Mode != "release" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
