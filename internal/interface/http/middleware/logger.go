package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookreviews/pkg/tracing"
)

const (
	// RequestIDHeader 请求ID响应头，客户端传入时沿用
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey gin.Context中的请求ID
	RequestIDKey = "request_id"
)

// Logger 请求日志中间件
// 1. 生成(或沿用)请求ID，写入响应头
// 2. 把带请求ID的logger放入请求context，后续log.Ctx(ctx)自动携带
// 3. 请求结束后输出一条结构化日志，慢请求额外告警
func Logger(slowThreshold time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 步骤1: 请求ID
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		// 步骤2: 请求级logger
		ctx := c.Request.Context()
		lc := log.With().Str("request_id", requestID)
		if traceID := tracing.ExtractTraceID(ctx); traceID != "" {
			lc = lc.Str("trace_id", traceID)
		}
		reqLog := lc.Logger()
		c.Request = c.Request.WithContext(reqLog.WithContext(ctx))

		// 步骤3: 处理请求
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		// 步骤4: 记录请求信息
		status := c.Writer.Status()
		evt := levelFor(&reqLog, status)
		evt.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Int("bytes", c.Writer.Size())
		if len(c.Errors) > 0 {
			evt.Str("errors", c.Errors.String())
		}
		evt.Msg("request")

		if slowThreshold > 0 && latency > slowThreshold {
			reqLog.Warn().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Dur("latency", latency).
				Msg("slow request")
		}
	}
}

func levelFor(l *zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= 500:
		return l.Error()
	case status >= 400:
		return l.Warn()
	default:
		return l.Info()
	}
}
