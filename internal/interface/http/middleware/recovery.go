package middleware

import (
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookreviews/pkg/response"
)

// Recovery panic恢复，返回JSON 500
// 堆栈只写日志，不返回给客户端
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Bytes("stack", debug.Stack()).
			Msg("panic recovered")

		response.ErrorWithStatus(c, http.StatusInternalServerError, "Internal server error")
		c.Abort()
	})
}
