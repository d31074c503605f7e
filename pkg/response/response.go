package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/xiebiao/bookreviews/pkg/errors"
)

// 响应体约定：
// - 创建成功：201 {"id": n}
// - 查询成功：200 实体或列表（不包信封）
// - 更新/删除成功：200 {"message": "..."}
// - 失败：对应状态码 {"error": "..."}

// internalMessage 5xx统一对外提示，不暴露内部细节
const internalMessage = "Internal server error"

// IDResponse 创建成功响应
type IDResponse struct {
	ID uint `json:"id" example:"1"`
}

// MessageResponse 操作成功提示
type MessageResponse struct {
	Message string `json:"message" example:"Book updated successfully"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error string `json:"error" example:"Book not found"`
}

// Created 创建成功（201）
func Created(c *gin.Context, id uint) {
	c.JSON(http.StatusCreated, IDResponse{ID: id})
}

// Success 查询成功（200），data原样序列化
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 更新/删除成功（200）
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	id, err := bookService.CreateBook(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 5xx记Error；客户端错误只在带内部原因时记Debug
	logger := log.Ctx(c.Request.Context())
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error().
			Err(appErr).
			Int("code", appErr.Code).
			Str("path", c.FullPath()).
			Msg("request failed")
	case appErr.Err != nil:
		logger.Debug().
			Err(appErr).
			Int("code", appErr.Code).
			Str("path", c.FullPath()).
			Msg("request rejected")
	}
	_ = c.Error(appErr)

	message := appErr.Message
	if status >= http.StatusInternalServerError {
		message = internalMessage
	}
	c.JSON(status, ErrorResponse{Error: message})
}

// ErrorWithStatus 自定义状态码和消息
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}
