package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookreviews/internal/domain/book"
)

// parseBookID 解析路径参数:id，必须是正整数
func parseBookID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, book.ErrInvalidBookID
	}
	return uint(id), nil
}
