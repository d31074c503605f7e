package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookreviews/internal/domain/book"
	"github.com/xiebiao/bookreviews/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookreviews/pkg/errors"
	"github.com/xiebiao/bookreviews/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	bookService book.Service
}

// NewBookHandler 创建图书处理器
func NewBookHandler(bookService book.Service) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  (title, author)重复时返回400
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.IDResponse
// @Failure      400 {object} response.ErrorResponse "参数错误或图书已存在"
// @Failure      500 {object} response.ErrorResponse
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	// 1. 参数绑定
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}

	// 2. 调用领域服务
	id, err := h.bookService.CreateBook(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, id)
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按id升序返回全部图书的id、title、author
// @Tags         图书
// @Produce      json
// @Success      200 {array} dto.BookListItem
// @Failure      500 {object} response.ErrorResponse
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	list, err := h.bookService.ListBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookList(list))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} dto.BookResponse
// @Failure      400 {object} response.ErrorResponse "id不合法"
// @Failure      404 {object} response.ErrorResponse "图书不存在"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.bookService.GetBook(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToBookResponse(b))
}

// UpdateBook 部分更新图书
// @Summary      更新图书
// @Description  只修改请求体中出现的字段；genre、year_published、summary为null时清空
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "要修改的字段"
// @Success      200 {object} response.MessageResponse
// @Failure      400 {object} response.ErrorResponse "参数错误或与其他图书重复"
// @Failure      404 {object} response.ErrorResponse "图书不存在"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	// 1. 解析id
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 2. 参数绑定，区分未出现与null
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 行锁内读-改-写
	if err := h.bookService.UpdateBook(c.Request.Context(), id, patch); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Book updated successfully")
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  同时删除该书的全部评论
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.MessageResponse
// @Failure      400 {object} response.ErrorResponse "id不合法"
// @Failure      404 {object} response.ErrorResponse "图书不存在"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.bookService.DeleteBook(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, "Book deleted successfully")
}
