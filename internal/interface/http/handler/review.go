package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookreviews/internal/domain/review"
	"github.com/xiebiao/bookreviews/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookreviews/pkg/errors"
	"github.com/xiebiao/bookreviews/pkg/response"
)

// ReviewHandler 评论HTTP处理器
type ReviewHandler struct {
	reviewService review.Service
}

// NewReviewHandler 创建评论处理器
func NewReviewHandler(reviewService review.Service) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// AddReview 添加评论
// @Summary      添加评论
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.CreateReviewRequest true "评论内容"
// @Success      201 {object} response.IDResponse
// @Failure      400 {object} response.ErrorResponse "参数错误"
// @Failure      404 {object} response.ErrorResponse "图书不存在"
// @Router       /books/{id}/reviews [post]
func (h *ReviewHandler) AddReview(c *gin.Context) {
	bookID, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.ErrBindError.WithCause(err))
		return
	}

	id, err := h.reviewService.AddReview(c.Request.Context(), bookID, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, id)
}

// ListReviews 某本书的评论
// @Summary      评论列表
// @Description  图书没有评论(或不存在)时返回空数组
// @Tags         评论
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {array} dto.ReviewResponse
// @Failure      400 {object} response.ErrorResponse "id不合法"
// @Router       /books/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	bookID, err := parseBookID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	list, err := h.reviewService.ListReviews(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToReviewList(list))
}
