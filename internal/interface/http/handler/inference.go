package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appinference "github.com/xiebiao/bookreviews/internal/application/inference"
	"github.com/xiebiao/bookreviews/internal/interface/http/dto"
	"github.com/xiebiao/bookreviews/pkg/response"
)

// InferenceHandler 摘要与推荐
type InferenceHandler struct {
	summarize *appinference.SummarizeTextUseCase
	recommend *appinference.RecommendBooksUseCase
}

// NewInferenceHandler 创建推理处理器
func NewInferenceHandler(summarize *appinference.SummarizeTextUseCase, recommend *appinference.RecommendBooksUseCase) *InferenceHandler {
	return &InferenceHandler{summarize: summarize, recommend: recommend}
}

// Summarize 文本摘要
// @Summary      文本摘要
// @Tags         推理
// @Produce      json
// @Param        book_content query string true "待摘要文本"
// @Success      200 {object} dto.SummaryResponse
// @Failure      400 {object} response.ErrorResponse "缺少book_content"
// @Failure      429 {object} response.ErrorResponse "请求过多"
// @Failure      500 {object} response.ErrorResponse "摘要服务不可用"
// @Router       /textsummarizer [get]
func (h *InferenceHandler) Summarize(c *gin.Context) {
	summary, err := h.summarize.Execute(c.Request.Context(), c.Query("book_content"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.SummaryResponse{Summary: summary})
}

// Recommend 图书推荐
// @Summary      图书推荐
// @Description  rating缺省或不是数字时不按评分过滤
// @Tags         推理
// @Produce      json
// @Param        genre query string false "类型"
// @Param        rating query number false "最低平均评分"
// @Success      200 {object} dto.RecommendationsResponse
// @Failure      429 {object} response.ErrorResponse "请求过多"
// @Failure      500 {object} response.ErrorResponse "推荐服务不可用"
// @Router       /recommendations [get]
func (h *InferenceHandler) Recommend(c *gin.Context) {
	books, err := h.recommend.Execute(c.Request.Context(), c.Query("genre"), parseRating(c.Query("rating")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.RecommendationsResponse{RecommendedBooks: books})
}

// parseRating 空或非数字返回nil
func parseRating(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
