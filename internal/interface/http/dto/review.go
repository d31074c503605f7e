package dto

import (
	"github.com/xiebiao/bookreviews/internal/domain/review"
)

// CreateReviewRequest 添加评论请求
// rating为0合法，用指针区分缺失
type CreateReviewRequest struct {
	UserID     *int64   `json:"user_id" example:"7"`
	ReviewText *string  `json:"review_text" example:"Still the best."`
	Rating     *float64 `json:"rating" example:"4.5"`
}

// ToInput 转换为领域参数
func (r *CreateReviewRequest) ToInput() review.AddInput {
	return review.AddInput{
		UserID:     r.UserID,
		ReviewText: r.ReviewText,
		Rating:     r.Rating,
	}
}

// ReviewResponse 评论列表项
type ReviewResponse struct {
	ID         uint    `json:"id" example:"1"`
	ReviewText *string `json:"review_text" example:"Still the best."`
	Rating     float64 `json:"rating" example:"4.5"`
}

// ToReviewList 列表为空时返回[]
func ToReviewList(list []*review.Review) []ReviewResponse {
	items := make([]ReviewResponse, len(list))
	for i, r := range list {
		items[i] = ReviewResponse{ID: r.ID, ReviewText: r.ReviewText, Rating: r.Rating}
	}
	return items
}
