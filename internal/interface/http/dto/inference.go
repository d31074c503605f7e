package dto

import (
	"github.com/goccy/go-json"

	"github.com/xiebiao/bookreviews/internal/domain/inference"
)

// RecommendationsKey 推荐结果的JSON键，沿用已有客户端使用的键名
const RecommendationsKey = "Recommended books for you"

// SummaryResponse 文本摘要
type SummaryResponse struct {
	Summary string `json:"summary" example:"A desert planet and its spice."`
}

// RecommendationsResponse 推荐结果，序列化为 {"Recommended books for you": [...]}
type RecommendationsResponse struct {
	RecommendedBooks []inference.Recommendation
}

// MarshalJSON 键名含空格，不能写在struct tag里
func (r RecommendationsResponse) MarshalJSON() ([]byte, error) {
	books := r.RecommendedBooks
	if books == nil {
		books = []inference.Recommendation{}
	}
	return json.Marshal(map[string][]inference.Recommendation{RecommendationsKey: books})
}
