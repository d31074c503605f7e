// Package inference 外部推理能力（摘要、推荐）的领域接口
//
// 处理器只依赖这里的接口，具体实现(HTTP模型服务或进程内实现)由infrastructure/inference提供。
// 实现不得写入任何持久化状态。
package inference

import "context"

// Summarizer 文本摘要
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Recommender 图书推荐
// genre为空表示不限类型；minRating为nil表示不限评分
type Recommender interface {
	Recommend(ctx context.Context, genre string, minRating *float64) ([]Recommendation, error)
}

// Recommendation 推荐结果，外部模型可能只返回书名
type Recommendation struct {
	ID    *uint  `json:"id,omitempty"`
	Title string `json:"title"`
}
