package inference

import (
	"context"
	"net/http"

	"github.com/xiebiao/bookreviews/internal/domain/inference"
	"github.com/xiebiao/bookreviews/pkg/circuitbreaker"
)

// HTTPRecommender 调用外部推荐模型服务
//
//	POST {url}  {"genre": "...", "rating": 4}  →  {"books": [{"id": 1, "title": "..."}]}
//
// genre为空、rating缺省时原样传给模型服务，由其决定含义
type HTTPRecommender struct {
	client *modelClient
}

type recommendRequest struct {
	Genre  string   `json:"genre"`
	Rating *float64 `json:"rating,omitempty"`
}

type recommendResponse struct {
	Books []inference.Recommendation `json:"books"`
}

// NewHTTPRecommender 创建HTTP推荐适配器
func NewHTTPRecommender(url string, httpClient *http.Client, breaker *circuitbreaker.CircuitBreaker) *HTTPRecommender {
	return &HTTPRecommender{client: newModelClient(url, httpClient, breaker)}
}

// Recommend 获取推荐列表
func (r *HTTPRecommender) Recommend(ctx context.Context, genre string, minRating *float64) ([]inference.Recommendation, error) {
	var resp recommendResponse
	if err := r.client.post(ctx, recommendRequest{Genre: genre, Rating: minRating}, &resp); err != nil {
		return nil, err
	}
	return resp.Books, nil
}
