package inference

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/xiebiao/bookreviews/internal/domain/inference"
	"github.com/xiebiao/bookreviews/internal/infrastructure/config"
	"github.com/xiebiao/bookreviews/pkg/circuitbreaker"
)

// NewSummarizer 按配置选择摘要实现
//   - http：外部模型服务 + 熔断器
//   - local：抽取式摘要
func NewSummarizer(cfg *config.Config) inference.Summarizer {
	a := cfg.Inference.Summarizer
	if a.Provider == "http" {
		return NewHTTPSummarizer(a.URL, &http.Client{Timeout: a.Timeout}, newBreaker("summarizer", cfg))
	}
	return NewExtractiveSummarizer(a.MaxWords)
}

// NewRecommender 按配置选择推荐实现
//   - http：外部模型服务 + 熔断器
//   - local：按平均评分推荐
func NewRecommender(cfg *config.Config, db *gorm.DB) inference.Recommender {
	a := cfg.Inference.Recommender
	if a.Provider == "http" {
		return NewHTTPRecommender(a.URL, &http.Client{Timeout: a.Timeout}, newBreaker("recommender", cfg))
	}
	return NewRatingRecommender(db, a.Limit)
}

func newBreaker(name string, cfg *config.Config) *circuitbreaker.CircuitBreaker {
	cb := cfg.Inference.CircuitBreaker
	return circuitbreaker.NewCircuitBreaker(name, circuitbreaker.Config{
		MaxRequests: cb.MaxRequests,
		Interval:    cb.Interval,
		Timeout:     cb.Timeout,
		ReadyToTrip: circuitbreaker.ConsecutiveFailures(cb.ConsecutiveFailures),
	})
}
