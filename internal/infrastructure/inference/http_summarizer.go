package inference

import (
	"context"
	"errors"
	"net/http"

	"github.com/xiebiao/bookreviews/pkg/circuitbreaker"
)

// HTTPSummarizer 调用外部摘要模型服务
//
//	POST {url}  {"text": "..."}  →  {"summary": "..."}
type HTTPSummarizer struct {
	client *modelClient
}

type summarizeRequest struct {
	Text string `json:"text"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// NewHTTPSummarizer 创建HTTP摘要适配器
func NewHTTPSummarizer(url string, httpClient *http.Client, breaker *circuitbreaker.CircuitBreaker) *HTTPSummarizer {
	return &HTTPSummarizer{client: newModelClient(url, httpClient, breaker)}
}

// Summarize 生成摘要
func (s *HTTPSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	var resp summarizeResponse
	if err := s.client.post(ctx, summarizeRequest{Text: text}, &resp); err != nil {
		return "", err
	}
	if resp.Summary == "" {
		return "", errors.New("摘要服务返回空摘要")
	}
	return resp.Summary, nil
}
