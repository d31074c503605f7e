package inference

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/xiebiao/bookreviews/pkg/circuitbreaker"
)

// maxErrorBody 错误响应最多读取的字节数(只用于日志)
const maxErrorBody = 512

// modelClient 外部模型服务的JSON over HTTP客户端
// 所有请求都经过熔断器：下游连续失败后快速失败，不再占用请求协程
type modelClient struct {
	url     string
	http    *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

func newModelClient(url string, httpClient *http.Client, breaker *circuitbreaker.CircuitBreaker) *modelClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &modelClient{url: url, http: httpClient, breaker: breaker}
}

// post POST请求体为in的JSON，2xx响应解码到out
func (c *modelClient) post(ctx context.Context, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("序列化请求失败: %w", err)
	}

	return c.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("创建请求失败: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("请求%s失败: %w", c.breaker.Name(), err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			return fmt.Errorf("%s返回状态码%d: %s", c.breaker.Name(), resp.StatusCode, bytes.TrimSpace(snippet))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("解析%s响应失败: %w", c.breaker.Name(), err)
		}
		return nil
	})
}
