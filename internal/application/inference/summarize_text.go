package inference

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookreviews/internal/domain/inference"
	apperrors "github.com/xiebiao/bookreviews/pkg/errors"
	"github.com/xiebiao/bookreviews/pkg/metrics"
)

// ErrEmptyContent 缺少book_content
var ErrEmptyContent = apperrors.New(apperrors.ErrCodeInvalidParams, "book_content is required")

// SummarizeTextUseCase 文本摘要用例
// 1. 校验输入
// 2. 查缓存(Cache-Aside)，缓存故障不影响主流程
// 3. 在限定时间内调用摘要适配器
// 4. 适配器失败统一转换为DependencyFailure
type SummarizeTextUseCase struct {
	summarizer inference.Summarizer
	cache      Cache
	timeout    time.Duration
}

// NewSummarizeTextUseCase 创建摘要用例，cache可以为nil
func NewSummarizeTextUseCase(summarizer inference.Summarizer, cache Cache, timeout time.Duration) *SummarizeTextUseCase {
	return &SummarizeTextUseCase{
		summarizer: summarizer,
		cache:      cache,
		timeout:    timeout,
	}
}

// Execute 执行摘要用例
func (uc *SummarizeTextUseCase) Execute(ctx context.Context, content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}

	var summary string
	if hit := cacheGet(ctx, uc.cache, cacheKindSummary, content, &summary); hit {
		recordInference("summarizer", "cached", 0)
		return summary, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	summary, err := uc.summarizer.Summarize(callCtx, content)
	if err != nil {
		recordInference("summarizer", "failure", time.Since(start))
		return "", apperrors.ErrDependency.WithCause(err)
	}
	recordInference("summarizer", "success", time.Since(start))

	cacheSet(ctx, uc.cache, cacheKindSummary, content, summary)
	return summary, nil
}

func recordInference(adapter, result string, elapsed time.Duration) {
	metrics.IncCounterVec(metrics.InferenceRequestsTotal, map[string]string{"adapter": adapter, "result": result})
	if result != "cached" {
		metrics.ObserveHistogramVec(metrics.InferenceDuration, map[string]string{"adapter": adapter}, elapsed.Seconds())
	}
}

func cacheGet(ctx context.Context, cache Cache, kind, key string, dest any) bool {
	if cache == nil {
		return false
	}
	hit, err := cache.Get(ctx, kind, key, dest)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("kind", kind).Msg("inference cache get failed")
		return false
	}
	return hit
}

func cacheSet(ctx context.Context, cache Cache, kind, key string, value any) {
	if cache == nil {
		return
	}
	if err := cache.Set(ctx, kind, key, value); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("kind", kind).Msg("inference cache set failed")
	}
}
