package inference

import (
	"context"
)

// Cache 推理结果缓存(由persistence/redis实现)
// kind区分结果类型，key为原始输入；实现负责序列化与过期
type Cache interface {
	Get(ctx context.Context, kind, key string, dest any) (bool, error)
	Set(ctx context.Context, kind, key string, value any) error
	// Invalidate 删除某一kind的全部结果
	Invalidate(ctx context.Context, kind string) error
}

const (
	cacheKindSummary   = "summary"
	cacheKindRecommend = "recommend"
)
