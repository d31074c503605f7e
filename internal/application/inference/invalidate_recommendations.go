package inference

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookreviews/internal/domain/event"
)

// InvalidateRecommendationsUseCase 图书或评论变化后清除推荐缓存
// 摘要只依赖输入文本，不需要失效
type InvalidateRecommendationsUseCase struct {
	cache Cache
}

// NewInvalidateRecommendationsUseCase cache为nil时Execute什么都不做
func NewInvalidateRecommendationsUseCase(cache Cache) *InvalidateRecommendationsUseCase {
	return &InvalidateRecommendationsUseCase{cache: cache}
}

// RoutingKeys 会影响推荐结果的事件
func (uc *InvalidateRecommendationsUseCase) RoutingKeys() []string {
	return []string{
		event.RoutingBookCreated,
		event.RoutingBookUpdated,
		event.RoutingBookDeleted,
		event.RoutingReviewCreated,
	}
}

// Execute 处理一条事件，其他路由键直接忽略
func (uc *InvalidateRecommendationsUseCase) Execute(ctx context.Context, routingKey string) error {
	if uc.cache == nil || !slices.Contains(uc.RoutingKeys(), routingKey) {
		return nil
	}

	if err := uc.cache.Invalidate(ctx, cacheKindRecommend); err != nil {
		return fmt.Errorf("清除推荐缓存失败: %w", err)
	}

	log.Ctx(ctx).Debug().Str("routing_key", routingKey).Msg("recommendation cache invalidated")
	return nil
}

