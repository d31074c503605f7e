package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/bookreviews/pkg/errors"
)

const (
	keyPrefix = "bookreviews:inference:"
	scanBatch = 100
)

// InferenceCache 推理结果缓存(Cache-Aside)
// 1. 摘要输入可能很长，key使用输入的sha256
// 2. 值为JSON，带过期时间
// 3. 未命中返回(false, nil)，由调用方调用推理服务后回填
type InferenceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInferenceCache 创建推理结果缓存
func NewInferenceCache(client *redis.Client, ttl time.Duration) *InferenceCache {
	return &InferenceCache{client: client, ttl: ttl}
}

// Get 读取缓存到dest
func (c *InferenceCache) Get(ctx context.Context, kind, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, CacheKey(kind, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, apperrors.ErrRedisError.WithCause(fmt.Errorf("获取缓存失败: %w", err))
	}

	if err := json.Unmarshal(val, dest); err != nil {
		// 格式不兼容的旧值按未命中处理，稍后会被覆盖
		return false, fmt.Errorf("反序列化失败: %w", err)
	}
	return true, nil
}

// Set 写入缓存
func (c *InferenceCache) Set(ctx context.Context, kind, key string, value any) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}

	if err := c.client.Set(ctx, CacheKey(kind, key), val, c.ttl).Err(); err != nil {
		return apperrors.ErrRedisError.WithCause(fmt.Errorf("写入缓存失败: %w", err))
	}
	return nil
}

// Invalidate 删除kind下的全部缓存，SCAN分批遍历
func (c *InferenceCache) Invalidate(ctx context.Context, kind string) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+kind+":*", scanBatch).Iterator()

	keys := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) < scanBatch {
			continue
		}
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return apperrors.ErrRedisError.WithCause(fmt.Errorf("删除缓存失败: %w", err))
		}
		keys = keys[:0]
	}
	if err := iter.Err(); err != nil {
		return apperrors.ErrRedisError.WithCause(fmt.Errorf("扫描缓存失败: %w", err))
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return apperrors.ErrRedisError.WithCause(fmt.Errorf("删除缓存失败: %w", err))
		}
	}
	return nil
}

// CacheKey bookreviews:inference:{kind}:{sha256(key)}
func CacheKey(kind, key string) string {
	sum := sha256.Sum256([]byte(key))
	return keyPrefix + kind + ":" + hex.EncodeToString(sum[:])
}
