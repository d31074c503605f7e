package main

import (
	"context"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	appinference "github.com/xiebiao/bookreviews/internal/application/inference"
	"github.com/xiebiao/bookreviews/internal/domain/event"
	"github.com/xiebiao/bookreviews/internal/domain/inference"
	"github.com/xiebiao/bookreviews/internal/infrastructure/config"
	"github.com/xiebiao/bookreviews/internal/infrastructure/mq"
	"github.com/xiebiao/bookreviews/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookreviews/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookreviews/internal/interface/http/middleware"
)

// App 组装完成的应用
type App struct {
	Config *config.Config
	Engine *gin.Engine
	// CacheConsumer 未同时启用MQ和Redis时为nil
	CacheConsumer             *mq.Consumer
	InvalidateRecommendations *appinference.InvalidateRecommendationsUseCase
}

// StartBackground 启动后台消费者，ctx结束后退出
func (a *App) StartBackground(ctx context.Context) {
	if a.CacheConsumer == nil {
		return
	}

	go func() {
		// TODO: 连接断开后重连，目前只记录错误，推荐缓存退化为按TTL过期
		err := a.CacheConsumer.Consume(ctx, func(ctx context.Context, d mq.Delivery) error {
			return a.InvalidateRecommendations.Execute(ctx, d.RoutingKey)
		})
		if err != nil {
			log.Error().Err(err).Msg("cache invalidation consumer stopped")
		}
	}()
}

// provideDB 数据库连接，cleanup时关闭连接池
func provideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := rdb.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := rdb.Close(db); err != nil {
			log.Error().Err(err).Msg("close database failed")
		}
	}
	return db, cleanup, nil
}

// provideRedisClient 未启用缓存时返回nil
func provideRedisClient(cfg *config.Config) (*goredis.Client, func(), error) {
	if !cfg.Redis.Enabled {
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

// provideInferenceCache client为nil时不使用缓存
func provideInferenceCache(cfg *config.Config, client *goredis.Client) appinference.Cache {
	if client == nil {
		return nil
	}
	return redis.NewInferenceCache(client, cfg.Redis.CacheTTL)
}

// providePublisher 未启用MQ时事件直接丢弃
func providePublisher(cfg *config.Config) (event.Publisher, func(), error) {
	if !cfg.MQ.Enabled {
		return event.NopPublisher{}, func() {}, nil
	}
	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("close event publisher failed")
		}
	}
	return publisher, cleanup, nil
}

func provideSummarizeTextUseCase(cfg *config.Config, summarizer inference.Summarizer, cache appinference.Cache) *appinference.SummarizeTextUseCase {
	return appinference.NewSummarizeTextUseCase(summarizer, cache, cfg.Inference.Summarizer.Timeout)
}

// provideRecommendBooksUseCase 本地推荐直接读库，没有MQ失效通知时不缓存
func provideRecommendBooksUseCase(cfg *config.Config, recommender inference.Recommender, cache appinference.Cache) *appinference.RecommendBooksUseCase {
	if cfg.Inference.Recommender.Provider == "local" && !cfg.MQ.Enabled {
		cache = nil
	}
	return appinference.NewRecommendBooksUseCase(recommender, cache, cfg.Inference.Recommender.Timeout)
}

// provideCacheConsumer 同时启用MQ和Redis时订阅图书/评论事件
func provideCacheConsumer(cfg *config.Config, client *goredis.Client, uc *appinference.InvalidateRecommendationsUseCase) (*mq.Consumer, func(), error) {
	if !cfg.MQ.Enabled || client == nil {
		return nil, func() {}, nil
	}
	consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, cfg.MQ.CacheQueue, uc.RoutingKeys())
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := consumer.Close(); err != nil {
			log.Error().Err(err).Msg("close cache consumer failed")
		}
	}
	return consumer, cleanup, nil
}

// provideRateLimiter 未启用限流时返回nil
func provideRateLimiter(cfg *config.Config) (*middleware.RateLimiter, func()) {
	rl := cfg.Inference.RateLimit
	if !rl.Enabled {
		return nil, func() {}
	}
	limiter := middleware.NewRateLimiter(rl.RPS, rl.Burst)
	return limiter, limiter.Stop
}
