//go:build wireinject
// +build wireinject

// Wire依赖注入配置，修改后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appinference "github.com/xiebiao/bookreviews/internal/application/inference"
	"github.com/xiebiao/bookreviews/internal/domain/book"
	"github.com/xiebiao/bookreviews/internal/domain/review"
	"github.com/xiebiao/bookreviews/internal/infrastructure/config"
	infinference "github.com/xiebiao/bookreviews/internal/infrastructure/inference"
	"github.com/xiebiao/bookreviews/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/bookreviews/internal/interface/http/handler"
	"github.com/xiebiao/bookreviews/internal/interface/http/router"
)

// infrastructureSet 数据库、缓存、消息队列
var infrastructureSet = wire.NewSet(
	provideDB,
	rdb.NewTxManager,
	provideRedisClient,
	providePublisher,
)

// repositorySet 仓储
var repositorySet = wire.NewSet(
	rdb.NewBookRepository,
	rdb.NewReviewRepository,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	book.NewService,
	review.NewService,
)

// inferenceSet 推理适配器与用例
var inferenceSet = wire.NewSet(
	infinference.NewSummarizer,
	infinference.NewRecommender,
	provideInferenceCache,
	provideSummarizeTextUseCase,
	provideRecommendBooksUseCase,
	appinference.NewInvalidateRecommendationsUseCase,
	provideCacheConsumer,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewReviewHandler,
	handler.NewInferenceHandler,
	handler.NewHealthHandler,
	wire.Struct(new(router.Handlers), "*"),
	provideRateLimiter,
	router.NewRouter,
)

// InitializeApp 初始化整个应用
// cleanup按创建的逆序释放资源
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		inferenceSet,
		handlerSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
