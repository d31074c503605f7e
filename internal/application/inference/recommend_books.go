package inference

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/xiebiao/bookreviews/internal/domain/inference"
	apperrors "github.com/xiebiao/bookreviews/pkg/errors"
)

// RecommendBooksUseCase 图书推荐用例
// genre、rating都可以为空，由推荐器决定含义
type RecommendBooksUseCase struct {
	recommender inference.Recommender
	cache       Cache
	timeout     time.Duration
}

// NewRecommendBooksUseCase 创建推荐用例，cache可以为nil
func NewRecommendBooksUseCase(recommender inference.Recommender, cache Cache, timeout time.Duration) *RecommendBooksUseCase {
	return &RecommendBooksUseCase{
		recommender: recommender,
		cache:       cache,
		timeout:     timeout,
	}
}

// Execute 执行推荐用例，结果不会是nil
func (uc *RecommendBooksUseCase) Execute(ctx context.Context, genre string, minRating *float64) ([]inference.Recommendation, error) {
	genre = strings.TrimSpace(genre)
	key := recommendCacheKey(genre, minRating)

	var books []inference.Recommendation
	if hit := cacheGet(ctx, uc.cache, cacheKindRecommend, key, &books); hit {
		recordInference("recommender", "cached", 0)
		return nonNil(books), nil
	}

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	books, err := uc.recommender.Recommend(callCtx, genre, minRating)
	if err != nil {
		recordInference("recommender", "failure", time.Since(start))
		return nil, apperrors.ErrDependency.WithCause(err)
	}
	recordInference("recommender", "success", time.Since(start))

	books = nonNil(books)
	cacheSet(ctx, uc.cache, cacheKindRecommend, key, books)
	return books, nil
}

// recommendCacheKey genre不区分大小写，未指定评分用*
func recommendCacheKey(genre string, minRating *float64) string {
	rating := "*"
	if minRating != nil {
		rating = strconv.FormatFloat(*minRating, 'f', -1, 64)
	}
	return strings.ToLower(genre) + "|" + rating
}

func nonNil(books []inference.Recommendation) []inference.Recommendation {
	if books == nil {
		return []inference.Recommendation{}
	}
	return books
}
