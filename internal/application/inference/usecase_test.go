package inference

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookreviews/internal/domain/event"
	"github.com/xiebiao/bookreviews/internal/domain/inference"
	apperrors "github.com/xiebiao/bookreviews/pkg/errors"
)

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

type mockRecommender struct {
	mock.Mock
}

func (m *mockRecommender) Recommend(ctx context.Context, genre string, minRating *float64) ([]inference.Recommendation, error) {
	args := m.Called(ctx, genre, minRating)
	books, _ := args.Get(0).([]inference.Recommendation)
	return books, args.Error(1)
}

// memoryCache 用map模拟缓存，值保存为原始对象
type memoryCache struct {
	items         map[string]any
	getErr        error
	invalidateErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string]any{}}
}

func (c *memoryCache) Get(_ context.Context, kind, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	v, ok := c.items[kind+":"+key]
	if !ok {
		return false, nil
	}
	switch d := dest.(type) {
	case *string:
		*d = v.(string)
	case *[]inference.Recommendation:
		*d = v.([]inference.Recommendation)
	}
	return true, nil
}

func (c *memoryCache) Set(_ context.Context, kind, key string, value any) error {
	c.items[kind+":"+key] = value
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context, kind string) error {
	if c.invalidateErr != nil {
		return c.invalidateErr
	}
	for k := range c.items {
		if strings.HasPrefix(k, kind+":") {
			delete(c.items, k)
		}
	}
	return nil
}

func TestSummarizeTextUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("成功后写入缓存，第二次命中缓存", func(t *testing.T) {
		s := new(mockSummarizer)
		cache := newMemoryCache()
		uc := NewSummarizeTextUseCase(s, cache, time.Second)

		s.On("Summarize", mock.Anything, "Long text.").Return("Short.", nil).Once()

		got, err := uc.Execute(ctx, "  Long text. ")
		require.NoError(t, err)
		assert.Equal(t, "Short.", got)

		got, err = uc.Execute(ctx, "Long text.")
		require.NoError(t, err)
		assert.Equal(t, "Short.", got)
		s.AssertNumberOfCalls(t, "Summarize", 1)
	})

	t.Run("空内容返回参数错误", func(t *testing.T) {
		s := new(mockSummarizer)
		uc := NewSummarizeTextUseCase(s, nil, time.Second)

		_, err := uc.Execute(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyContent)
		s.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
	})

	t.Run("适配器失败转换为依赖错误", func(t *testing.T) {
		s := new(mockSummarizer)
		uc := NewSummarizeTextUseCase(s, nil, time.Second)
		s.On("Summarize", mock.Anything, "text").Return("", errors.New("model crashed"))

		_, err := uc.Execute(ctx, "text")
		assert.ErrorIs(t, err, apperrors.ErrDependency)
		assert.Equal(t, 500, apperrors.GetAppError(err).HTTPStatus())
	})

	t.Run("调用带有超时", func(t *testing.T) {
		s := new(mockSummarizer)
		uc := NewSummarizeTextUseCase(s, nil, 50*time.Millisecond)
		s.On("Summarize", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		}), "text").Return("ok", nil)

		_, err := uc.Execute(ctx, "text")
		require.NoError(t, err)
	})

	t.Run("缓存故障不影响主流程", func(t *testing.T) {
		s := new(mockSummarizer)
		cache := newMemoryCache()
		cache.getErr = errors.New("redis down")
		uc := NewSummarizeTextUseCase(s, cache, time.Second)
		s.On("Summarize", mock.Anything, "text").Return("ok", nil)

		got, err := uc.Execute(ctx, "text")
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
	})
}

func TestRecommendBooksUseCase(t *testing.T) {
	ctx := context.Background()
	id := uint(3)

	t.Run("成功", func(t *testing.T) {
		r := new(mockRecommender)
		uc := NewRecommendBooksUseCase(r, newMemoryCache(), time.Second)
		rating := 4.0
		want := []inference.Recommendation{{ID: &id, Title: "Dune"}}
		r.On("Recommend", mock.Anything, "SciFi", &rating).Return(want, nil).Once()

		got, err := uc.Execute(ctx, "SciFi", &rating)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		// genre大小写不同命中同一缓存
		got, err = uc.Execute(ctx, "scifi", &rating)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		r.AssertNumberOfCalls(t, "Recommend", 1)
	})

	t.Run("无结果返回空切片", func(t *testing.T) {
		r := new(mockRecommender)
		uc := NewRecommendBooksUseCase(r, nil, time.Second)
		r.On("Recommend", mock.Anything, "", (*float64)(nil)).Return(nil, nil)

		got, err := uc.Execute(ctx, "", nil)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("适配器失败", func(t *testing.T) {
		r := new(mockRecommender)
		uc := NewRecommendBooksUseCase(r, nil, time.Second)
		r.On("Recommend", mock.Anything, "Horror", (*float64)(nil)).Return(nil, context.DeadlineExceeded)

		_, err := uc.Execute(ctx, "Horror", nil)
		assert.ErrorIs(t, err, apperrors.ErrDependency)
	})
}

func TestRecommendCacheKey(t *testing.T) {
	r := 3.5
	assert.Equal(t, "scifi|3.5", recommendCacheKey("SciFi", &r))
	assert.Equal(t, "|*", recommendCacheKey("", nil))
}

func TestInvalidateRecommendationsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("删除图书后重新计算推荐", func(t *testing.T) {
		r := new(mockRecommender)
		cache := newMemoryCache()
		recommend := NewRecommendBooksUseCase(r, cache, time.Second)
		invalidate := NewInvalidateRecommendationsUseCase(cache)

		id := uint(1)
		r.On("Recommend", mock.Anything, "", (*float64)(nil)).
			Return([]inference.Recommendation{{ID: &id, Title: "Dune"}}, nil).Once()
		r.On("Recommend", mock.Anything, "", (*float64)(nil)).
			Return([]inference.Recommendation{}, nil).Once()

		got, err := recommend.Execute(ctx, "", nil)
		require.NoError(t, err)
		assert.Len(t, got, 1)

		cache.items["summary:text"] = "ok"
		require.NoError(t, invalidate.Execute(ctx, event.RoutingBookDeleted))
		assert.Contains(t, cache.items, "summary:text")

		got, err = recommend.Execute(ctx, "", nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		r.AssertNumberOfCalls(t, "Recommend", 2)
	})

	t.Run("无关事件不清除", func(t *testing.T) {
		cache := newMemoryCache()
		cache.items["recommend:|*"] = []inference.Recommendation{}

		require.NoError(t, NewInvalidateRecommendationsUseCase(cache).Execute(ctx, "order.created"))
		assert.Len(t, cache.items, 1)
	})

	t.Run("清除失败返回错误以便重新投递", func(t *testing.T) {
		cache := newMemoryCache()
		cache.invalidateErr = errors.New("redis down")

		err := NewInvalidateRecommendationsUseCase(cache).Execute(ctx, event.RoutingReviewCreated)
		assert.Error(t, err)
	})

	t.Run("未启用缓存", func(t *testing.T) {
		assert.NoError(t, NewInvalidateRecommendationsUseCase(nil).Execute(ctx, event.RoutingBookUpdated))
	})

	t.Run("订阅全部图书与评论事件", func(t *testing.T) {
		assert.ElementsMatch(t, []string{
			event.RoutingBookCreated, event.RoutingBookUpdated, event.RoutingBookDeleted, event.RoutingReviewCreated,
		}, NewInvalidateRecommendationsUseCase(nil).RoutingKeys())
	})
}
