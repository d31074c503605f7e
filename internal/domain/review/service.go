package review

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookreviews/internal/domain/book"
	"github.com/xiebiao/bookreviews/internal/domain/event"
	"github.com/xiebiao/bookreviews/pkg/metrics"
)

// Service 评论领域服务接口
type Service interface {
	// AddReview 为图书添加评论，返回评论ID
	// 业务规则:
	// - user_id必填
	// - rating必填且在[0, 5]之间
	// - 图书必须存在
	AddReview(ctx context.Context, bookID uint, in AddInput) (uint, error)

	// ListReviews 某本书的全部评论
	ListReviews(ctx context.Context, bookID uint) ([]*Review, error)
}

// AddInput 添加评论参数，指针为nil表示请求中缺少该字段
type AddInput struct {
	UserID     *int64
	ReviewText *string
	Rating     *float64
}

type service struct {
	repo      Repository
	publisher event.Publisher
}

// NewService 创建评论领域服务
func NewService(repo Repository, publisher event.Publisher) Service {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &service{repo: repo, publisher: publisher}
}

// AddReview 添加评论
func (s *service) AddReview(ctx context.Context, bookID uint, in AddInput) (uint, error) {
	// 1. 参数校验
	if bookID == 0 {
		return 0, book.ErrBookNotFound
	}
	if in.UserID == nil {
		return 0, ErrInvalidUserID
	}
	if in.Rating == nil {
		return 0, ErrInvalidRating
	}

	r, err := NewReview(bookID, *in.UserID, in.ReviewText, *in.Rating)
	if err != nil {
		return 0, err
	}

	// 2. 持久化(图书存在性检查在同一事务内)
	if err := s.repo.Create(ctx, r); err != nil {
		return 0, err
	}
	metrics.IncCounter(metrics.ReviewsCreatedTotal)

	// 3. 发布事件
	e := event.ReviewCreated{
		ReviewID:   r.ID,
		BookID:     r.BookID,
		UserID:     r.UserID,
		Rating:     r.Rating,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("routing_key", e.RoutingKey()).Msg("publish domain event failed")
	}

	return r.ID, nil
}

// ListReviews 评论列表
func (s *service) ListReviews(ctx context.Context, bookID uint) ([]*Review, error) {
	if bookID == 0 {
		return []*Review{}, nil
	}
	return s.repo.ListByBookID(ctx, bookID)
}
