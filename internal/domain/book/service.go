package book

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiebiao/bookreviews/internal/domain/event"
	"github.com/xiebiao/bookreviews/pkg/metrics"
)

// Service 图书领域服务接口
// 每个方法只调用一次Repository，提交成功后再发布领域事件
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - title、author必填
	// - (title, author)不能重复
	CreateBook(ctx context.Context, in CreateInput) (uint, error)

	// ListBooks 图书列表(id, title, author)
	ListBooks(ctx context.Context) ([]Summary, error)

	// GetBook 图书详情
	GetBook(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 部分更新，未出现在patch中的字段保持不变
	UpdateBook(ctx context.Context, id uint, patch Patch) error

	// DeleteBook 删除图书(级联删除评论)
	DeleteBook(ctx context.Context, id uint) error
}

// CreateInput 创建图书参数
type CreateInput struct {
	Title         string
	Author        string
	Genre         *string
	YearPublished *int
	Summary       *string
}

type service struct {
	repo      Repository
	publisher event.Publisher
}

// NewService 创建图书领域服务
func NewService(repo Repository, publisher event.Publisher) Service {
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &service{repo: repo, publisher: publisher}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, in CreateInput) (uint, error) {
	// 1. 构造并校验实体
	b, err := NewBook(in.Title, in.Author, in.Genre, in.YearPublished, in.Summary)
	if err != nil {
		return 0, err
	}

	// 2. 持久化(重复检查在同一事务内完成)
	if err := s.repo.Create(ctx, b); err != nil {
		if errors.Is(err, ErrBookExists) {
			metrics.IncCounter(metrics.BookConflictsTotal)
		}
		return 0, err
	}
	metrics.IncCounter(metrics.BooksCreatedTotal)

	// 3. 发布事件
	s.publish(ctx, event.BookCreated{
		BookID:     b.ID,
		Title:      b.Title,
		Author:     b.Author,
		OccurredAt: time.Now(),
	})

	return b.ID, nil
}

// ListBooks 图书列表
func (s *service) ListBooks(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// GetBook 图书详情
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	if id == 0 {
		return nil, ErrBookNotFound
	}
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 部分更新
func (s *service) UpdateBook(ctx context.Context, id uint, patch Patch) error {
	if id == 0 {
		return ErrBookNotFound
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, ErrBookExists) {
			metrics.IncCounter(metrics.BookConflictsTotal)
		}
		return err
	}

	if !patch.IsEmpty() {
		s.publish(ctx, event.BookUpdated{
			BookID:     updated.ID,
			Fields:     patch.Fields(),
			OccurredAt: time.Now(),
		})
	}
	return nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrBookNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.IncCounter(metrics.BooksDeletedTotal)

	s.publish(ctx, event.BookDeleted{BookID: id, OccurredAt: time.Now()})
	return nil
}

// publish 事务已提交，发布失败不回传给调用方
func (s *service) publish(ctx context.Context, e event.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		log.Ctx(ctx).Warn().
			Err(err).
			Str("routing_key", e.RoutingKey()).
			Msg("publish domain event failed")
	}
}
