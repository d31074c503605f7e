package review

import (
	"context"
)

// Repository 评论仓储接口
type Repository interface {
	// Create 在同一事务内确认图书存在后插入评论
	// 图书不存在返回book.ErrBookNotFound
	Create(ctx context.Context, review *Review) error

	// ListByBookID 按id升序返回某本书的全部评论
	// 没有评论(包括图书不存在)时返回空切片而不是错误
	ListByBookID(ctx context.Context, bookID uint) ([]*Review, error)
}
