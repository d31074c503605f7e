package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookreviews/internal/domain/book"
	"github.com/xiebiao/bookreviews/internal/domain/review"
)

// reviewRepository 评论仓储实现
type reviewRepository struct {
	db *gorm.DB
	tx *TxManager
}

// NewReviewRepository 创建评论仓储
func NewReviewRepository(db *gorm.DB, tx *TxManager) review.Repository {
	return &reviewRepository{db: db, tx: tx}
}

// Create 创建评论
// 孤儿评论被显式拒绝：先在事务内以共享锁确认图书存在，
// 与并发删除竞争导致的外键失败同样映射为ErrBookNotFound
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		BookID:     rv.BookID,
		UserID:     rv.UserID,
		ReviewText: rv.ReviewText,
		Rating:     rv.Rating,
	}

	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := dbFromContext(ctx, r.db)

		// 1. 确认图书存在
		var bm BookModel
		err := db.Clauses(clause.Locking{Strength: "SHARE"}).
			Select("id").
			First(&bm, rv.BookID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return storeError(err, "check book failed")
		}

		// 2. 插入评论
		if err := db.Omit("Book").Create(model).Error; err != nil {
			if isForeignKeyError(err) {
				return book.ErrBookNotFound
			}
			return storeError(err, "create review failed")
		}
		return nil
	})
	if err != nil {
		return err
	}

	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	return nil
}

// ListByBookID 某本书的全部评论，按插入顺序
func (r *reviewRepository) ListByBookID(ctx context.Context, bookID uint) ([]*review.Review, error) {
	var models []ReviewModel
	err := dbFromContext(ctx, r.db).
		Where("book_id = ?", bookID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, storeError(err, "list reviews failed")
	}

	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = toReviewEntity(&models[i])
	}
	return reviews, nil
}

func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:         model.ID,
		BookID:     model.BookID,
		UserID:     model.UserID,
		ReviewText: model.ReviewText,
		Rating:     model.Rating,
		CreatedAt:  model.CreatedAt,
	}
}
