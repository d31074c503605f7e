package review

import (
	"time"
)

const (
	MinRating = 0
	MaxRating = 5
)

// Review 评论实体
// UserID不校验用户是否存在(系统没有用户实体)
type Review struct {
	ID         uint
	BookID     uint
	UserID     int64
	ReviewText *string
	Rating     float64
	CreatedAt  time.Time
}

// NewReview 创建评论(工厂方法)
func NewReview(bookID uint, userID int64, text *string, rating float64) (*Review, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	return &Review{
		BookID:     bookID,
		UserID:     userID,
		ReviewText: text,
		Rating:     rating,
	}, nil
}
