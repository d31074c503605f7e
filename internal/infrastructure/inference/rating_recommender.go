package inference

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/xiebiao/bookreviews/internal/domain/inference"
)

// RatingRecommender 进程内推荐：按平均评分排序的同类型图书
// 只读查询，不写入任何数据
type RatingRecommender struct {
	db    *gorm.DB
	limit int
}

// NewRatingRecommender 创建评分推荐器
func NewRatingRecommender(db *gorm.DB, limit int) *RatingRecommender {
	if limit <= 0 {
		limit = 10
	}
	return &RatingRecommender{db: db, limit: limit}
}

type ratedBook struct {
	ID        uint
	Title     string
	AvgRating float64
}

// Recommend genre不区分大小写；minRating为nil时不按评分过滤
// 没有评论的图书不参与推荐
func (r *RatingRecommender) Recommend(ctx context.Context, genre string, minRating *float64) ([]inference.Recommendation, error) {
	query := r.db.WithContext(ctx).
		Table("books AS b").
		Select("b.id AS id, b.title AS title, AVG(r.rating) AS avg_rating").
		Joins("JOIN reviews AS r ON r.book_id = b.id").
		Group("b.id, b.title")

	if genre = strings.TrimSpace(genre); genre != "" {
		query = query.Where("LOWER(b.genre) = ?", strings.ToLower(genre))
	}
	if minRating != nil {
		query = query.Having("AVG(r.rating) >= ?", *minRating)
	}

	var rows []ratedBook
	if err := query.Order("avg_rating DESC, b.id ASC").Limit(r.limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("查询推荐图书失败: %w", err)
	}

	books := make([]inference.Recommendation, len(rows))
	for i, row := range rows {
		id := row.ID
		books[i] = inference.Recommendation{ID: &id, Title: row.Title}
	}
	return books, nil
}
