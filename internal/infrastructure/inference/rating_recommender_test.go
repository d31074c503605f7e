package inference

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookreviews/internal/domain/book"
	"github.com/xiebiao/bookreviews/internal/domain/review"
	"github.com/xiebiao/bookreviews/internal/infrastructure/config"
	"github.com/xiebiao/bookreviews/internal/infrastructure/persistence/rdb"
)

func setupRatedBooks(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := rdb.NewDB(&config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			DBName:       filepath.Join(t.TempDir(), "recommend_test.db"),
			MaxOpenConns: 1,
			AutoMigrate:  true,
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close(db) })

	ctx := context.Background()
	tx := rdb.NewTxManager(db)
	books := rdb.NewBookRepository(db, tx)
	reviews := rdb.NewReviewRepository(db, tx)

	scifi, horror := "SciFi", "Horror"
	seed := []struct {
		title   string
		genre   *string
		ratings []float64
	}{
		{"Dune", &scifi, []float64{5, 4}},    // 4.5
		{"Hyperion", &scifi, []float64{4}},   // 4.0
		{"Solaris", &scifi, []float64{2, 3}}, // 2.5
		{"Neuromancer", &scifi, nil},         // 无评论
		{"It", &horror, []float64{5}},        // 5.0
	}
	for _, s := range seed {
		b, err := book.NewBook(s.title, "Author", s.genre, nil, nil)
		require.NoError(t, err)
		require.NoError(t, books.Create(ctx, b))

		for _, rating := range s.ratings {
			rv, err := review.NewReview(b.ID, 1, nil, rating)
			require.NoError(t, err)
			require.NoError(t, reviews.Create(ctx, rv))
		}
	}
	return db
}

func TestRatingRecommender(t *testing.T) {
	db := setupRatedBooks(t)
	ctx := context.Background()
	r := NewRatingRecommender(db, 10)

	titlesOf := func(t *testing.T, genre string, minRating *float64) []string {
		t.Helper()
		recs, err := r.Recommend(ctx, genre, minRating)
		require.NoError(t, err)

		out := make([]string, len(recs))
		for i, rec := range recs {
			require.NotNil(t, rec.ID)
			out[i] = rec.Title
		}
		return out
	}

	t.Run("按平均分降序", func(t *testing.T) {
		assert.Equal(t, []string{"Dune", "Hyperion", "Solaris"}, titlesOf(t, "SciFi", nil))
	})

	t.Run("genre不区分大小写", func(t *testing.T) {
		assert.Equal(t, []string{"It"}, titlesOf(t, "horror", nil))
	})

	t.Run("最低评分过滤", func(t *testing.T) {
		threshold := 4.0
		assert.Equal(t, []string{"Dune", "Hyperion"}, titlesOf(t, "SciFi", &threshold))
	})

	t.Run("genre为空时不过滤类型", func(t *testing.T) {
		threshold := 4.5
		assert.Equal(t, []string{"It", "Dune"}, titlesOf(t, "", &threshold))
	})

	t.Run("无匹配", func(t *testing.T) {
		assert.Empty(t, titlesOf(t, "Romance", nil))
	})

	t.Run("limit", func(t *testing.T) {
		recs, err := NewRatingRecommender(db, 1).Recommend(ctx, "SciFi", nil)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "Dune", recs[0].Title)
	})
}
