package rdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookreviews/internal/domain/book"
	"github.com/xiebiao/bookreviews/internal/domain/review"
)

func addReview(t *testing.T, repo review.Repository, bookID uint, rating float64) *review.Review {
	t.Helper()
	r, err := review.NewReview(bookID, 7, strPtr("great"), rating)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func TestReviewRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	tx := NewTxManager(db)
	books := NewBookRepository(db, tx)
	repo := NewReviewRepository(db, tx)
	ctx := context.Background()

	dune := createBook(t, books, "Dune", "Herbert")
	emma := createBook(t, books, "Emma", "Austen")

	r1 := addReview(t, repo, dune.ID, 5)
	r2 := addReview(t, repo, dune.ID, 3.5)
	addReview(t, repo, emma.ID, 4)

	list, err := repo.ListByBookID(ctx, dune.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, r1.ID, list[0].ID)
	assert.Equal(t, r2.ID, list[1].ID)
	assert.Equal(t, 3.5, list[1].Rating)
	assert.Equal(t, "great", *list[0].ReviewText)
	assert.Equal(t, int64(7), list[0].UserID)
}

func TestReviewRepository_ListEmpty(t *testing.T) {
	db := setupTestDB(t)
	tx := NewTxManager(db)
	books := NewBookRepository(db, tx)
	repo := NewReviewRepository(db, tx)

	b := createBook(t, books, "Dune", "Herbert")

	list, err := repo.ListByBookID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	// 图书不存在同样返回空列表
	list, err = repo.ListByBookID(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReviewRepository_RejectOrphan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReviewRepository(db, NewTxManager(db))

	r, _ := review.NewReview(999, 7, nil, 4)
	err := repo.Create(context.Background(), r)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	var n int64
	require.NoError(t, db.Model(&ReviewModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestReviewModel_ForeignKeyEnforced(t *testing.T) {
	db := setupTestDB(t)

	err := db.Omit("Book").Create(&ReviewModel{BookID: 42, UserID: 1, Rating: 3}).Error
	assert.True(t, isForeignKeyError(err), "外键应拒绝孤儿评论: %v", err)
}
