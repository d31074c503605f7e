package dto

import (
	"time"

	"github.com/xiebiao/bookreviews/internal/domain/book"
)

// CreateBookRequest 创建图书请求
// 必填与长度校验由领域层完成，错误信息统一
type CreateBookRequest struct {
	Title         string  `json:"title" example:"Dune"`
	Author        string  `json:"author" example:"Frank Herbert"`
	Genre         *string `json:"genre" example:"Science Fiction"`
	YearPublished *int    `json:"year_published" example:"1965"`
	Summary       *string `json:"summary" example:"A desert planet and its spice."`
}

// ToInput 转换为领域参数
func (r *CreateBookRequest) ToInput() book.CreateInput {
	return book.CreateInput{
		Title:         r.Title,
		Author:        r.Author,
		Genre:         r.Genre,
		YearPublished: r.YearPublished,
		Summary:       r.Summary,
	}
}

// UpdateBookRequest 部分更新请求
// 未出现的字段不修改；genre、year_published、summary为null时清空
type UpdateBookRequest struct {
	Title         Optional[string] `json:"title" swaggertype:"string" example:"Dune Messiah"`
	Author        Optional[string] `json:"author" swaggertype:"string" example:"Frank Herbert"`
	Genre         Optional[string] `json:"genre" swaggertype:"string" example:"Science Fiction"`
	YearPublished Optional[int]    `json:"year_published" swaggertype:"integer" example:"1969"`
	Summary       Optional[string] `json:"summary" swaggertype:"string"`
}

// ToPatch 转换为领域Patch
// title、author不能为null
func (r *UpdateBookRequest) ToPatch() (book.Patch, error) {
	var patch book.Patch

	if r.Title.Set {
		if r.Title.Null {
			return book.Patch{}, book.ErrInvalidTitle
		}
		patch.Title = book.Set(r.Title.Value)
	}
	if r.Author.Set {
		if r.Author.Null {
			return book.Patch{}, book.ErrInvalidAuthor
		}
		patch.Author = book.Set(r.Author.Value)
	}
	if r.Genre.Set {
		patch.Genre = book.Set(r.Genre.Ptr())
	}
	if r.YearPublished.Set {
		patch.YearPublished = book.Set(r.YearPublished.Ptr())
	}
	if r.Summary.Set {
		patch.Summary = book.Set(r.Summary.Ptr())
	}

	return patch, nil
}

// BookResponse 图书详情
type BookResponse struct {
	ID            uint      `json:"id" example:"1"`
	Title         string    `json:"title" example:"Dune"`
	Author        string    `json:"author" example:"Frank Herbert"`
	Genre         *string   `json:"genre" example:"Science Fiction"`
	YearPublished *int      `json:"year_published" example:"1965"`
	Summary       *string   `json:"summary"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookListItem 图书列表项，只包含id、title、author
type BookListItem struct {
	ID     uint   `json:"id" example:"1"`
	Title  string `json:"title" example:"Dune"`
	Author string `json:"author" example:"Frank Herbert"`
}

// ToBookResponse 实体 → 响应
func ToBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.Genre,
		YearPublished: b.YearPublished,
		Summary:       b.Summary,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// ToBookList 列表为空时返回[]而不是null
func ToBookList(list []book.Summary) []BookListItem {
	items := make([]BookListItem, len(list))
	for i, s := range list {
		items[i] = BookListItem{ID: s.ID, Title: s.Title, Author: s.Author}
	}
	return items
}
