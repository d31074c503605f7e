package book

import (
	apperrors "github.com/xiebiao/bookreviews/pkg/errors"
)

// 图书领域错误定义
// Message直接返回给客户端
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "Book not found")

	// ErrBookExists (title, author)已存在
	ErrBookExists = apperrors.New(apperrors.ErrCodeBookDuplicate, "Book already exists")

	// ErrInvalidBookID 路径中的id不是正整数
	ErrInvalidBookID = apperrors.New(apperrors.ErrCodeInvalidParams, "Invalid book id")

	ErrInvalidTitle  = apperrors.New(apperrors.ErrCodeInvalidParams, "title is required and must be at most 255 characters")
	ErrInvalidAuthor = apperrors.New(apperrors.ErrCodeInvalidParams, "author is required and must be at most 255 characters")
	ErrInvalidGenre  = apperrors.New(apperrors.ErrCodeInvalidParams, "genre must be at most 100 characters")
	ErrInvalidYear   = apperrors.New(apperrors.ErrCodeInvalidParams, "year_published must be between 0 and 9999")
)
