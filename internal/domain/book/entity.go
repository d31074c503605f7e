package book

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxTitleLen  = 255
	maxAuthorLen = 255
	maxGenreLen  = 100
	maxYear      = 9999
)

// Book 图书实体(聚合根)
// 1. (Title, Author)组合唯一，由数据库唯一索引保证
// 2. Genre/YearPublished/Summary可选，nil表示未设置
// 3. ID由数据库生成，创建后不可变
type Book struct {
	ID            uint
	Title         string
	Author        string
	Genre         *string
	YearPublished *int
	Summary       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Summary 列表视图投影，只包含id、title、author
type Summary struct {
	ID     uint
	Title  string
	Author string
}

// NewBook 创建新图书(工厂方法)
func NewBook(title, author string, genre *string, year *int, summary *string) (*Book, error) {
	b := &Book{
		Title:         strings.TrimSpace(title),
		Author:        strings.TrimSpace(author),
		Genre:         genre,
		YearPublished: year,
		Summary:       summary,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate 校验实体不变量
func (b *Book) Validate() error {
	if b.Title == "" || utf8.RuneCountInString(b.Title) > maxTitleLen {
		return ErrInvalidTitle
	}
	if b.Author == "" || utf8.RuneCountInString(b.Author) > maxAuthorLen {
		return ErrInvalidAuthor
	}
	if b.Genre != nil && utf8.RuneCountInString(*b.Genre) > maxGenreLen {
		return ErrInvalidGenre
	}
	if b.YearPublished != nil && (*b.YearPublished < 0 || *b.YearPublished > maxYear) {
		return ErrInvalidYear
	}
	return nil
}

// Apply 应用部分更新(领域行为)
// 只修改patch中出现的字段；失败时实体保持原样
func (b *Book) Apply(p Patch) error {
	next := *b

	if v, ok := p.Title.Get(); ok {
		next.Title = strings.TrimSpace(v)
	}
	if v, ok := p.Author.Get(); ok {
		next.Author = strings.TrimSpace(v)
	}
	if v, ok := p.Genre.Get(); ok {
		next.Genre = v
	}
	if v, ok := p.YearPublished.Get(); ok {
		next.YearPublished = v
	}
	if v, ok := p.Summary.Get(); ok {
		next.Summary = v
	}

	if err := next.Validate(); err != nil {
		return err
	}

	*b = next
	return nil
}
