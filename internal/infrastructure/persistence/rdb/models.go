package rdb

import (
	"time"
)

// BookModel GORM图书模型
// 1. (title, author)唯一索引，保证同一本书只存在一条记录
// 2. 不使用软删除：删除后允许重新创建同名图书
type BookModel struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"uniqueIndex:uk_books_title_author;size:255;not null;comment:书名"`
	Author        string    `gorm:"uniqueIndex:uk_books_title_author;size:255;not null;comment:作者"`
	Genre         *string   `gorm:"index;size:100;comment:类型"`
	YearPublished *int      `gorm:"comment:出版年份"`
	Summary       *string   `gorm:"type:text;comment:简介"`
	CreatedAt     time.Time `gorm:"comment:创建时间"`
	UpdatedAt     time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// ReviewModel GORM评论模型
// book_id外键引用books.id，删除图书时级联删除评论
type ReviewModel struct {
	ID         uint       `gorm:"primaryKey"`
	BookID     uint       `gorm:"index;not null;comment:图书ID"`
	Book       *BookModel `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	UserID     int64      `gorm:"not null;comment:用户ID(不校验)"`
	ReviewText *string    `gorm:"type:text;comment:评论内容"`
	Rating     float64    `gorm:"not null;comment:评分(0-5)"`
	CreatedAt  time.Time  `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}
