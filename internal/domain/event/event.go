// Package event 领域事件
//
// 写操作提交成功后由领域服务发布，发布失败只记录日志，不影响已提交的事务。
package event

import (
	"context"
	"time"
)

// 路由键（Topic Exchange下可用book.*订阅所有图书事件）
const (
	RoutingBookCreated   = "book.created"
	RoutingBookUpdated   = "book.updated"
	RoutingBookDeleted   = "book.deleted"
	RoutingReviewCreated = "review.created"
)

// Event 领域事件
type Event interface {
	RoutingKey() string
}

// Publisher 事件发布接口，由infrastructure/mq实现
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// BookCreated 图书已创建
type BookCreated struct {
	BookID     uint      `json:"book_id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (BookCreated) RoutingKey() string { return RoutingBookCreated }

// BookUpdated 图书已更新，Fields为本次修改的字段名
type BookUpdated struct {
	BookID     uint      `json:"book_id"`
	Fields     []string  `json:"fields"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (BookUpdated) RoutingKey() string { return RoutingBookUpdated }

// BookDeleted 图书已删除（其评论一并删除）
type BookDeleted struct {
	BookID     uint      `json:"book_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (BookDeleted) RoutingKey() string { return RoutingBookDeleted }

// ReviewCreated 评论已创建
type ReviewCreated struct {
	ReviewID   uint      `json:"review_id"`
	BookID     uint      `json:"book_id"`
	UserID     int64     `json:"user_id"`
	Rating     float64   `json:"rating"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (ReviewCreated) RoutingKey() string { return RoutingReviewCreated }

// NopPublisher 未启用MQ时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
