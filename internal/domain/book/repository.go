package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 每个方法都是一个独立的事务单元：要么完整生效，要么没有任何可见变化
type Repository interface {
	// Create 创建图书，(title, author)重复时返回ErrBookExists
	// 成功后回填ID
	Create(ctx context.Context, book *Book) error

	// List 按id升序返回所有图书的列表投影
	List(ctx context.Context) ([]Summary, error)

	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update 在同一事务内锁定行(SELECT ... FOR UPDATE)、应用patch并保存
	// 返回更新后的实体；修改后与其他图书(title, author)冲突时返回ErrBookExists
	Update(ctx context.Context, id uint, patch Patch) (*Book, error)

	// Delete 删除图书及其全部评论
	Delete(ctx context.Context, id uint) error
}
