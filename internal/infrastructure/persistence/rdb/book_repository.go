package rdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookreviews/internal/domain/book"
)

// bookRepository 图书仓储实现
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 把数据库特定的错误(唯一键冲突等)转换为业务错误
type bookRepository struct {
	db *gorm.DB
	tx *TxManager
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB, tx *TxManager) book.Repository {
	return &bookRepository{db: db, tx: tx}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := dbFromContext(ctx, r.db)

		// 1. 检查(title, author)是否已存在
		exists, err := r.identityTaken(db, b.Title, b.Author, 0)
		if err != nil {
			return err
		}
		if exists {
			return book.ErrBookExists
		}

		// 2. 插入；并发插入由唯一索引兜底
		if err := db.Create(model).Error; err != nil {
			if isDuplicateError(err) {
				return book.ErrBookExists
			}
			return storeError(err, "create book failed")
		}
		return nil
	})
	if err != nil {
		return err
	}

	// 3. 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// List 图书列表，只查询投影需要的列
func (r *bookRepository) List(ctx context.Context) ([]book.Summary, error) {
	var rows []book.Summary
	err := dbFromContext(ctx, r.db).
		Model(&BookModel{}).
		Select("id", "title", "author").
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storeError(err, "list books failed")
	}

	if rows == nil {
		rows = []book.Summary{}
	}
	return rows, nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := dbFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, storeError(err, "find book failed")
	}

	return toBookEntity(&model), nil
}

// Update 部分更新
// 整个读-改-写在一个事务内完成，SELECT ... FOR UPDATE阻止并发写入同一行
func (r *bookRepository) Update(ctx context.Context, id uint, patch book.Patch) (*book.Book, error) {
	var updated *book.Book

	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := dbFromContext(ctx, r.db)

		// 1. 锁定行
		model, err := lockBook(db, id)
		if err != nil {
			return err
		}

		// 2. 应用patch(领域规则校验)
		b := toBookEntity(model)
		if err := b.Apply(patch); err != nil {
			return err
		}
		updated = b

		if patch.IsEmpty() {
			return nil
		}

		// 3. 修改了title/author时检查是否与其他图书冲突
		if patch.TouchesIdentity() {
			taken, err := r.identityTaken(db, b.Title, b.Author, id)
			if err != nil {
				return err
			}
			if taken {
				return book.ErrBookExists
			}
		}

		// 4. 保存全部字段(nil写为NULL)
		next := toBookModel(b)
		if err := db.Save(next).Error; err != nil {
			if isDuplicateError(err) {
				return book.ErrBookExists
			}
			return storeError(err, "update book failed")
		}
		updated.UpdatedAt = next.UpdatedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete 删除图书及其评论
// 外键声明了ON DELETE CASCADE，这里仍显式删除评论，不依赖驱动是否开启外键检查
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	return r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := dbFromContext(ctx, r.db)

		if _, err := lockBook(db, id); err != nil {
			return err
		}

		if err := db.Where("book_id = ?", id).Delete(&ReviewModel{}).Error; err != nil {
			return storeError(err, "delete reviews failed")
		}

		if err := db.Delete(&BookModel{}, id).Error; err != nil {
			return storeError(err, "delete book failed")
		}
		return nil
	})
}

// identityTaken (title, author)是否被excludeID以外的图书占用
func (r *bookRepository) identityTaken(db *gorm.DB, title, author string, excludeID uint) (bool, error) {
	var count int64
	query := db.Model(&BookModel{}).Where("title = ? AND author = ?", title, author)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, storeError(err, "check book identity failed")
	}
	return count > 0, nil
}

// lockBook SELECT ... FOR UPDATE
// SQLite不支持行锁，GORM方言会忽略该子句，写事务本身是串行的
func lockBook(db *gorm.DB, id uint) (*BookModel, error) {
	var model BookModel
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, storeError(err, "lock book failed")
	}
	return &model, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
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

func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		Author:        model.Author,
		Genre:         model.Genre,
		YearPublished: model.YearPublished,
		Summary:       model.Summary,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
