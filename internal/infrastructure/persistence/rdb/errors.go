package rdb

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/xiebiao/bookreviews/pkg/errors"
)

// isDuplicateError 判断是否为唯一索引冲突
// - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
// - PostgreSQL 23505: duplicate key value violates unique constraint
// - SQLite: UNIQUE constraint failed
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// isForeignKeyError 判断是否为外键约束失败
// - MySQL 1452: Cannot add or update a child row: a foreign key constraint fails
// - PostgreSQL 23503
// - SQLite: FOREIGN KEY constraint failed
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "a foreign key constraint fails") ||
		strings.Contains(msg, "SQLSTATE 23503") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}

// storeError 数据库错误，客户端只会看到通用500
func storeError(err error, message string) error {
	return apperrors.ErrDatabaseError.WithCause(fmt.Errorf("%s: %w", message, err))
}
