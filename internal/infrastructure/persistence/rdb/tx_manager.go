package rdb

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type txKey struct{}

// defaultTxTimeout 事务最长持有连接的时间
const defaultTxTimeout = 30 * time.Second

// TxManager 事务管理器
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(Repository用getDB提取)
// 3. 已在事务中时直接加入外层事务
// 4. 事务与请求的取消解耦：客户端断开后事务仍会完整提交或回滚
type TxManager struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db, timeout: defaultTxTimeout}
}

// Transaction 执行事务
// fn返回error时ROLLBACK，返回nil时COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    // 1. 锁定图书
//	    model, err := lockBook(ctx, id)
//	    if err != nil {
//	        return err
//	    }
//	    // 2. 保存修改
//	    return getDB(ctx).Save(model).Error // nil则提交,非nil则回滚
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	// 保留ctx中的值(请求日志、trace)，去掉取消信号，再加上超时上限
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
	defer cancel()

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext 从context获取事务DB，没有则使用默认DB
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
