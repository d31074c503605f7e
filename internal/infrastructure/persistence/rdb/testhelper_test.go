package rdb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookreviews/internal/infrastructure/config"
)

// setupTestDB 每个测试一个临时SQLite文件(外键开启)，单连接保证写事务串行
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{
			Driver:       "sqlite",
			DBName:       filepath.Join(t.TempDir(), "bookreviews_test.db"),
			MaxOpenConns: 1,
			AutoMigrate:  true,
		},
	}

	db, err := NewDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
