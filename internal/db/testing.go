package db

import (
	"fmt"
	"sync/atomic"
	"testing"

	"dotgo/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// InitTest 为单元测试初始化一个内存 SQLite 数据库。
// 每次调用都是全新库，互不串扰；命名共享缓存保证
// 连接池里的所有连接看到同一个库。
func InitTest(t *testing.T) {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_busy_timeout=5000", seq)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	DB = gdb

	// 测试库同样需要金库账户
	treasury := models.User{
		Username: "platform",
		Email:    "treasury@dotgo.local",
		Password: "!",
		Role:     models.RoleTreasury,
	}
	if err := DB.Create(&treasury).Error; err != nil {
		t.Fatalf("failed to seed treasury: %v", err)
	}
}
