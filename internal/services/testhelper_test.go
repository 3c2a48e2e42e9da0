package services

import (
	"fmt"
	"testing"

	"dotgo/internal/db"
	"dotgo/internal/models"
)

// setupTest 初始化内存数据库并固定定价配置（300 = 250 + 50）
func setupTest(t *testing.T) {
	t.Helper()

	t.Setenv("UNLOCK_PRICE", "300")
	t.Setenv("STUDENT_SHARE", "250")
	t.Setenv("PLATFORM_SHARE", "50")
	marketConfig = nil // 重置单例以便重新加载配置

	db.InitTest(t)
}

var testUserSeq int

// createTestUser 创建一个带初始余额的测试用户
func createTestUser(t *testing.T, balance int64) *models.User {
	t.Helper()

	testUserSeq++
	user := models.User{
		Username: fmt.Sprintf("user%d", testUserSeq),
		Email:    fmt.Sprintf("user%d@test.local", testUserSeq),
		Password: "x",
		Balance:  balance,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return &user
}

// createTestProject 给指定作者创建一个测试项目
func createTestProject(t *testing.T, owner *models.User) *models.Project {
	t.Helper()

	project, err := CreateProject(owner, "My Portfolio", "A cool project",
		"https://github.com/user/repo", "https://demo.com", []string{"Go", "React"})
	if err != nil {
		t.Fatalf("创建测试项目失败: %v", err)
	}
	return project
}

// balanceOf 读取用户当前余额
func balanceOf(t *testing.T, userID uint) int64 {
	t.Helper()

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		t.Fatalf("查询用户 %d 失败: %v", userID, err)
	}
	return user.Balance
}

// treasuryUser 取出种子金库账户
func treasuryUser(t *testing.T) *models.User {
	t.Helper()

	var treasury models.User
	if err := db.DB.Where("role = ?", models.RoleTreasury).First(&treasury).Error; err != nil {
		t.Fatalf("金库账户缺失: %v", err)
	}
	return &treasury
}

// unlockCountOf 读取项目当前解锁计数
func unlockCountOf(t *testing.T, projectID uint) int {
	t.Helper()

	var project models.Project
	if err := db.DB.First(&project, projectID).Error; err != nil {
		t.Fatalf("查询项目 %d 失败: %v", projectID, err)
	}
	return project.UnlockCount
}
