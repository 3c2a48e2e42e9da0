package services

import (
	"errors"
	"testing"

	"dotgo/internal/db"
	"dotgo/internal/models"
)

func TestUnlockProjectSplitsPayment(t *testing.T) {
	setupTest(t)
	owner := createTestUser(t, 0)
	reviewer := createTestUser(t, 1000)
	treasury := treasuryUser(t)
	project := createTestProject(t, owner)

	if err := UnlockProject(project.ID, reviewer, 300); err != nil {
		t.Fatalf("UnlockProject failed: %v", err)
	}

	// 拆分转账：作者 +250，金库 +50，评阅人 -300
	if got := balanceOf(t, owner.ID); got != 250 {
		t.Errorf("Expected owner balance 250, got %d", got)
	}
	if got := balanceOf(t, treasury.ID); got != 50 {
		t.Errorf("Expected treasury balance 50, got %d", got)
	}
	if got := balanceOf(t, reviewer.ID); got != 700 {
		t.Errorf("Expected reviewer balance 700, got %d", got)
	}

	if got := unlockCountOf(t, project.ID); got != 1 {
		t.Errorf("Expected unlock_count 1, got %d", got)
	}
	if !IsUnlocked(project.ID, reviewer.ID) {
		t.Error("Expected IsUnlocked to be true")
	}

	// 两笔转账各有一条明细
	var logs int64
	db.DB.Model(&models.TransferLog{}).Where("from_user_id = ?", reviewer.ID).Count(&logs)
	if logs != 2 {
		t.Errorf("Expected 2 transfer logs, got %d", logs)
	}
}

func TestUnlockProjectNotFound(t *testing.T) {
	setupTest(t)
	reviewer := createTestUser(t, 1000)

	err := UnlockProject(9999, reviewer, 300)
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("Expected ErrProjectNotFound, got %v", err)
	}
	if got := balanceOf(t, reviewer.ID); got != 1000 {
		t.Errorf("Balance should be untouched, got %d", got)
	}
}

func TestUnlockOwnProjectForbidden(t *testing.T) {
	setupTest(t)
	owner := createTestUser(t, 1000)
	project := createTestProject(t, owner)

	err := UnlockProject(project.ID, owner, 300)
	if !errors.Is(err, ErrCannotReviewOwnProject) {
		t.Errorf("Expected ErrCannotReviewOwnProject, got %v", err)
	}
	if got := balanceOf(t, owner.ID); got != 1000 {
		t.Errorf("Balance should be untouched, got %d", got)
	}
	if got := unlockCountOf(t, project.ID); got != 0 {
		t.Errorf("Expected unlock_count 0, got %d", got)
	}
}

func TestUnlockTwiceReturnsAlreadyUnlocked(t *testing.T) {
	setupTest(t)
	owner := createTestUser(t, 0)
	reviewer := createTestUser(t, 1000)
	project := createTestProject(t, owner)

	if err := UnlockProject(project.ID, reviewer, 300); err != nil {
		t.Fatalf("First unlock failed: %v", err)
	}

	err := UnlockProject(project.ID, reviewer, 300)
	if !errors.Is(err, ErrAlreadyUnlocked) {
		t.Errorf("Expected ErrAlreadyUnlocked, got %v", err)
	}

	// 计数和余额都不能再变
	if got := unlockCountOf(t, project.ID); got != 1 {
		t.Errorf("Expected unlock_count 1, got %d", got)
	}
	if got := balanceOf(t, reviewer.ID); got != 700 {
		t.Errorf("Expected reviewer balance 700, got %d", got)
	}
}

func TestUnlockInsufficientPayment(t *testing.T) {
	setupTest(t)
	owner := createTestUser(t, 0)
	reviewer := createTestUser(t, 1000)
	project := createTestProject(t, owner)

	// 差一分都不行
	err := UnlockProject(project.ID, reviewer, 299)
	if !errors.Is(err, ErrInsufficientPayment) {
		t.Errorf("Expected ErrInsufficientPayment, got %v", err)
	}
	if got := balanceOf(t, reviewer.ID); got != 1000 {
		t.Errorf("Balance should be untouched, got %d", got)
	}

	// 正好等于价格则成功
	if err := UnlockProject(project.ID, reviewer, 300); err != nil {
		t.Errorf("Unlock at exact price should succeed, got %v", err)
	}
}

func TestUnlockOverpaymentOnlyDebitsPrice(t *testing.T) {
	setupTest(t)
	owner := createTestUser(t, 0)
	reviewer := createTestUser(t, 1000)
	project := createTestProject(t, owner)

	// 出价 500，实际只扣 300，差额留在钱包里
	if err := UnlockProject(project.ID, reviewer, 500); err != nil {
		t.Fatalf("UnlockProject failed: %v", err)
	}
	if got := balanceOf(t, reviewer.ID); got != 700 {
		t.Errorf("Expected reviewer balance 700, got %d", got)
	}

	var unlock models.Unlock
	if err := db.DB.Where("project_id = ? AND user_id = ?", project.ID, reviewer.ID).First(&unlock).Error; err != nil {
		t.Fatalf("Unlock record missing: %v", err)
	}
	if unlock.AmountPaid != 300 {
		t.Errorf("Expected amount_paid 300, got %d", unlock.AmountPaid)
	}
}

func TestUnlockTransferFailureRollsBack(t *testing.T) {
	setupTest(t)
	owner := createTestUser(t, 0)
	treasury := treasuryUser(t)
	// 余额够过足额校验的出价，但不够两笔分成（250 过了，50 不够时回滚一切）
	reviewer := createTestUser(t, 280)
	project := createTestProject(t, owner)

	err := UnlockProject(project.ID, reviewer, 300)
	if !errors.Is(err, ErrTransferFailed) {
		t.Fatalf("Expected ErrTransferFailed, got %v", err)
	}

	// 第一笔转账必须随事务整体回滚，外部看不到半笔支付
	if got := balanceOf(t, owner.ID); got != 0 {
		t.Errorf("Owner balance should be 0 after rollback, got %d", got)
	}
	if got := balanceOf(t, treasury.ID); got != 0 {
		t.Errorf("Treasury balance should be 0 after rollback, got %d", got)
	}
	if got := balanceOf(t, reviewer.ID); got != 280 {
		t.Errorf("Reviewer balance should be 280 after rollback, got %d", got)
	}
	if IsUnlocked(project.ID, reviewer.ID) {
		t.Error("Unlock flag should not be set after rollback")
	}
	if got := unlockCountOf(t, project.ID); got != 0 {
		t.Errorf("Expected unlock_count 0 after rollback, got %d", got)
	}

	var logs int64
	db.DB.Model(&models.TransferLog{}).Count(&logs)
	if logs != 0 {
		t.Errorf("Expected no transfer logs after rollback, got %d", logs)
	}
}

// 端到端场景：发布 → 解锁 → 评阅 → 重复解锁被拒 → 作者自解锁被拒
func TestUnlockAndReviewScenario(t *testing.T) {
	setupTest(t)
	alice := createTestUser(t, 0)  // 作者
	bob := createTestUser(t, 1000) // 评阅人
	treasury := treasuryUser(t)
	project := createTestProject(t, alice)

	if err := UnlockProject(project.ID, bob, 300); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if got := balanceOf(t, alice.ID); got != 250 {
		t.Errorf("Expected alice balance 250, got %d", got)
	}
	if got := balanceOf(t, treasury.ID); got != 50 {
		t.Errorf("Expected treasury balance 50, got %d", got)
	}
	if got := unlockCountOf(t, project.ID); got != 1 {
		t.Errorf("Expected unlock_count 1, got %d", got)
	}

	if err := SubmitReview(project.ID, bob, 5, "great"); err != nil {
		t.Fatalf("SubmitReview failed: %v", err)
	}
	updated, err := GetProject(project.ID)
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	if updated.AvgRating != 5 {
		t.Errorf("Expected avg_rating 5, got %d", updated.AvgRating)
	}

	if err := UnlockProject(project.ID, bob, 300); !errors.Is(err, ErrAlreadyUnlocked) {
		t.Errorf("Expected ErrAlreadyUnlocked, got %v", err)
	}
	if err := UnlockProject(project.ID, alice, 300); !errors.Is(err, ErrCannotReviewOwnProject) {
		t.Errorf("Expected ErrCannotReviewOwnProject, got %v", err)
	}
}
