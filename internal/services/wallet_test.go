package services

import (
	"errors"
	"testing"

	"dotgo/internal/db"
	"dotgo/internal/models"

	"gorm.io/gorm"
)

func TestTransferMovesBalanceAndLogs(t *testing.T) {
	setupTest(t)
	from := createTestUser(t, 500)
	to := createTestUser(t, 0)

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return Transfer(tx, from.ID, to.ID, 200, "测试转账")
	})
	if err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}

	if got := balanceOf(t, from.ID); got != 300 {
		t.Errorf("Expected from balance 300, got %d", got)
	}
	if got := balanceOf(t, to.ID); got != 200 {
		t.Errorf("Expected to balance 200, got %d", got)
	}

	var entry models.TransferLog
	if err := db.DB.First(&entry).Error; err != nil {
		t.Fatalf("Transfer log missing: %v", err)
	}
	if entry.FromUserID != from.ID || entry.ToUserID != to.ID || entry.Amount != 200 {
		t.Errorf("Transfer log wrong: %+v", entry)
	}
}

func TestTransferInsufficientBalance(t *testing.T) {
	setupTest(t)
	from := createTestUser(t, 100)
	to := createTestUser(t, 0)

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return Transfer(tx, from.ID, to.ID, 200, "测试转账")
	})
	if !errors.Is(err, ErrTransferFailed) {
		t.Fatalf("Expected ErrTransferFailed, got %v", err)
	}

	// 双方余额都不能变
	if got := balanceOf(t, from.ID); got != 100 {
		t.Errorf("Expected from balance 100, got %d", got)
	}
	if got := balanceOf(t, to.ID); got != 0 {
		t.Errorf("Expected to balance 0, got %d", got)
	}

	var logs int64
	db.DB.Model(&models.TransferLog{}).Count(&logs)
	if logs != 0 {
		t.Errorf("Expected no transfer logs, got %d", logs)
	}
}

func TestTransferRejectsNonPositiveAmount(t *testing.T) {
	setupTest(t)
	from := createTestUser(t, 100)
	to := createTestUser(t, 0)

	for _, amount := range []int64{0, -50} {
		err := db.DB.Transaction(func(tx *gorm.DB) error {
			return Transfer(tx, from.ID, to.ID, amount, "测试转账")
		})
		if !errors.Is(err, ErrTransferFailed) {
			t.Errorf("amount %d: expected ErrTransferFailed, got %v", amount, err)
		}
	}
}

func TestDeposit(t *testing.T) {
	setupTest(t)
	user := createTestUser(t, 0)

	if err := Deposit(user.ID, 1000, ActionDeposit); err != nil {
		t.Fatalf("Deposit failed: %v", err)
	}

	balance, err := GetBalance(user.ID)
	if err != nil {
		t.Fatalf("GetBalance failed: %v", err)
	}
	if balance != 1000 {
		t.Errorf("Expected balance 1000, got %d", balance)
	}

	logs, err := TransferLogsOf(user.ID, 10)
	if err != nil {
		t.Fatalf("TransferLogsOf failed: %v", err)
	}
	if len(logs) != 1 || logs[0].Action != ActionDeposit {
		t.Errorf("Deposit log wrong: %+v", logs)
	}
}
