package services

import (
	"errors"

	"dotgo/internal/db"
	"dotgo/internal/models"

	"gorm.io/gorm"
)

// 转账动作常量
const (
	ActionStudentShare  = "解锁项目·作者分成"
	ActionPlatformShare = "解锁项目·平台分成"
	ActionDeposit       = "钱包充值"
)

// Transfer 在调用方事务内执行一笔转账并记录明细。
// 扣款是条件更新：余额不足时影响行数为 0，返回 ErrTransferFailed，
// 由外层事务整体回滚，不会留下半笔转账。
func Transfer(tx *gorm.DB, fromID, toID uint, amount int64, action string) error {
	if amount <= 0 {
		return ErrTransferFailed
	}

	// 1. 条件扣款
	res := tx.Model(&models.User{}).
		Where("id = ? AND balance >= ?", fromID, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTransferFailed
	}

	// 2. 入账
	if err := tx.Model(&models.User{}).
		Where("id = ?", toID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount)).
		Error; err != nil {
		return err
	}

	// 3. 转账明细
	entry := models.TransferLog{
		FromUserID: fromID,
		ToUserID:   toID,
		Amount:     amount,
		Action:     action,
	}
	return tx.Create(&entry).Error
}

// Deposit 给用户钱包充值（演示入口，正式环境对接支付渠道后替换）
func Deposit(userID uint, amount int64, action string) error {
	if amount <= 0 {
		return ErrTransferFailed
	}
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("balance", gorm.Expr("balance + ?", amount)).
			Error; err != nil {
			return err
		}
		entry := models.TransferLog{
			FromUserID: userID,
			ToUserID:   userID,
			Amount:     amount,
			Action:     action,
		}
		return tx.Create(&entry).Error
	})
}

// GetBalance 查询用户当前余额
func GetBalance(userID uint) (int64, error) {
	var user models.User
	if err := db.DB.Select("balance").First(&user, userID).Error; err != nil {
		return 0, err
	}
	return user.Balance, nil
}

// treasuryID 查询平台金库账户 ID
func treasuryID(tx *gorm.DB) (uint, error) {
	var treasury models.User
	if err := tx.Where("role = ?", models.RoleTreasury).First(&treasury).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTransferFailed
		}
		return 0, err
	}
	return treasury.ID, nil
}

// TransferLogsOf 查询用户最近的转账明细（收支都算）
func TransferLogsOf(userID uint, limit int) ([]models.TransferLog, error) {
	var logs []models.TransferLog
	err := db.DB.Preload("FromUser").Preload("ToUser").
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
