package services

import (
	"errors"

	"dotgo/internal/db"
	"dotgo/internal/models"

	"gorm.io/gorm"
)

// UnlockPrice 当前解锁价格，只读
func UnlockPrice() int64 {
	return GetMarketConfig().UnlockPrice
}

// UnlockProject 付费解锁项目，获得评阅资格。
//
// 校验按固定顺序短路：项目存在 → 非本人项目 → 未解锁过 → 出价足额，
// 任何一步失败都在发生状态变更之前返回。通过后在同一个数据库事务里
// 完成拆分转账（作者分成 + 平台分成）、写入解锁标记、累加解锁计数，
// 任何一笔转账失败则整体回滚，外部永远看不到半笔支付。
//
// offered 是调用方愿意支付的金额，只用于足额校验；实际只扣固定价格，
// 高出的部分从不离开评阅人钱包（等价于退还差额）。
func UnlockProject(projectID uint, reviewer *models.User, offered int64) error {
	cfg := GetMarketConfig()

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}

		if project.UserID == reviewer.ID {
			return ErrCannotReviewOwnProject
		}

		var existing models.Unlock
		err := tx.Where("project_id = ? AND user_id = ?", projectID, reviewer.ID).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyUnlocked
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if offered < cfg.UnlockPrice {
			return ErrInsufficientPayment
		}

		// 拆分转账
		toTreasury, err := treasuryID(tx)
		if err != nil {
			return err
		}
		if err := Transfer(tx, reviewer.ID, project.UserID, cfg.StudentShare, ActionStudentShare); err != nil {
			return err
		}
		if err := Transfer(tx, reviewer.ID, toTreasury, cfg.PlatformShare, ActionPlatformShare); err != nil {
			return err
		}

		// 两笔转账确认后才写解锁标记、涨计数
		unlock := models.Unlock{
			ProjectID:  projectID,
			UserID:     reviewer.ID,
			AmountPaid: cfg.UnlockPrice,
		}
		if err := tx.Create(&unlock).Error; err != nil {
			return err
		}
		return tx.Model(&models.Project{}).
			Where("id = ?", projectID).
			UpdateColumn("unlock_count", gorm.Expr("unlock_count + ?", 1)).
			Error
	})
	if err != nil {
		return err
	}

	// 提交后异步：事件记录 + 通知作者 + 热度分更新
	EmitProjectUnlockedAsync(projectID, reviewer.ID, cfg.UnlockPrice)
	GetRankingService().ScheduleUpdate(projectID)

	return nil
}
