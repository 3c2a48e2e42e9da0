package services

import (
	"errors"

	"dotgo/internal/db"
	"dotgo/internal/models"

	"gorm.io/gorm"
)

// SubmitReview 提交评阅。前置条件：已解锁该项目、评分在 1-5 之间。
//
// 平均分不做增量维护，每次都在该项目的全量评阅序列上整除重算，
// 避免历史精度损失累积；写库前夹紧到 [0, 255] 存储区间。
// 追加评阅和平均分更新在同一个事务里完成。
func SubmitReview(projectID uint, reviewer *models.User, rating int, comment string) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var unlocked int64
		if err := tx.Model(&models.Unlock{}).
			Where("project_id = ? AND user_id = ?", projectID, reviewer.ID).
			Count(&unlocked).Error; err != nil {
			return err
		}
		if unlocked == 0 {
			return ErrNotUnlocked
		}

		if rating < 1 || rating > 5 {
			return ErrInvalidRating
		}

		// 解锁过的项目理应存在，这里只是兜底
		var project models.Project
		if err := tx.First(&project, projectID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProjectNotFound
			}
			return err
		}

		review := models.Review{
			ProjectID: projectID,
			UserID:    reviewer.ID,
			Rating:    rating,
			Comment:   comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		// 全量重算平均分
		type ratingAgg struct {
			Total int64
			Num   int64
		}
		var agg ratingAgg
		if err := tx.Model(&models.Review{}).
			Select("COALESCE(SUM(rating), 0) as total, COUNT(*) as num").
			Where("project_id = ?", projectID).
			Scan(&agg).Error; err != nil {
			return err
		}

		avg := 0
		if agg.Num > 0 {
			avg = int(agg.Total / agg.Num) // 整除即向下取整
		}
		if avg < 0 {
			avg = 0
		}
		if avg > 255 {
			avg = 255
		}

		return tx.Model(&models.Project{}).
			Where("id = ?", projectID).
			UpdateColumn("avg_rating", avg).
			Error
	})
	if err != nil {
		return err
	}

	// 提交后异步：事件记录 + 通知作者 + 热度分更新
	EmitReviewSubmittedAsync(projectID, reviewer.ID, rating)
	GetRankingService().ScheduleUpdate(projectID)

	return nil
}
