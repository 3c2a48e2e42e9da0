package services

import (
	"encoding/json"
	"fmt"
	"log"

	"dotgo/internal/db"
	"dotgo/internal/models"

	"gorm.io/gorm"
)

// 事件落库是尽力而为：在状态提交之后异步追加，
// 供外部索引器消费，失败只记日志，绝不影响主流程。

// emitEvent 写入一条结构化事件记录
func emitEvent(gdb *gorm.DB, eventType models.EventType, projectID, actorID uint, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event := models.EventLog{
		Type:      eventType,
		ProjectID: projectID,
		ActorID:   actorID,
		Payload:   string(data),
	}
	return gdb.Create(&event).Error
}

// notifyOwner 给项目作者发一条站内通知
func notifyOwner(gdb *gorm.DB, projectID, actorID uint, notifType models.NotificationType, reason string) error {
	var project models.Project
	if err := gdb.First(&project, projectID).Error; err != nil {
		return err
	}
	notification := models.Notification{
		UserID:    project.UserID,
		ActorID:   &actorID,
		ProjectID: &projectID,
		Type:      notifType,
		Reason:    reason,
	}
	return gdb.Create(&notification).Error
}

// EmitProjectCreatedAsync 发出项目创建事件（在 goroutine 中落库）
func EmitProjectCreatedAsync(projectID, ownerID uint, title string) {
	gdb := db.DB
	go func() {
		payload := map[string]interface{}{
			"project_id": projectID,
			"student":    ownerID,
			"title":      title,
		}
		if err := emitEvent(gdb, models.EventProjectCreated, projectID, ownerID, payload); err != nil {
			log.Printf("发出项目创建事件失败: %v", err)
		}
	}()
}

// EmitProjectUnlockedAsync 发出项目解锁事件并通知作者
func EmitProjectUnlockedAsync(projectID, reviewerID uint, amountPaid int64) {
	gdb := db.DB
	go func() {
		payload := map[string]interface{}{
			"project_id":  projectID,
			"reviewer":    reviewerID,
			"amount_paid": amountPaid,
		}
		if err := emitEvent(gdb, models.EventProjectUnlocked, projectID, reviewerID, payload); err != nil {
			log.Printf("发出项目解锁事件失败: %v", err)
		}

		reason := fmt.Sprintf("解锁了你的项目，支付 %d 积分", amountPaid)
		if err := notifyOwner(gdb, projectID, reviewerID, models.NotificationTypeUnlocked, reason); err != nil {
			log.Printf("发送解锁通知失败: %v", err)
		}
	}()
}

// EmitReviewSubmittedAsync 发出评阅提交事件并通知作者
func EmitReviewSubmittedAsync(projectID, reviewerID uint, rating int) {
	gdb := db.DB
	go func() {
		payload := map[string]interface{}{
			"project_id": projectID,
			"reviewer":   reviewerID,
			"rating":     rating,
		}
		if err := emitEvent(gdb, models.EventReviewSubmitted, projectID, reviewerID, payload); err != nil {
			log.Printf("发出评阅事件失败: %v", err)
		}

		reason := fmt.Sprintf("评阅了你的项目，评分 %d 星", rating)
		if err := notifyOwner(gdb, projectID, reviewerID, models.NotificationTypeReviewed, reason); err != nil {
			log.Printf("发送评阅通知失败: %v", err)
		}
	}()
}
