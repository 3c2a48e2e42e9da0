package models

import (
	"time"
)

type EventType string

const (
	EventProjectCreated  EventType = "project_created"
	EventProjectUnlocked EventType = "project_unlocked"
	EventReviewSubmitted EventType = "review_submitted"
)

// EventLog 结构化事件日志，状态变更提交后追加写入，
// 供外部索引器消费，引擎自身从不读回。
type EventLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      EventType `gorm:"type:varchar(30);not null;index" json:"type"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	ActorID   uint      `gorm:"not null" json:"actor_id"`
	Payload   string    `gorm:"type:text" json:"payload"` // JSON
	CreatedAt time.Time `json:"created_at"`
}
