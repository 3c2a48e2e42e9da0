package models

import (
	"time"
)

// Unlock 记录某个用户解锁了某个项目。
// (project_id, user_id) 上的联合唯一索引保证同一对至多解锁一次；
// 记录只增不改，解锁状态一旦写入不可撤销。
type Unlock struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProjectID  uint      `gorm:"not null;uniqueIndex:idx_project_reviewer" json:"project_id"`
	Project    Project   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"project"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_project_reviewer" json:"user_id"` // 解锁者（评阅人）
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	AmountPaid int64     `gorm:"not null" json:"amount_paid"` // 实际扣除的金额
	CreatedAt  time.Time `json:"created_at"`
}
