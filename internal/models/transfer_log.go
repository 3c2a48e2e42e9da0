package models

import (
	"time"
)

// TransferLog 钱包转账明细，每一笔余额变动都留痕。
type TransferLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FromUserID uint      `gorm:"not null;index" json:"from_user_id"`
	FromUser   User      `gorm:"foreignKey:FromUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"from_user"`
	ToUserID   uint      `gorm:"not null;index" json:"to_user_id"`
	ToUser     User      `gorm:"foreignKey:ToUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"to_user"`
	Amount     int64     `gorm:"not null" json:"amount"`
	Action     string    `gorm:"size:100;not null" json:"action"` // 动作描述
	CreatedAt  time.Time `json:"created_at"`
}
