package models

import (
	"time"
)

// 用户角色
const (
	RoleUser     = "user"
	RoleTreasury = "treasury" // 平台金库账户，收取解锁分成
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // Hash
	Avatar    string    `gorm:"default:🎓" json:"avatar"`
	Bio       string    `gorm:"size:200" json:"bio"`
	Balance   int64     `gorm:"default:0" json:"balance"`                    // 钱包余额（积分制代币）
	Role      string    `gorm:"size:20;default:'user';not null" json:"role"` // user, treasury
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// No DeletedAt for hard delete
}
