package models

import (
	"time"
)

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"` // 项目作者（学生）
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	GithubURL   string    `json:"github_url"`
	DemoURL     string    `json:"demo_url"`
	Skills      []string  `gorm:"serializer:json" json:"skills"`
	UnlockCount int       `gorm:"default:0" json:"unlock_count"` // 解锁人数
	AvgRating   int       `gorm:"default:0" json:"avg_rating"`   // 平均评分，0 表示暂无评价
	Score       int       `gorm:"default:0" json:"score"`        // 热度分，用于浏览排序
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 非数据库字段，用于查询时填充
	ReviewCount int `gorm:"-" json:"review_count"`
}
