package services

import (
	"errors"

	"dotgo/internal/db"
	"dotgo/internal/models"

	"gorm.io/gorm"
)

// CreateProject 发布新项目。解锁计数与平均分从零开始，
// ID 由主键序列分配：严格递增、用过不再复用。
func CreateProject(owner *models.User, title, description, githubURL, demoURL string, skills []string) (*models.Project, error) {
	project := models.Project{
		UserID:      owner.ID,
		Title:       title,
		Description: description,
		GithubURL:   githubURL,
		DemoURL:     demoURL,
		Skills:      skills,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		return nil, err
	}

	// 异步发出创建事件
	EmitProjectCreatedAsync(project.ID, owner.ID, title)

	return &project, nil
}

// GetProject 按 ID 查询项目
func GetProject(id uint) (*models.Project, error) {
	var project models.Project
	if err := db.DB.Preload("User").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// ProjectsByOwner 查询某个作者发布的全部项目，没有则返回空切片
func ProjectsByOwner(ownerID uint) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := db.DB.Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&projects).Error
	return projects, err
}

// ReviewsOf 查询项目的全部评阅，按提交时间排序
func ReviewsOf(projectID uint) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	err := db.DB.Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at ASC, id ASC").
		Find(&reviews).Error
	return reviews, err
}

// IsUnlocked 查询某用户是否已解锁某项目，只读无副作用
func IsUnlocked(projectID, userID uint) bool {
	var count int64
	db.DB.Model(&models.Unlock{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count)
	return count > 0
}
