package handlers

import (
	"net/http"

	"dotgo/internal/db"
	"dotgo/internal/models"
	"dotgo/internal/services"
	"dotgo/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile 用户公开主页：基本信息 + 发布的项目
func (h *UserHandler) Profile(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "用户不存在"})
		return
	}

	projects, err := services.ProjectsByOwner(user.ID)
	if err != nil {
		JSONError(c, err)
		return
	}
	fillReviewCounts(projects)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"avatar":     user.Avatar,
			"bio":        user.Bio,
			"created_at": user.CreatedAt,
		},
		"projects": projects,
	})
}
