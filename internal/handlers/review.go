package handlers

import (
	"net/http"

	"dotgo/internal/services"
	"dotgo/internal/utils"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct{}

func NewReviewHandler() *ReviewHandler {
	return &ReviewHandler{}
}

type reviewRequest struct {
	// 评分范围校验交给服务层，统一走 ErrInvalidRating
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Create 提交评阅（需要先解锁该项目）
func (h *ReviewHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	projectID := utils.StringToUint(c.Param("id"))

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式不正确"})
		return
	}

	if err := services.SubmitReview(projectID, user, req.Rating, req.Comment); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"submitted": true})
}

// List 项目的全部评阅
func (h *ReviewHandler) List(c *gin.Context) {
	projectID := utils.StringToUint(c.Param("id"))

	// 项目不存在时返回 404 而不是空列表
	if _, err := services.GetProject(projectID); err != nil {
		JSONError(c, err)
		return
	}

	reviews, err := services.ReviewsOf(projectID)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
