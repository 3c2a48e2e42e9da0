package handlers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"dotgo/internal/db"
	"dotgo/internal/models"
	"dotgo/internal/services"
	"dotgo/internal/utils"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct{}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{}
}

// fillReviewCounts 批量填充项目的评阅数量
func fillReviewCounts(projects []models.Project) {
	if len(projects) == 0 {
		return
	}

	projectIDs := make([]uint, len(projects))
	for i, p := range projects {
		projectIDs[i] = p.ID
	}

	// 批量查询评阅数量
	type CountResult struct {
		ProjectID uint
		Count     int
	}
	var results []CountResult
	db.DB.Model(&models.Review{}).
		Select("project_id, COUNT(*) as count").
		Where("project_id IN ?", projectIDs).
		Group("project_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.ProjectID] = r.Count
	}

	for i := range projects {
		projects[i].ReviewCount = countMap[projects[i].ID]
	}
}

type createProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	GithubURL   string   `json:"github_url"`
	DemoURL     string   `json:"demo_url"`
	Skills      []string `json:"skills"`
}

// Create 发布新项目
func (h *ProjectHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "标题不能为空"})
		return
	}

	project, err := services.CreateProject(user, req.Title, req.Description, req.GithubURL, req.DemoURL, req.Skills)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// List 浏览项目列表，按热度排序
func (h *ProjectHandler) List(c *gin.Context) {
	// 分页参数
	page := 1
	if p := c.Query("page"); p != "" {
		if pageNum := utils.StringToInt(p); pageNum > 0 {
			page = pageNum
		}
	}

	cacheKey := fmt.Sprintf("project:list:page:%d", page)
	if cachedData := utils.GetCache().Get(cacheKey); cachedData != nil {
		if hData, ok := cachedData.(gin.H); ok {
			c.JSON(http.StatusOK, hData)
			return
		}
	}

	perPage := 30
	offset := (page - 1) * perPage

	var total int64
	db.DB.Model(&models.Project{}).Count(&total)

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	var projects []models.Project
	db.DB.Preload("User").
		Order("score DESC, created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&projects)

	fillReviewCounts(projects)

	responseData := gin.H{
		"projects":     projects,
		"total":        total,
		"current_page": page,
		"total_pages":  totalPages,
	}

	// 写入缓存，有效期 1 分钟
	utils.GetCache().Set(cacheKey, responseData, 1*time.Minute)

	c.JSON(http.StatusOK, responseData)
}

// Detail 项目详情，带渲染后的描述和全部评阅
func (h *ProjectHandler) Detail(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	project, err := services.GetProject(id)
	if err != nil {
		JSONError(c, err)
		return
	}

	reviews, err := services.ReviewsOf(id)
	if err != nil {
		JSONError(c, err)
		return
	}
	project.ReviewCount = len(reviews)

	c.JSON(http.StatusOK, gin.H{
		"project":          project,
		"description_html": utils.RenderMarkdown(project.Description),
		"reviews":          reviews,
	})
}

// Mine 当前用户发布的全部项目
func (h *ProjectHandler) Mine(c *gin.Context) {
	user := CurrentUser(c)

	projects, err := services.ProjectsByOwner(user.ID)
	if err != nil {
		JSONError(c, err)
		return
	}
	fillReviewCounts(projects)

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}
