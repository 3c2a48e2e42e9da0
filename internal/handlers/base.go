package handlers

import (
	"errors"
	"net/http"

	"dotgo/internal/middleware"
	"dotgo/internal/models"
	"dotgo/internal/services"

	"github.com/gin-gonic/gin"
)

// CurrentUser 从上下文取出已登录用户（AuthRequired 之后可安全调用）
func CurrentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.CheckUserKey).(*models.User)
}

// statusOf 把服务层错误映射为 HTTP 状态码
func statusOf(err error) int {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidRating):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotUnlocked),
		errors.Is(err, services.ErrCannotReviewOwnProject):
		return http.StatusForbidden
	case errors.Is(err, services.ErrAlreadyUnlocked):
		return http.StatusConflict
	case errors.Is(err, services.ErrInsufficientPayment),
		errors.Is(err, services.ErrTransferFailed):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// JSONError 统一错误响应
func JSONError(c *gin.Context, err error) {
	c.JSON(statusOf(err), gin.H{"error": err.Error()})
}
