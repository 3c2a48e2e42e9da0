package handlers

import (
	"net/http"

	"dotgo/internal/services"
	"dotgo/internal/utils"

	"github.com/gin-gonic/gin"
)

type UnlockHandler struct{}

func NewUnlockHandler() *UnlockHandler {
	return &UnlockHandler{}
}

type unlockRequest struct {
	// 愿意支付的金额，必须不低于解锁价格；实际只扣固定价格。
	// 金额不足的校验交给服务层，统一走 ErrInsufficientPayment
	Amount int64 `json:"amount"`
}

// Unlock 付费解锁项目
func (h *UnlockHandler) Unlock(c *gin.Context) {
	user := CurrentUser(c)
	projectID := utils.StringToUint(c.Param("id"))

	var req unlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式不正确"})
		return
	}

	if err := services.UnlockProject(projectID, user, req.Amount); err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"unlocked":    true,
		"amount_paid": services.UnlockPrice(),
	})
}

// Status 查询当前用户是否已解锁某项目
func (h *UnlockHandler) Status(c *gin.Context) {
	user := CurrentUser(c)
	projectID := utils.StringToUint(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"unlocked": services.IsUnlocked(projectID, user.ID),
	})
}

// Price 当前解锁价格
func (h *UnlockHandler) Price(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"unlock_price": services.UnlockPrice(),
	})
}
