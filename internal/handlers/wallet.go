package handlers

import (
	"net/http"

	"dotgo/internal/services"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct{}

func NewWalletHandler() *WalletHandler {
	return &WalletHandler{}
}

// Balance 查询当前用户余额
func (h *WalletHandler) Balance(c *gin.Context) {
	user := CurrentUser(c)

	balance, err := services.GetBalance(user.ID)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

type depositRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

// Deposit 充值（演示入口）
func (h *WalletHandler) Deposit(c *gin.Context) {
	user := CurrentUser(c)

	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "金额必须为正数"})
		return
	}

	if err := services.Deposit(user.ID, req.Amount, services.ActionDeposit); err != nil {
		JSONError(c, err)
		return
	}

	balance, _ := services.GetBalance(user.ID)
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// Logs 转账明细
func (h *WalletHandler) Logs(c *gin.Context) {
	user := CurrentUser(c)

	logs, err := services.TransferLogsOf(user.ID, 50)
	if err != nil {
		JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
