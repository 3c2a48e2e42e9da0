package router

import (
	"dotgo/internal/handlers"
	"dotgo/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	projectHandler := handlers.NewProjectHandler()
	unlockHandler := handlers.NewUnlockHandler()
	reviewHandler := handlers.NewReviewHandler()
	walletHandler := handlers.NewWalletHandler()
	userHandler := handlers.NewUserHandler()
	notificationHandler := handlers.NewNotificationHandler()

	api := r.Group("/api")

	// 公共路由 (Public Routes)
	api.POST("/signup", authHandler.Signup)              // 注册
	api.POST("/login", authHandler.Login)                // 登录
	api.GET("/logout", authHandler.Logout)               // 退出登录
	api.GET("/projects", projectHandler.List)            // 项目列表（按热度）
	api.GET("/projects/:id", projectHandler.Detail)      // 项目详情
	api.GET("/projects/:id/reviews", reviewHandler.List) // 项目评阅列表
	api.GET("/users/:id", userHandler.Profile)           // 用户主页
	api.GET("/market/price", unlockHandler.Price)        // 解锁价格

	// 受保护路由 (Protected Routes)
	authorized := api.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/me", authHandler.Me)                          // 当前用户
		authorized.GET("/me/projects", projectHandler.Mine)            // 我发布的项目
		authorized.POST("/projects", projectHandler.Create)            // 发布项目
		authorized.POST("/projects/:id/unlock", unlockHandler.Unlock)  // 付费解锁
		authorized.GET("/projects/:id/unlocked", unlockHandler.Status) // 解锁状态
		authorized.POST("/projects/:id/reviews", reviewHandler.Create) // 提交评阅

		authorized.GET("/wallet", walletHandler.Balance)          // 钱包余额
		authorized.POST("/wallet/deposit", walletHandler.Deposit) // 充值
		authorized.GET("/wallet/logs", walletHandler.Logs)        // 转账明细

		authorized.GET("/notifications", notificationHandler.List)              // 我的通知
		authorized.POST("/notifications/:id/read", notificationHandler.Read)    // 标记已读
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll) // 全部已读
	}
}
