package main

import (
	"log"
	"os"

	"dotgo/internal/db"
	"dotgo/internal/middleware"
	"dotgo/internal/router"
	"dotgo/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// 启动时一次性校验定价配置（分成之和必须等于解锁价格）
	cfg := services.GetMarketConfig()
	log.Printf("Market config: unlock_price=%d student_share=%d platform_share=%d",
		cfg.UnlockPrice, cfg.StudentShare, cfg.PlatformShare)

	// 初始化异步排名服务
	services.GetRankingService().StartScheduledScoreUpdate()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("dotgo_session", store))

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("DotGo server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
