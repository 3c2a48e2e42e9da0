package db

import (
	"log"
	"os"

	"dotgo/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=dotgo port=5432 sslmode=disable TimeZone=Asia/Shanghai"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed platform treasury account
	seedTreasury()
}

func migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Unlock{},
		&models.Review{},
		&models.TransferLog{},
		&models.Notification{},
		&models.EventLog{},
	)
}

// seedTreasury 确保平台金库账户存在，解锁分成打入该账户
func seedTreasury() {
	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleTreasury).Count(&count)
	if count > 0 {
		log.Println("Treasury account already seeded, skipping")
		return
	}

	treasury := models.User{
		Username: "platform",
		Email:    "treasury@dotgo.local",
		Password: "!", // 金库账户不可登录
		Avatar:   "🏦",
		Role:     models.RoleTreasury,
	}
	if err := DB.Create(&treasury).Error; err != nil {
		log.Fatalf("Failed to create treasury account: %v", err)
	}
	log.Println("Treasury account created successfully")
}
