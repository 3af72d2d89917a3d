package config

import (
	"fmt"
	"log"
	"os"

	"github.com/chrono-board/api-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BuildDSN assembles the Postgres connection string from the environment.
// DATABASE_URL wins when set; the realtime listener reuses the same DSN.
func BuildDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	dbHost := os.Getenv("DB_HOST")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbPort := os.Getenv("DB_PORT")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort)
}

func InitDB() *gorm.DB {
	db, err := gorm.Open(postgres.Open(BuildDSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto Migrate models
	db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Project{},
		&models.ProjectMembership{},
		&models.Document{},
		&models.Event{},
		&models.ActionItem{},
		&models.ActivityLog{},
		&models.ChatSession{},
		&models.ChatMessage{},
		&models.RagContext{},
	)

	return db
}
