package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB connects GORM to the configured database and applies pending
// migrations. DB_DRIVER selects mysql (default) or sqlite; sqlite keeps the
// whole store in a single local file, which is handy for small deployments
// and demos.
func InitDB() {
	var err error

	driver := strings.ToLower(os.Getenv("DB_DRIVER"))
	if driver == "" {
		driver = "mysql"
	}

	// Configure GORM logging
	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	debugSQL := strings.ToLower(os.Getenv("DEBUG_SQL"))

	// In production, suppress SQL logs unless explicitly re-enabled via
	// DEBUG_SQL=true. Switch the level back to logger.Info to print SQL
	// statements again.
	logLevel := logger.Info
	if environment == "production" && debugSQL != "true" {
		logLevel = logger.Warn
	}

	gormConfig := &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
	}

	switch driver {
	case "sqlite":
		dbPath := os.Getenv("DB_PATH")
		if dbPath == "" {
			dbPath = "scheduler.db"
		}
		DB, err = gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), gormConfig)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			os.Getenv("DB_USERNAME"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			os.Getenv("DB_DATABASE"),
		)
		DB, err = gorm.Open(mysql.Open(dsn), gormConfig)
	default:
		log.Fatalf("Unknown DB_DRIVER %q (want mysql or sqlite)", driver)
	}

	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := RunMigrations(driver); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Database connected successfully")
}
