package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"orderdesk/src/model"
)

// MainDB is the primary database connection used by the application.
// Demo data only: candles for the chart. Trades and positions are never
// persisted here.
var MainDB *gorm.DB

// InitMainDB initializes the main database connection and runs migrations.
// This should be called once at application startup (e.g. in main()).
func InitMainDB() error {
	config := GetConfig()

	db, err := gorm.Open(sqlite.Open(config.SQLitePath),
		&gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.LogLevel(config.GormLogLevel)),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database at %s: %w", config.SQLitePath, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB from GORM: %w", err)
	}
	sqlDB.SetMaxOpenConns(1) // sqlite writer
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	if err := db.AutoMigrate(&model.Candle{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	MainDB = db
	logrus.WithField("path", config.SQLitePath).Info("Database connection initialized")
	return nil
}
