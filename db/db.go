package db

import (
	"fmt"
	"strings"

	"github.com/lumawallet/buyflow/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewDB(uri string, logDBQueries bool) (*gorm.DB, error) {
	// Sqlite needs a busy timeout so concurrent writes queue instead of
	// failing immediately.
	if !strings.Contains(uri, "_busy_timeout") {
		sep := "?"
		if strings.Contains(uri, "?") {
			sep = "&"
		}
		uri = uri + sep + "_busy_timeout=5000"
	}

	gormConfig := &gorm.Config{
		TranslateError: true,
	}
	if logDBQueries {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	gormDB, err := gorm.Open(sqlite.Open(uri), gormConfig)
	if err != nil {
		return nil, err
	}
	if err := gormDB.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	if err := Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return gormDB, nil
}

func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&UserConfig{},
		&BuyStateSnapshot{},
		&OrderEvent{},
	)
}

func Stop(gormDB *gorm.DB) {
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to get sql db from gorm db")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to close database")
	}
}
