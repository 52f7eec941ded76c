package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"

	"github.com/lumawallet/buyflow/db"
	"github.com/lumawallet/buyflow/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type config struct {
	Env        *AppConfig
	db         *gorm.DB
	cache      map[string]string
	cacheMutex sync.Mutex
}

func NewConfig(env *AppConfig, db *gorm.DB) (*config, error) {
	cfg := &config{
		db:    db,
		cache: map[string]string{},
	}
	if err := cfg.init(env); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *config) init(env *AppConfig) error {
	cfg.Env = env

	// Env-provided currency seeds the stored value without clobbering a
	// choice the user already made in a previous session.
	if cfg.Env.FiatCurrency != "" {
		if err := cfg.SetIgnore("Currency", cfg.Env.FiatCurrency); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *config) Get(key string) (string, error) {
	cfg.cacheMutex.Lock()
	defer cfg.cacheMutex.Unlock()

	if cachedValue, ok := cfg.cache[key]; ok {
		logger.Logger.Debug().Str("key", key).Msg("hit config cache")
		return cachedValue, nil
	}
	logger.Logger.Debug().Str("key", key).Msg("missed config cache")

	value, err := cfg.get(key, cfg.db)
	if err != nil {
		return "", err
	}

	cfg.cache[key] = value
	return value, nil
}

func (cfg *config) get(key string, gormDB *gorm.DB) (string, error) {
	var userConfig db.UserConfig
	err := gormDB.Where(&db.UserConfig{Key: key}).Limit(1).Find(&userConfig).Error
	if err != nil {
		return "", fmt.Errorf("failed to get configuration value: %w", err)
	}
	return userConfig.Value, nil
}

func (cfg *config) set(key string, value string, clauses clause.OnConflict) error {
	userConfig := db.UserConfig{Key: key, Value: value}
	result := cfg.db.Clauses(clauses).Create(&userConfig)
	if result.Error != nil {
		return fmt.Errorf("failed to save key to config: %v", result.Error)
	}

	cfg.cacheMutex.Lock()
	defer cfg.cacheMutex.Unlock()
	delete(cfg.cache, key)

	return nil
}

func (cfg *config) SetIgnore(key string, value string) error {
	clauses := clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}
	err := cfg.set(key, value, clauses)
	if err != nil {
		logger.Logger.Error().Err(err).Str("key", key).Msg("Failed to set config key with ignore")
		return err
	}
	return nil
}

func (cfg *config) SetUpdate(key string, value string) error {
	clauses := clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}
	err := cfg.set(key, value, clauses)
	if err != nil {
		logger.Logger.Error().Err(err).Str("key", key).Msg("Failed to set config key with update")
		return err
	}
	return nil
}

func (cfg *config) GetEnv() *AppConfig {
	return cfg.Env
}

const defaultCurrency = "USD"

func (cfg *config) GetCurrency() string {
	currency, err := cfg.Get("Currency")
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to fetch currency")
		return defaultCurrency
	}
	if currency == "" {
		return defaultCurrency
	}
	return currency
}

func (cfg *config) SetCurrency(value string) error {
	if value == "" {
		return errors.New("currency value cannot be empty")
	}
	err := cfg.SetUpdate("Currency", value)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update currency")
		return err
	}
	return nil
}

func (cfg *config) GetPreferredPaymentMethodID() string {
	id, err := cfg.Get("PreferredPaymentMethodID")
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to fetch preferred payment method")
		return ""
	}
	return id
}

func (cfg *config) SetPreferredPaymentMethodID(value string) error {
	// Empty clears the preference.
	err := cfg.SetUpdate("PreferredPaymentMethodID", value)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to update preferred payment method")
		return err
	}
	return nil
}

func (cfg *config) GetDefaultWorkDir() string {
	if cfg.Env.Workdir != "" {
		return cfg.Env.Workdir
	}
	return filepath.Join(xdg.DataHome, "buyflow")
}
