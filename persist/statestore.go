// Package persist stores the buy flow snapshot in the app database so a
// purchase survives process restarts.
package persist

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumawallet/buyflow/buy"
	"github.com/lumawallet/buyflow/db"
)

const stateKey = "buy_state"

type GormStateStore struct {
	db *gorm.DB
}

func NewGormStateStore(gormDB *gorm.DB) *GormStateStore {
	return &GormStateStore{db: gormDB}
}

// Load returns the stored snapshot, or nil when none exists. Session-only
// fields come back as zero values; the snapshot is decoded over a fresh
// default state so fields added since the snapshot was written keep their
// defaults.
func (s *GormStateStore) Load() (*buy.State, error) {
	var snapshot db.BuyStateSnapshot
	// Find instead of First: a missing row is the normal cold-start case,
	// not worth a "record not found" log.
	result := s.db.Where("key = ?", stateKey).Find(&snapshot)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to read buy state: %w", result.Error)
	}
	if result.RowsAffected == 0 || len(snapshot.Value) == 0 {
		return nil, nil
	}

	state := buy.NewState()
	if err := json.Unmarshal(snapshot.Value, &state); err != nil {
		return nil, fmt.Errorf("failed to decode buy state: %w", err)
	}
	return &state, nil
}

func (s *GormStateStore) Save(state buy.State) error {
	value, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode buy state: %w", err)
	}

	snapshot := db.BuyStateSnapshot{
		Key:   stateKey,
		Value: value,
	}
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&snapshot)
	if result.Error != nil {
		return fmt.Errorf("failed to write buy state: %w", result.Error)
	}
	return nil
}

func (s *GormStateStore) Clear() error {
	result := s.db.Where("key = ?", stateKey).Delete(&db.BuyStateSnapshot{})
	if result.Error != nil {
		return fmt.Errorf("failed to clear buy state: %w", result.Error)
	}
	return nil
}
