package db

import (
	"time"
)

type UserConfig struct {
	ID        uint
	Key       string `gorm:"unique;not null"`
	Value     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BuyStateSnapshot is the single-row KV table holding the serialized buy
// flow state between sessions.
type BuyStateSnapshot struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

func (BuyStateSnapshot) TableName() string {
	return "buy_state_snapshots"
}

// OrderEvent is an append-only record of observed order lifecycle
// transitions, kept for support and debugging.
type OrderEvent struct {
	ID          uint
	OrderID     string `gorm:"index"`
	OrderState  string
	Asset       string
	Currency    string
	AmountMinor int64
	Error       string
	CreatedAt   time.Time
}
