package persist

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/lumawallet/buyflow/buy"
	"github.com/lumawallet/buyflow/db"
)

// OrderEventLog appends order lifecycle transitions to the database for
// support and debugging.
type OrderEventLog struct {
	db *gorm.DB
}

func NewOrderEventLog(gormDB *gorm.DB) *OrderEventLog {
	return &OrderEventLog{db: gormDB}
}

func (l *OrderEventLog) Record(state buy.State) error {
	event := db.OrderEvent{
		OrderID:    state.ID,
		OrderState: string(state.OrderState),
		Asset:      state.SelectedAsset,
		Currency:   state.FiatCurrency,
		Error:      string(state.Error),
	}
	if state.Amount != nil {
		event.AmountMinor = state.Amount.Minor
	}
	if err := l.db.Create(&event).Error; err != nil {
		return fmt.Errorf("failed to record order event: %w", err)
	}
	return nil
}
