// Package custodial defines the boundary to the custodial backend that
// owns the authoritative order records. The wallet app supplies the
// concrete client; this package only fixes the operations and models the
// buy engine consumes.
package custodial

import (
	"context"
)

// CreateOrderParams are the inputs for creating a (possibly pending)
// buy order.
type CreateOrderParams struct {
	Asset           string
	Amount          Money
	PaymentMethodID string
	PaymentType     PaymentMethodType
	// Pending creates the order in PENDING_CONFIRMATION instead of
	// executing it immediately.
	Pending bool
}

// ConfirmAttributes are partner attributes sent along with an order
// confirmation (card activator attributes or an open-banking approval
// callback URL).
type ConfirmAttributes struct {
	EverypayCallback string `json:"everypayCallback,omitempty"`
	ApprovalCallback string `json:"approvalCallback,omitempty"`
}

// OrderGateway is the set of backend operations the buy engine depends
// on. All calls are blocking and honor ctx cancellation.
type OrderGateway interface {
	CreateOrder(ctx context.Context, params CreateOrderParams) (*Order, error)
	CancelOrder(ctx context.Context, orderID string) error
	ConfirmOrder(ctx context.Context, orderID string, paymentMethodID string, attributes *ConfirmAttributes) (*Order, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	GetOutstandingOrders(ctx context.Context) ([]Order, error)
	GetQuote(ctx context.Context, asset string, amount Money) (*Quote, error)

	LinkBank(ctx context.Context, currency string) (*BankTransfer, error)
	GetLinkedBank(ctx context.Context, bankID string) (*LinkedBank, error)

	GetKycTiers(ctx context.Context) (*KycTiers, error)
	IsEligibleForBuy(ctx context.Context) (bool, error)

	GetCard(ctx context.Context, cardID string) (*Card, error)
	GetEligiblePaymentMethods(ctx context.Context, currency string) ([]PaymentMethod, error)
	GetSupportedFiatCurrencies(ctx context.Context) ([]string, error)
	GetWithdrawalLockSeconds(ctx context.Context, paymentType PaymentMethodType) (int64, error)
}
