package custodial

import (
	"time"
)

// OrderState is the lifecycle state of a buy order as reported by the
// backend. States form a strict total order used when merging a locally
// persisted order with the remote copy; the comparison goes through Rank
// rather than declaration order so reordering constants cannot silently
// change merge results.
type OrderState string

const (
	OrderStateUninitialised       OrderState = "UNINITIALISED"
	OrderStateInitialised         OrderState = "INITIALISED"
	OrderStatePendingConfirmation OrderState = "PENDING_CONFIRMATION"
	OrderStatePendingExecution    OrderState = "PENDING_EXECUTION"
	OrderStateAwaitingFunds       OrderState = "AWAITING_FUNDS"
	OrderStateFinished            OrderState = "FINISHED"
	OrderStateCanceled            OrderState = "CANCELED"
	OrderStateFailed              OrderState = "FAILED"
	OrderStateUnknown             OrderState = "UNKNOWN"
)

const terminalRank = 5

var orderStateRanks = map[OrderState]int{
	OrderStateUninitialised:       0,
	OrderStateInitialised:         1,
	OrderStatePendingConfirmation: 2,
	OrderStatePendingExecution:    3,
	OrderStateAwaitingFunds:       4,
	OrderStateFinished:            terminalRank,
	OrderStateCanceled:            terminalRank,
	OrderStateFailed:              terminalRank,
	OrderStateUnknown:             terminalRank,
}

// Rank returns the position of the state in the lifecycle total order.
// Unrecognized states rank as terminal so they are never tracked.
func (s OrderState) Rank() int {
	rank, found := orderStateRanks[s]
	if !found {
		return terminalRank
	}
	return rank
}

func (s OrderState) Before(other OrderState) bool {
	return s.Rank() < other.Rank()
}

// IsTerminal reports whether the order is no longer actively tracked.
func (s OrderState) IsTerminal() bool {
	return s.Rank() >= terminalRank
}

// Money is a fiat amount in minor units (cents) of the given currency.
type Money struct {
	Currency string `json:"currency"`
	Minor    int64  `json:"minor"`
}

func (m Money) IsZero() bool {
	return m.Minor == 0
}

// IsOpenBanking reports whether payments in this currency are authorised
// via the open-banking approval flow rather than card capture.
func (m Money) IsOpenBanking() bool {
	return m.Currency == "EUR" || m.Currency == "GBP"
}

type PaymentMethodType string

const (
	PaymentMethodTypeCard    PaymentMethodType = "PAYMENT_CARD"
	PaymentMethodTypeBank    PaymentMethodType = "BANK_TRANSFER"
	PaymentMethodTypeFunds   PaymentMethodType = "FUNDS"
	PaymentMethodTypeUnknown PaymentMethodType = "UNKNOWN"
)

// Sentinel payment method ids for methods the user has not yet defined
// (a card not yet added, a bank not yet linked). A method carrying one of
// these ids cannot be charged; it only signals that the method kind is
// available to be set up.
const (
	UndefinedCardPaymentID  = "UNDEFINED_CARD_PAYMENT_ID"
	UndefinedBankTransferID = "UNDEFINED_BANK_TRANSFER_PAYMENT_ID"
	FundsPaymentID          = "FUNDS_PAYMENT_ID"
)

// PaymentMethod is one entry of the payment-method catalogue supplied by
// the backend for a fiat currency.
type PaymentMethod struct {
	ID         string            `json:"id"`
	Type       PaymentMethodType `json:"type"`
	Label      string            `json:"label"`
	Partner    string            `json:"partner,omitempty"`
	IsEligible bool              `json:"isEligible"`
}

// IsUndefined reports whether the method is a placeholder for a card or
// bank the user still has to add.
func (p PaymentMethod) IsUndefined() bool {
	return p.ID == UndefinedCardPaymentID || p.ID == UndefinedBankTransferID
}

// CanBeUsedForPaying reports whether the method can back an order as-is.
func (p PaymentMethod) CanBeUsedForPaying() bool {
	switch p.Type {
	case PaymentMethodTypeCard, PaymentMethodTypeBank:
		return !p.IsUndefined()
	case PaymentMethodTypeFunds:
		return p.ID == FundsPaymentID
	default:
		return false
	}
}

// EverypayAttributes carries the card partner's 3DS handoff details on an
// order awaiting card capture.
type EverypayAttributes struct {
	PaymentLink  string `json:"paymentLink"`
	PaymentState string `json:"paymentState"`
}

const EverypayWaiting3DS = "WAITING_FOR_3DS_RESPONSE"

// OrderAttributes are partner-specific payment attributes attached to an
// order by the backend once payment processing has started.
type OrderAttributes struct {
	Everypay         *EverypayAttributes `json:"everypay,omitempty"`
	AuthorisationURL string              `json:"authorisationUrl,omitempty"`
}

// ApprovalErrorStatus is the open-banking approval failure sub-code on an
// order that ended in a failed state.
type ApprovalErrorStatus string

const (
	ApprovalErrorNone     ApprovalErrorStatus = ""
	ApprovalErrorFailed   ApprovalErrorStatus = "FAILED"
	ApprovalErrorRejected ApprovalErrorStatus = "REJECTED"
	ApprovalErrorDeclined ApprovalErrorStatus = "DECLINED"
	ApprovalErrorExpired  ApprovalErrorStatus = "EXPIRED"
	ApprovalErrorUnknown  ApprovalErrorStatus = "UNKNOWN"
)

// Order is the authoritative server-side record of a buy order.
type Order struct {
	ID                  string              `json:"id"`
	State               OrderState          `json:"state"`
	Asset               string              `json:"asset"`
	Fiat                Money               `json:"fiat"`
	Fee                 *Money              `json:"fee,omitempty"`
	Price               *Money              `json:"price,omitempty"`
	OrderValue          string              `json:"orderValue,omitempty"`
	PaymentMethodID     string              `json:"paymentMethodId"`
	PaymentMethodType   PaymentMethodType   `json:"paymentMethodType"`
	ExpiresAt           time.Time           `json:"expiresAt"`
	Attributes          *OrderAttributes    `json:"attributes,omitempty"`
	ApprovalErrorStatus ApprovalErrorStatus `json:"approvalErrorStatus,omitempty"`
}

// HasDefinedCardPayment reports whether the order is backed by a concrete
// (already added) card.
func (o Order) HasDefinedCardPayment() bool {
	return o.PaymentMethodType == PaymentMethodTypeCard &&
		o.PaymentMethodID != UndefinedCardPaymentID
}

// HasDefinedBankPayment reports whether the order is backed by a concrete
// linked bank.
func (o Order) HasDefinedBankPayment() bool {
	return o.PaymentMethodType == PaymentMethodTypeBank &&
		o.PaymentMethodID != UndefinedBankTransferID
}

// Quote is an exchange quote for a prospective order.
type Quote struct {
	Rate      Money     `json:"rate"`
	Fee       *Money    `json:"fee,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// BankTransfer describes a bank-linking process started with a partner.
type BankTransfer struct {
	ID       string `json:"id"`
	Partner  string `json:"partner"`
	Currency string `json:"currency"`
}

const (
	BankPartnerYodlee = "YODLEE"
	BankPartnerYapily = "YAPILY"
)

type LinkedBankState string

const (
	LinkedBankStateCreated LinkedBankState = "CREATED"
	LinkedBankStatePending LinkedBankState = "PENDING"
	LinkedBankStateActive  LinkedBankState = "ACTIVE"
	LinkedBankStateBlocked LinkedBankState = "BLOCKED"
	LinkedBankStateUnknown LinkedBankState = "UNKNOWN"
)

// IsLinkingPending reports whether the linking process is still running
// on the partner side.
func (s LinkedBankState) IsLinkingPending() bool {
	return s == LinkedBankStateCreated || s == LinkedBankStatePending
}

// IsLinkingFinished reports whether linking reached a final outcome.
func (s LinkedBankState) IsLinkingFinished() bool {
	return s == LinkedBankStateActive || s == LinkedBankStateBlocked
}

// LinkedBankError is the failure sub-code on a blocked linked bank.
type LinkedBankError string

const (
	LinkedBankErrorNone               LinkedBankError = ""
	LinkedBankErrorAlreadyLinked      LinkedBankError = "ACCOUNT_ALREADY_LINKED"
	LinkedBankErrorUnsupportedAccount LinkedBankError = "ACCOUNT_TYPE_UNSUPPORTED"
	LinkedBankErrorNamesMismatched    LinkedBankError = "NAMES_MISMATCHED"
	LinkedBankErrorRejected           LinkedBankError = "REJECTED"
	LinkedBankErrorExpired            LinkedBankError = "EXPIRED"
	LinkedBankErrorFailure            LinkedBankError = "FAILURE"
	LinkedBankErrorInvalid            LinkedBankError = "INVALID"
	LinkedBankErrorUnknown            LinkedBankError = "UNKNOWN"
)

// LinkedBank is the backend's view of a (possibly still linking) bank.
type LinkedBank struct {
	ID               string          `json:"id"`
	Currency         string          `json:"currency"`
	Partner          string          `json:"partner"`
	AccountName      string          `json:"accountName"`
	State            LinkedBankState `json:"state"`
	Error            LinkedBankError `json:"error,omitempty"`
	AuthorisationURL string          `json:"authorisationUrl,omitempty"`
}

type CardState string

const (
	CardStateCreated CardState = "CREATED"
	CardStatePending CardState = "PENDING"
	CardStateActive  CardState = "ACTIVE"
	CardStateBlocked CardState = "BLOCKED"
	CardStateExpired CardState = "EXPIRED"
)

// IsFinal reports whether card activation reached a terminal outcome.
func (s CardState) IsFinal() bool {
	return s == CardStateActive || s == CardStateBlocked || s == CardStateExpired
}

// Card is a payment card registered with the card partner.
type Card struct {
	ID      string    `json:"id"`
	Partner string    `json:"partner"`
	Label   string    `json:"label"`
	State   CardState `json:"state"`
}

// TierState is the verification state of a single KYC tier.
type TierState string

const (
	TierStateNone        TierState = "NONE"
	TierStatePending     TierState = "PENDING"
	TierStateUnderReview TierState = "UNDER_REVIEW"
	TierStateRejected    TierState = "REJECTED"
	TierStateVerified    TierState = "VERIFIED"
)

// KycTiers is the user's identity verification status across tiers.
type KycTiers struct {
	Silver TierState `json:"silver"`
	Gold   TierState `json:"gold"`
}

func (k KycTiers) IsVerifiedGold() bool {
	return k.Gold == TierStateVerified
}

func (k KycTiers) IsRejectedForAny() bool {
	return k.Silver == TierStateRejected || k.Gold == TierStateRejected
}

func (k KycTiers) IsInReviewForAny() bool {
	return k.Silver == TierStateUnderReview || k.Gold == TierStateUnderReview
}
