// Package buy implements the fiat purchase order lifecycle engine: a
// pure intent reducer over an immutable state snapshot, a processor that
// serializes reductions and runs side effects, and a reconciler that
// keeps the locally persisted order consistent with the backend record.
package buy

import (
	"time"

	"github.com/lumawallet/buyflow/custodial"
)

// KycState is the user's identity verification status as the buy flow
// sees it. The empty string means the status has not been checked yet.
type KycState string

const (
	KycStateNone KycState = ""
	// KycStatePending also covers backend query errors: KYC polling is
	// best-effort and a failed check reads as "still pending".
	KycStatePending                KycState = "PENDING"
	KycStateFailed                 KycState = "FAILED"
	KycStateInReview               KycState = "IN_REVIEW"
	KycStateUndecided              KycState = "UNDECIDED"
	KycStateVerifiedAndEligible    KycState = "VERIFIED_AND_ELIGIBLE"
	KycStateVerifiedButNotEligible KycState = "VERIFIED_BUT_NOT_ELIGIBLE"
)

func (k KycState) Verified() bool {
	return k == KycStateVerifiedAndEligible || k == KycStateVerifiedButNotEligible
}

// ErrorKind is a recoverable failure surfaced on the state. The empty
// string means no error. While an error is set the flow is frozen except
// for intents that clear or report errors.
type ErrorKind string

const (
	ErrorNone ErrorKind = ""

	ErrorGeneric              ErrorKind = "GENERIC_ERROR"
	ErrorDailyLimitExceeded   ErrorKind = "DAILY_LIMIT_EXCEEDED"
	ErrorWeeklyLimitExceeded  ErrorKind = "WEEKLY_LIMIT_EXCEEDED"
	ErrorYearlyLimitExceeded  ErrorKind = "YEARLY_LIMIT_EXCEEDED"
	ErrorExistingPendingOrder ErrorKind = "EXISTING_PENDING_ORDER"
	ErrorCurrencyNotSupported ErrorKind = "CURRENCY_NOT_SUPPORTED"

	ErrorBankLinkingFailed            ErrorKind = "BANK_LINKING_FAILED"
	ErrorBankLinkingTimeout           ErrorKind = "BANK_LINKING_TIMEOUT"
	ErrorLinkedBankAlreadyLinked      ErrorKind = "LINKED_BANK_ALREADY_LINKED"
	ErrorLinkedBankAccountUnsupported ErrorKind = "LINKED_BANK_ACCOUNT_UNSUPPORTED"
	ErrorLinkedBankNamesMismatched    ErrorKind = "LINKED_BANK_NAMES_MISMATCHED"
	ErrorLinkedBankNotSupported       ErrorKind = "LINKED_BANK_NOT_SUPPORTED"
	ErrorLinkedBankRejected           ErrorKind = "LINKED_BANK_REJECTED"
	ErrorLinkedBankExpired            ErrorKind = "LINKED_BANK_EXPIRED"
	ErrorLinkedBankFailure            ErrorKind = "LINKED_BANK_FAILURE"
	ErrorLinkedBankInvalid            ErrorKind = "LINKED_BANK_INVALID"

	ErrorApprovedBankFailed   ErrorKind = "APPROVED_BANK_FAILED"
	ErrorApprovedBankRejected ErrorKind = "APPROVED_BANK_REJECTED"
	ErrorApprovedBankDeclined ErrorKind = "APPROVED_BANK_DECLINED"
	ErrorApprovedBankExpired  ErrorKind = "APPROVED_BANK_EXPIRED"
	ErrorApprovedGeneric      ErrorKind = "APPROVED_GENERIC_ERROR"
)

// SelectedPaymentMethod is a reference into the payment-method catalogue,
// not an owning copy of it.
type SelectedPaymentMethod struct {
	ID         string                      `json:"id"`
	Partner    string                      `json:"partner,omitempty"`
	Label      string                      `json:"label,omitempty"`
	Type       custodial.PaymentMethodType `json:"type"`
	IsEligible bool                        `json:"isEligible"`
}

func (m SelectedPaymentMethod) IsCard() bool {
	return m.Type == custodial.PaymentMethodTypeCard
}

func (m SelectedPaymentMethod) IsBank() bool {
	return m.Type == custodial.PaymentMethodTypeBank
}

func (m SelectedPaymentMethod) IsFunds() bool {
	return m.Type == custodial.PaymentMethodTypeFunds
}

// ConcreteID returns the method id when it refers to an actual card or
// linked bank, empty otherwise (undefined placeholders, funds).
func (m SelectedPaymentMethod) ConcreteID() string {
	if m.IsCard() && m.ID != custodial.UndefinedCardPaymentID {
		return m.ID
	}
	if m.IsBank() && m.ID != custodial.UndefinedBankTransferID {
		return m.ID
	}
	return ""
}

// PaymentOptions is the currently known payment-method catalogue plus
// which method kinds the user could still add.
type PaymentOptions struct {
	Available    []custodial.PaymentMethod `json:"available"`
	CanAddCard   bool                      `json:"canAddCard"`
	CanLinkFunds bool                      `json:"canLinkFunds"`
	CanLinkBank  bool                      `json:"canLinkBank"`
}

// EverypayAuthOptions is the 3-D-Secure browser handoff for a card
// payment in progress.
type EverypayAuthOptions struct {
	PaymentLink string `json:"paymentLink"`
	ExitLink    string `json:"exitLink"`
}

// State is the buy flow snapshot. It is serialized as JSON when handed
// to the state store, so every session-only field is tagged `json:"-"`
// and resets to its zero value on each load from storage.
type State struct {
	ID                        string                 `json:"id,omitempty"`
	FiatCurrency              string                 `json:"fiatCurrency"`
	Amount                    *custodial.Money       `json:"amount,omitempty"`
	SelectedAsset             string                 `json:"selectedAsset,omitempty"`
	OrderState                custodial.OrderState   `json:"orderState"`
	ExpiresAt                 *time.Time             `json:"expiresAt,omitempty"`
	Quote                     *custodial.Quote       `json:"quote,omitempty"`
	KycState                  KycState               `json:"kycState,omitempty"`
	SelectedPaymentMethod     *SelectedPaymentMethod `json:"selectedPaymentMethod,omitempty"`
	OrderPrice                *custodial.Money       `json:"orderPrice,omitempty"`
	OrderValue                string                 `json:"orderValue,omitempty"`
	Fee                       *custodial.Money       `json:"fee,omitempty"`
	SupportedFiatCurrencies   []string               `json:"supportedFiatCurrencies,omitempty"`
	WithdrawalLockSeconds     int64                  `json:"withdrawalLockSeconds,omitempty"`
	PaymentSucceeded          bool                   `json:"paymentSucceeded,omitempty"`
	ShowRating                bool                   `json:"showRating,omitempty"`
	KycStartedButNotCompleted bool                   `json:"kycStartedButNotCompleted,omitempty"`

	// Session-only fields, never persisted.
	PaymentOptions              PaymentOptions           `json:"-"`
	Error                       ErrorKind                `json:"-"`
	IsLoading                   bool                     `json:"-"`
	ExchangePrice               *custodial.Money         `json:"-"`
	EverypayAuth                *EverypayAuthOptions     `json:"-"`
	AuthorisePaymentURL         string                   `json:"-"`
	LinkedBank                  *custodial.LinkedBank    `json:"-"`
	LinkBankTransfer            *custodial.BankTransfer  `json:"-"`
	PaymentPending              bool                     `json:"-"`
	ConfirmationActionRequested bool                     `json:"-"`
	NewPaymentMethodToBeAdded   *custodial.PaymentMethod `json:"-"`
	ShouldShowUnlockHigherFunds bool                     `json:"-"`
}

// NewState returns the default state a fresh session starts from.
func NewState() State {
	return State{
		FiatCurrency: "USD",
		OrderState:   custodial.OrderStateUninitialised,
	}
}

// SelectedPaymentMethodDetails resolves the selected method reference
// against the available catalogue, nil when it is not present there.
func (s State) SelectedPaymentMethodDetails() *custodial.PaymentMethod {
	if s.SelectedPaymentMethod == nil {
		return nil
	}
	for i := range s.PaymentOptions.Available {
		if s.PaymentOptions.Available[i].ID == s.SelectedPaymentMethod.ID {
			return &s.PaymentOptions.Available[i]
		}
	}
	return nil
}

// ShouldLaunchExternalFlow reports whether an open-banking approval has
// to be completed in an external browser before the order can proceed.
func (s State) ShouldLaunchExternalFlow() bool {
	return s.AuthorisePaymentURL != "" && s.LinkedBank != nil && s.ID != ""
}
