package http

import (
	"time"

	"github.com/lumawallet/buyflow/buy"
	"github.com/lumawallet/buyflow/custodial"
)

// stateResponse is the API projection of a buy state snapshot. The
// storage layout strips session-only fields; clients need them to pick
// error remediation copy and to select from the payment-method
// catalogue, so the two projections are separate types.
type stateResponse struct {
	ID                        string                     `json:"id,omitempty"`
	FiatCurrency              string                     `json:"fiatCurrency"`
	Amount                    *custodial.Money           `json:"amount,omitempty"`
	SelectedAsset             string                     `json:"selectedAsset,omitempty"`
	OrderState                custodial.OrderState       `json:"orderState"`
	ExpiresAt                 *time.Time                 `json:"expiresAt,omitempty"`
	Quote                     *custodial.Quote           `json:"quote,omitempty"`
	KycState                  buy.KycState               `json:"kycState,omitempty"`
	SelectedPaymentMethod     *buy.SelectedPaymentMethod `json:"selectedPaymentMethod,omitempty"`
	OrderPrice                *custodial.Money           `json:"orderPrice,omitempty"`
	OrderValue                string                     `json:"orderValue,omitempty"`
	Fee                       *custodial.Money           `json:"fee,omitempty"`
	SupportedFiatCurrencies   []string                   `json:"supportedFiatCurrencies,omitempty"`
	WithdrawalLockSeconds     int64                      `json:"withdrawalLockSeconds,omitempty"`
	PaymentSucceeded          bool                       `json:"paymentSucceeded,omitempty"`
	ShowRating                bool                       `json:"showRating,omitempty"`
	KycStartedButNotCompleted bool                       `json:"kycStartedButNotCompleted,omitempty"`

	PaymentOptions              buy.PaymentOptions       `json:"paymentOptions"`
	Error                       buy.ErrorKind            `json:"error,omitempty"`
	IsLoading                   bool                     `json:"isLoading"`
	ExchangePrice               *custodial.Money         `json:"exchangePrice,omitempty"`
	EverypayAuth                *buy.EverypayAuthOptions `json:"everypayAuth,omitempty"`
	AuthorisePaymentURL         string                   `json:"authorisePaymentUrl,omitempty"`
	LinkedBank                  *custodial.LinkedBank    `json:"linkedBank,omitempty"`
	LinkBankTransfer            *custodial.BankTransfer  `json:"linkBankTransfer,omitempty"`
	PaymentPending              bool                     `json:"paymentPending,omitempty"`
	ConfirmationActionRequested bool                     `json:"confirmationActionRequested,omitempty"`
	NewPaymentMethodToBeAdded   *custodial.PaymentMethod `json:"newPaymentMethodToBeAdded,omitempty"`
	ShouldShowUnlockHigherFunds bool                     `json:"shouldShowUnlockHigherFunds,omitempty"`
}

func newStateResponse(state buy.State) stateResponse {
	return stateResponse{
		ID:                        state.ID,
		FiatCurrency:              state.FiatCurrency,
		Amount:                    state.Amount,
		SelectedAsset:             state.SelectedAsset,
		OrderState:                state.OrderState,
		ExpiresAt:                 state.ExpiresAt,
		Quote:                     state.Quote,
		KycState:                  state.KycState,
		SelectedPaymentMethod:     state.SelectedPaymentMethod,
		OrderPrice:                state.OrderPrice,
		OrderValue:                state.OrderValue,
		Fee:                       state.Fee,
		SupportedFiatCurrencies:   state.SupportedFiatCurrencies,
		WithdrawalLockSeconds:     state.WithdrawalLockSeconds,
		PaymentSucceeded:          state.PaymentSucceeded,
		ShowRating:                state.ShowRating,
		KycStartedButNotCompleted: state.KycStartedButNotCompleted,

		PaymentOptions:              state.PaymentOptions,
		Error:                       state.Error,
		IsLoading:                   state.IsLoading,
		ExchangePrice:               state.ExchangePrice,
		EverypayAuth:                state.EverypayAuth,
		AuthorisePaymentURL:         state.AuthorisePaymentURL,
		LinkedBank:                  state.LinkedBank,
		LinkBankTransfer:            state.LinkBankTransfer,
		PaymentPending:              state.PaymentPending,
		ConfirmationActionRequested: state.ConfirmationActionRequested,
		NewPaymentMethodToBeAdded:   state.NewPaymentMethodToBeAdded,
		ShouldShowUnlockHigherFunds: state.ShouldShowUnlockHigherFunds,
	}
}
