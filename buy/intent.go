package buy

import (
	"github.com/lumawallet/buyflow/custodial"
	"github.com/lumawallet/buyflow/utils"
)

// Intent is an immutable description of a requested state transition.
// Reduce must be total, synchronous, free of side effects and idempotent:
// applying the same intent to the same state twice yields the same state.
// An intent whose IsValidFor check fails is dropped without reduction or
// side effect.
type Intent interface {
	Reduce(oldState State) State
	IsValidFor(oldState State) bool
}

// baseIntent supplies the default behavior: no state change, and
// rejection while an error is set (a flow with an active error is frozen
// until the error is explicitly cleared or replaced).
type baseIntent struct{}

func (baseIntent) Reduce(oldState State) State { return oldState }

func (baseIntent) IsValidFor(oldState State) bool { return oldState.Error == ErrorNone }

// unconditionalIntent is the base for intents that must get through even
// while an error is active (error reporting, cancellation).
type unconditionalIntent struct{}

func (unconditionalIntent) Reduce(oldState State) State { return oldState }

func (unconditionalIntent) IsValidFor(State) bool { return true }

// NewAssetSelected switches the purchase to a different asset. Amount
// and live exchange price reset; currency and payment-method selection
// are preserved.
type NewAssetSelected struct {
	baseIntent
	Asset string
}

func (i NewAssetSelected) Reduce(oldState State) State {
	if oldState.SelectedAsset == i.Asset {
		return oldState
	}
	oldState.SelectedAsset = i.Asset
	oldState.Amount = nil
	oldState.ExchangePrice = nil
	return oldState
}

// AmountUpdated sets the fiat amount the user wants to spend.
type AmountUpdated struct {
	baseIntent
	Amount custodial.Money
}

func (i AmountUpdated) Reduce(oldState State) State {
	amount := i.Amount
	oldState.Amount = &amount
	return oldState
}

// FiatCurrencyUpdated switches the purchase currency and resets the
// amount entered for the previous one.
type FiatCurrencyUpdated struct {
	baseIntent
	Currency string
}

func (i FiatCurrencyUpdated) Reduce(oldState State) State {
	oldState.FiatCurrency = i.Currency
	oldState.Amount = nil
	return oldState
}

// FetchQuote requests a fresh quote for the selected asset and amount.
type FetchQuote struct{ baseIntent }

// QuoteUpdated carries the quote the backend returned.
type QuoteUpdated struct {
	baseIntent
	Quote custodial.Quote
}

func (i QuoteUpdated) Reduce(oldState State) State {
	quote := i.Quote
	oldState.Quote = &quote
	return oldState
}

// ExchangePriceUpdated carries the live exchange price for the selected
// asset.
type ExchangePriceUpdated struct {
	baseIntent
	Price custodial.Money
}

func (i ExchangePriceUpdated) Reduce(oldState State) State {
	price := i.Price
	oldState.ExchangePrice = &price
	return oldState
}

// OrderPriceUpdated carries the exchange price locked into the order.
type OrderPriceUpdated struct {
	baseIntent
	Price *custodial.Money
}

func (i OrderPriceUpdated) Reduce(oldState State) State {
	oldState.OrderPrice = i.Price
	oldState.IsLoading = false
	return oldState
}

// FetchPaymentMethods requests the payment-method catalogue for a
// currency. PreselectedID, when set, names the method to select once the
// catalogue arrives.
type FetchPaymentMethods struct {
	baseIntent
	Currency      string
	PreselectedID string
}

func (i FetchPaymentMethods) Reduce(oldState State) State {
	oldState.PaymentOptions = PaymentOptions{}
	oldState.SelectedPaymentMethod = nil
	return oldState
}

// PaymentMethodsUpdated replaces the available payment-method catalogue
// and re-derives the selected method: an explicitly requested id wins,
// then the previously selected id if still present, then the first
// eligible usable method. Unknown ids fall back silently.
type PaymentMethodsUpdated struct {
	baseIntent
	Available     []custodial.PaymentMethod
	CanAddCard    bool
	CanLinkFunds  bool
	CanLinkBank   bool
	PreselectedID string
}

func (i PaymentMethodsUpdated) Reduce(oldState State) State {
	selectedID := i.selectedMethodID(oldState)

	oldState.IsLoading = false
	oldState.SelectedPaymentMethod = nil
	for _, method := range i.Available {
		if method.ID == selectedID {
			oldState.SelectedPaymentMethod = &SelectedPaymentMethod{
				ID:         method.ID,
				Partner:    method.Partner,
				Label:      method.Label,
				Type:       method.Type,
				IsEligible: method.IsEligible,
			}
			break
		}
	}
	oldState.PaymentOptions = PaymentOptions{
		Available:    i.Available,
		CanAddCard:   i.CanAddCard,
		CanLinkFunds: i.CanLinkFunds,
		CanLinkBank:  i.CanLinkBank,
	}
	return oldState
}

func (i PaymentMethodsUpdated) selectedMethodID(oldState State) string {
	contains := func(id string) bool {
		for _, method := range i.Available {
			if method.ID == id {
				return true
			}
		}
		return false
	}

	if i.PreselectedID != "" && contains(i.PreselectedID) {
		return i.PreselectedID
	}
	if oldState.SelectedPaymentMethod != nil && contains(oldState.SelectedPaymentMethod.ID) {
		return oldState.SelectedPaymentMethod.ID
	}
	// Undefined funds never get preselected: choosing them must go
	// through an explicit user action first.
	candidates := utils.Filter(i.Available, func(method custodial.PaymentMethod) bool {
		return method.Type != custodial.PaymentMethodTypeFunds || method.ID == custodial.FundsPaymentID
	})
	if method := utils.Find(candidates, func(method custodial.PaymentMethod) bool {
		return method.IsEligible && method.CanBeUsedForPaying()
	}); method != nil {
		return method.ID
	}
	if method := utils.Find(candidates, func(method custodial.PaymentMethod) bool {
		return method.IsEligible
	}); method != nil {
		return method.ID
	}
	if len(candidates) > 0 {
		return candidates[0].ID
	}
	return ""
}

// PaymentMethodChangeRequested is the user picking a method from the
// chooser. The processor decides whether this selects the method or
// starts the add-new-method flow.
type PaymentMethodChangeRequested struct {
	baseIntent
	Method custodial.PaymentMethod
}

// SelectedPaymentMethodUpdate directly selects a method from the
// catalogue.
type SelectedPaymentMethodUpdate struct {
	baseIntent
	Method custodial.PaymentMethod
}

func (i SelectedPaymentMethodUpdate) Reduce(oldState State) State {
	oldState.SelectedPaymentMethod = &SelectedPaymentMethod{
		ID:         i.Method.ID,
		Partner:    i.Method.Partner,
		Label:      i.Method.Label,
		Type:       i.Method.Type,
		IsEligible: i.Method.IsEligible,
	}
	return oldState
}

// UpdateSelectedPaymentCard selects a concrete card, typically after
// card activation finished.
type UpdateSelectedPaymentCard struct {
	baseIntent
	ID         string
	Label      string
	Partner    string
	IsEligible bool
}

func (i UpdateSelectedPaymentCard) Reduce(oldState State) State {
	oldState.SelectedPaymentMethod = &SelectedPaymentMethod{
		ID:         i.ID,
		Partner:    i.Partner,
		Label:      i.Label,
		Type:       custodial.PaymentMethodTypeCard,
		IsEligible: i.IsEligible,
	}
	return oldState
}

// PollCardStatusRequested starts watching a card until activation
// reaches a final state.
type PollCardStatusRequested struct {
	baseIntent
	CardID string
}

func (i PollCardStatusRequested) Reduce(oldState State) State {
	oldState.IsLoading = true
	return oldState
}

// AddNewPaymentMethodRequested flags that the user has to go through the
// add-card / link-bank flow for the chosen method kind.
type AddNewPaymentMethodRequested struct {
	baseIntent
	Method custodial.PaymentMethod
}

func (i AddNewPaymentMethodRequested) Reduce(oldState State) State {
	method := i.Method
	oldState.NewPaymentMethodToBeAdded = &method
	return oldState
}

// AddNewPaymentMethodHandled clears the add-new-method flag once the
// presentation layer has acted on it.
type AddNewPaymentMethodHandled struct{ baseIntent }

func (i AddNewPaymentMethodHandled) Reduce(oldState State) State {
	oldState.NewPaymentMethodToBeAdded = nil
	return oldState
}

// BuyButtonClicked moves the order to INITIALISED and requests the
// confirmation step.
type BuyButtonClicked struct{ baseIntent }

func (i BuyButtonClicked) Reduce(oldState State) State {
	oldState.ConfirmationActionRequested = true
	oldState.OrderState = custodial.OrderStateInitialised
	return oldState
}

// FetchKycState starts the bounded KYC status poll. The state reads as
// pending while the poll runs.
type FetchKycState struct{ baseIntent }

func (i FetchKycState) Reduce(oldState State) State {
	oldState.KycState = KycStatePending
	return oldState
}

// KycStateUpdated carries a resolved KYC status.
type KycStateUpdated struct {
	baseIntent
	State KycState
}

func (i KycStateUpdated) Reduce(oldState State) State {
	oldState.KycState = i.State
	return oldState
}

// KycStarted records that the user entered the verification flow.
type KycStarted struct{ baseIntent }

func (i KycStarted) Reduce(oldState State) State {
	oldState.KycStartedButNotCompleted = true
	oldState.KycState = KycStateNone
	return oldState
}

// KycCompleted records that the user finished the verification flow.
type KycCompleted struct{ baseIntent }

func (i KycCompleted) Reduce(oldState State) State {
	oldState.KycStartedButNotCompleted = false
	return oldState
}

// LinkBankTransferRequested starts linking a new bank for the current
// currency.
type LinkBankTransferRequested struct{ baseIntent }

func (i LinkBankTransferRequested) Reduce(oldState State) State {
	oldState.NewPaymentMethodToBeAdded = nil
	return oldState
}

// TryToLinkABankTransfer checks bank-transfer eligibility before
// starting the linking flow.
type TryToLinkABankTransfer struct{ baseIntent }

func (i TryToLinkABankTransfer) Reduce(oldState State) State {
	oldState.IsLoading = true
	return oldState
}

// BankLinkProcessStarted carries the partner handle for a bank-linking
// process the backend has opened.
type BankLinkProcessStarted struct {
	baseIntent
	Transfer custodial.BankTransfer
}

func (i BankLinkProcessStarted) Reduce(oldState State) State {
	transfer := i.Transfer
	oldState.LinkBankTransfer = &transfer
	oldState.ConfirmationActionRequested = false
	oldState.NewPaymentMethodToBeAdded = nil
	oldState.IsLoading = false
	return oldState
}

// ResetLinkBankTransfer drops the in-progress linking handle.
type ResetLinkBankTransfer struct{ baseIntent }

func (i ResetLinkBankTransfer) Reduce(oldState State) State {
	oldState.LinkBankTransfer = nil
	oldState.NewPaymentMethodToBeAdded = nil
	return oldState
}

// StartPollingLinkedBank starts the bounded poll of a bank-linking
// process.
type StartPollingLinkedBank struct {
	baseIntent
	BankID string
}

func (i StartPollingLinkedBank) Reduce(oldState State) State {
	oldState.IsLoading = true
	return oldState
}

// LinkedBankStateSuccess records a successfully linked bank and selects
// it as the payment method.
type LinkedBankStateSuccess struct {
	baseIntent
	Bank custodial.LinkedBank
}

func (i LinkedBankStateSuccess) Reduce(oldState State) State {
	bank := i.Bank
	oldState.LinkedBank = &bank
	oldState.SelectedPaymentMethod = &SelectedPaymentMethod{
		ID:         bank.ID,
		Label:      bank.AccountName,
		Type:       custodial.PaymentMethodTypeBank,
		IsEligible: true,
	}
	oldState.IsLoading = false
	return oldState
}

// AuthorisePaymentExternalURL hands an open-banking approval URL plus
// the bank it belongs to over to the presentation layer.
type AuthorisePaymentExternalURL struct {
	baseIntent
	URL  string
	Bank custodial.LinkedBank
}

func (i AuthorisePaymentExternalURL) Reduce(oldState State) State {
	bank := i.Bank
	oldState.AuthorisePaymentURL = i.URL
	oldState.LinkedBank = &bank
	return oldState
}

// CancelOrder cancels the tracked order on the backend. Valid even with
// an active error so a stuck flow can always be abandoned.
type CancelOrder struct {
	unconditionalIntent
}

// CancelOrderAndResetAuthorisation cancels the order and additionally
// drops a pending open-banking approval handoff.
type CancelOrderAndResetAuthorisation struct {
	unconditionalIntent
}

func (i CancelOrderAndResetAuthorisation) Reduce(oldState State) State {
	oldState.AuthorisePaymentURL = ""
	oldState.LinkedBank = nil
	return oldState
}

// OrderCanceled resets the flow after a confirmed cancellation. Only a
// confirmed cancel reduces state; a failed cancel call surfaces as an
// error instead.
type OrderCanceled struct{ baseIntent }

func (i OrderCanceled) Reduce(State) State {
	state := NewState()
	state.OrderState = custodial.OrderStateCanceled
	return state
}

// CancelOrderIfAnyAndCreatePendingOne replaces whatever order is
// currently tracked with a fresh pending order for the current
// selection. A failed cancel of the previous order is ignored and
// creation proceeds regardless; see DESIGN.md.
type CancelOrderIfAnyAndCreatePendingOne struct {
	baseIntent
}

func (i CancelOrderIfAnyAndCreatePendingOne) Reduce(oldState State) State {
	oldState.IsLoading = true
	return oldState
}

func (i CancelOrderIfAnyAndCreatePendingOne) IsValidFor(oldState State) bool {
	return oldState.SelectedAsset != "" &&
		oldState.Amount != nil &&
		oldState.OrderState != custodial.OrderStateAwaitingFunds &&
		oldState.OrderState != custodial.OrderStatePendingExecution
}

// OrderCreated carries the backend's order record after creation or
// confirmation.
type OrderCreated struct {
	baseIntent
	Order      custodial.Order
	ShowRating bool
}

func (i OrderCreated) Reduce(oldState State) State {
	oldState.ID = i.Order.ID
	oldState.OrderState = i.Order.State
	oldState.Fee = i.Order.Fee
	oldState.OrderPrice = i.Order.Price
	oldState.OrderValue = i.Order.OrderValue
	if !i.Order.ExpiresAt.IsZero() {
		expires := i.Order.ExpiresAt
		oldState.ExpiresAt = &expires
	}
	oldState.PaymentSucceeded = i.Order.State == custodial.OrderStateFinished
	oldState.IsLoading = false
	oldState.ShowRating = i.ShowRating
	return oldState
}

// ConfirmOrder confirms the pending order (payment capture).
type ConfirmOrder struct{ baseIntent }

func (i ConfirmOrder) Reduce(oldState State) State {
	oldState.ConfirmationActionRequested = true
	oldState.IsLoading = true
	return oldState
}

// MakePayment drives an order that has been confirmed through its
// partner-specific payment step.
type MakePayment struct {
	baseIntent
	OrderID string
}

func (i MakePayment) Reduce(oldState State) State {
	oldState.IsLoading = true
	return oldState
}

// GetAuthorisationURL polls the order until the open-banking approval
// URL shows up on it.
type GetAuthorisationURL struct {
	baseIntent
	OrderID string
}

func (i GetAuthorisationURL) Reduce(oldState State) State {
	oldState.IsLoading = true
	return oldState
}

// CheckOrderStatus starts the bounded post-payment order status poll.
type CheckOrderStatus struct{ baseIntent }

func (i CheckOrderStatus) Reduce(oldState State) State {
	oldState.IsLoading = true
	return oldState
}

// PaymentSucceeded records that the order completed.
type PaymentSucceeded struct{ baseIntent }

func (i PaymentSucceeded) Reduce(oldState State) State {
	oldState.PaymentSucceeded = true
	oldState.IsLoading = false
	return oldState
}

// PaymentPending records that the order is still executing after the
// status poll budget ran out; the purchase continues server-side.
type PaymentPending struct{ baseIntent }

func (i PaymentPending) Reduce(oldState State) State {
	oldState.PaymentPending = true
	oldState.IsLoading = false
	return oldState
}

// UnlockHigherLimits prompts the user to verify further for higher
// limits.
type UnlockHigherLimits struct{ baseIntent }

func (i UnlockHigherLimits) Reduce(oldState State) State {
	oldState.ShouldShowUnlockHigherFunds = true
	return oldState
}

// Open3DSAuth hands the card partner's 3-D-Secure link to the
// presentation layer.
type Open3DSAuth struct {
	baseIntent
	PaymentLink string
	ExitLink    string
}

func (i Open3DSAuth) Reduce(oldState State) State {
	oldState.EverypayAuth = &EverypayAuthOptions{
		PaymentLink: i.PaymentLink,
		ExitLink:    i.ExitLink,
	}
	return oldState
}

// ResetEverypayAuth clears the 3-D-Secure handoff after the presentation
// layer consumed it.
type ResetEverypayAuth struct{ baseIntent }

func (i ResetEverypayAuth) Reduce(oldState State) State {
	oldState.EverypayAuth = nil
	return oldState
}

// NavigationHandled resets one-shot navigation flags after the
// presentation layer consumed them.
type NavigationHandled struct{ baseIntent }

func (i NavigationHandled) Reduce(oldState State) State {
	oldState.ConfirmationActionRequested = false
	oldState.NewPaymentMethodToBeAdded = nil
	return oldState
}

// FetchSupportedFiatCurrencies requests the supported currency list.
type FetchSupportedFiatCurrencies struct{ baseIntent }

func (i FetchSupportedFiatCurrencies) Reduce(oldState State) State {
	oldState.SupportedFiatCurrencies = nil
	return oldState
}

// SupportedCurrenciesUpdated carries the supported currency list.
type SupportedCurrenciesUpdated struct {
	baseIntent
	Currencies []string
}

func (i SupportedCurrenciesUpdated) Reduce(oldState State) State {
	oldState.SupportedFiatCurrencies = i.Currencies
	return oldState
}

// FetchWithdrawLockTime requests the withdrawal lock for the selected
// payment method.
type FetchWithdrawLockTime struct{ baseIntent }

// WithdrawLocksTimeUpdated carries the withdrawal lock duration.
type WithdrawLocksTimeUpdated struct {
	baseIntent
	Seconds int64
}

func (i WithdrawLocksTimeUpdated) Reduce(oldState State) State {
	oldState.WithdrawalLockSeconds = i.Seconds
	return oldState
}

// AppRatingShown clears the rating prompt flag.
type AppRatingShown struct{ baseIntent }

func (i AppRatingShown) Reduce(oldState State) State {
	oldState.ShowRating = false
	return oldState
}

// ErrorIntent reports a failure. Always valid: errors must get through
// even while an earlier error is still displayed.
type ErrorIntent struct {
	unconditionalIntent
	Kind ErrorKind
}

func (i ErrorIntent) Reduce(oldState State) State {
	kind := i.Kind
	if kind == ErrorNone {
		kind = ErrorGeneric
	}
	oldState.Error = kind
	oldState.IsLoading = false
	oldState.ConfirmationActionRequested = false
	return oldState
}

// ClearError acknowledges the displayed error and unfreezes the flow.
type ClearError struct {
	baseIntent
}

func (i ClearError) Reduce(oldState State) State {
	oldState.Error = ErrorNone
	return oldState
}

func (i ClearError) IsValidFor(oldState State) bool {
	return oldState.Error != ErrorNone
}

// ClearState resets the flow to the default state. Rejected while an
// order is awaiting user confirmation or mid-execution so in-flight
// state cannot be clobbered.
type ClearState struct {
	baseIntent
}

func (i ClearState) Reduce(State) State {
	return NewState()
}

func (i ClearState) IsValidFor(oldState State) bool {
	rank := oldState.OrderState.Rank()
	return rank < custodial.OrderStatePendingConfirmation.Rank() ||
		rank > custodial.OrderStatePendingExecution.Rank()
}
