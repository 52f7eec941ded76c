package buy

import (
	"context"

	"github.com/lumawallet/buyflow/custodial"
	"github.com/lumawallet/buyflow/logger"
	"github.com/lumawallet/buyflow/polling"
)

// dispatchEffect launches the asynchronous operation an intent asks
// for, keyed to the state the intent was reduced against. Effects
// resolve exclusively to further intents; failures never cross the
// intent boundary as errors.
func (p *Processor) dispatchEffect(previous State, intent Intent) {
	switch it := intent.(type) {
	case NewAssetSelected:
		p.spawn("fetch_exchange_price", func(ctx context.Context) {
			p.effectFetchExchangePrice(ctx, it.Asset, previous.FiatCurrency)
		})
	case FetchQuote:
		p.spawn("fetch_quote", func(ctx context.Context) {
			p.effectFetchQuote(ctx, previous)
		})
	case FetchPaymentMethods:
		p.spawn("fetch_payment_methods", func(ctx context.Context) {
			p.effectFetchPaymentMethods(ctx, it.Currency, it.PreselectedID)
		})
	case PaymentMethodChangeRequested:
		// No gateway call: route to either the add-new flow or a plain
		// selection update.
		if it.Method.IsEligible && it.Method.IsUndefined() {
			p.Process(AddNewPaymentMethodRequested{Method: it.Method})
		} else {
			p.Process(SelectedPaymentMethodUpdate{Method: it.Method})
		}
	case BuyButtonClicked:
		p.spawn("check_tier_level", func(ctx context.Context) {
			p.Process(KycStateUpdated{State: p.interactor.CheckTierLevel(ctx)})
		})
	case FetchKycState:
		p.spawn("poll_kyc_state", func(ctx context.Context) {
			p.effectPollKycState(ctx)
		})
	case PaymentSucceeded:
		p.spawn("check_unlock_higher_limits", func(ctx context.Context) {
			if p.interactor.CheckTierLevel(ctx) != KycStateVerifiedAndEligible {
				p.Process(UnlockHigherLimits{})
			}
		})
	case LinkBankTransferRequested:
		p.spawn("link_new_bank", func(ctx context.Context) {
			p.effectLinkNewBank(ctx, previous.FiatCurrency)
		})
	case TryToLinkABankTransfer:
		p.spawn("check_bank_link_eligibility", func(ctx context.Context) {
			p.effectTryToLinkBank(ctx, previous.FiatCurrency)
		})
	case StartPollingLinkedBank:
		p.spawn("poll_linked_bank", func(ctx context.Context) {
			p.effectPollLinkedBank(ctx, it.BankID, previous)
		})
	case AuthorisePaymentExternalURL:
		// The user finishes the approval in an external browser; keep
		// watching the bank until linking reaches a final outcome.
		p.spawn("watch_bank_link_completion", func(ctx context.Context) {
			p.effectWatchBankLinkCompletion(ctx, it.Bank.ID)
		})
	case PollCardStatusRequested:
		p.spawn("poll_card_status", func(ctx context.Context) {
			p.effectPollCardStatus(ctx, it.CardID)
		})
	case CancelOrder, CancelOrderAndResetAuthorisation:
		p.spawn("cancel_order", func(ctx context.Context) {
			p.effectCancelOrder(ctx, previous.ID)
		})
	case CancelOrderIfAnyAndCreatePendingOne:
		p.spawn("replace_pending_order", func(ctx context.Context) {
			p.effectCancelAndCreatePending(ctx, previous)
		})
	case ConfirmOrder:
		p.spawn("confirm_order", func(ctx context.Context) {
			p.effectConfirmOrder(ctx, previous)
		})
	case MakePayment:
		p.spawn("make_payment", func(ctx context.Context) {
			p.effectMakePayment(ctx, it.OrderID)
		})
	case GetAuthorisationURL:
		p.spawn("poll_authorisation_url", func(ctx context.Context) {
			p.effectGetAuthorisationURL(ctx, it.OrderID)
		})
	case CheckOrderStatus:
		p.spawn("poll_order_status", func(ctx context.Context) {
			p.effectCheckOrderStatus(ctx, previous.ID)
		})
	case FetchSupportedFiatCurrencies:
		p.spawn("fetch_supported_currencies", func(ctx context.Context) {
			currencies, err := p.interactor.FetchSupportedFiatCurrencies(ctx)
			if err != nil {
				p.processEffectError(ctx, err, ErrorNone)
				return
			}
			p.Process(SupportedCurrenciesUpdated{Currencies: currencies})
		})
	case FetchWithdrawLockTime:
		if previous.SelectedPaymentMethod == nil {
			p.Process(ErrorIntent{})
			return
		}
		paymentType := previous.SelectedPaymentMethod.Type
		p.spawn("fetch_withdraw_lock_time", func(ctx context.Context) {
			p.Process(WithdrawLocksTimeUpdated{Seconds: p.interactor.FetchWithdrawLockTime(ctx, paymentType)})
		})
	}
}

// processEffectError reports a failed effect, unless the effect was
// cancelled by disposal: cancellation must never read as a user-visible
// error.
func (p *Processor) processEffectError(ctx context.Context, err error, kind ErrorKind) {
	if ctx.Err() != nil {
		return
	}
	logger.Logger.Warn().Err(err).Msg("Buy side effect failed")
	p.Process(ErrorIntent{Kind: kind})
}

func (p *Processor) effectFetchExchangePrice(ctx context.Context, asset string, currency string) {
	quote, err := p.interactor.FetchQuote(ctx, asset, custodial.Money{Currency: currency})
	if err != nil {
		// Live price lookups are cosmetic; errors are swallowed.
		return
	}
	p.Process(ExchangePriceUpdated{Price: quote.Rate})
}

func (p *Processor) effectFetchQuote(ctx context.Context, previous State) {
	if previous.SelectedAsset == "" || previous.Amount == nil {
		p.Process(ErrorIntent{})
		return
	}
	quote, err := p.interactor.FetchQuote(ctx, previous.SelectedAsset, *previous.Amount)
	if err != nil {
		p.processEffectError(ctx, err, ErrorNone)
		return
	}
	p.Process(QuoteUpdated{Quote: *quote})
}

func (p *Processor) effectFetchPaymentMethods(ctx context.Context, currency string, preselectedID string) {
	intent, err := p.interactor.EligiblePaymentMethods(ctx, currency, preselectedID)
	if err != nil {
		p.processEffectError(ctx, err, ErrorNone)
		return
	}
	p.Process(intent)
}

func (p *Processor) effectPollKycState(ctx context.Context) {
	result := p.interactor.PollKycState(ctx)
	if result.Outcome == polling.Cancelled {
		return
	}
	p.Process(KycStateUpdated{State: result.Value})
}

func (p *Processor) effectLinkNewBank(ctx context.Context, currency string) {
	transfer, err := p.interactor.LinkNewBank(ctx, currency)
	if err != nil {
		p.processEffectError(ctx, err, ErrorLinkedBankNotSupported)
		return
	}
	p.Process(BankLinkProcessStarted{Transfer: *transfer})
}

func (p *Processor) effectTryToLinkBank(ctx context.Context, currency string) {
	eligible, err := p.interactor.UserIsEligibleToLinkABank(ctx, currency)
	if err != nil {
		p.processEffectError(ctx, err, ErrorLinkedBankNotSupported)
		return
	}
	if !eligible {
		p.Process(ErrorIntent{Kind: ErrorLinkedBankNotSupported})
		return
	}
	p.Process(LinkBankTransferRequested{})
}

func (p *Processor) effectPollLinkedBank(ctx context.Context, bankID string, previous State) {
	partner := ""
	if previous.LinkBankTransfer != nil && previous.LinkBankTransfer.Partner == custodial.BankPartnerYapily {
		partner = custodial.BankPartnerYapily
	}

	result, err := p.interactor.PollLinkedBank(ctx, bankID, partner)
	if err != nil {
		p.processEffectError(ctx, err, ErrorBankLinkingFailed)
		return
	}
	switch result.Outcome {
	case polling.Cancelled:
		return
	case polling.TimedOut:
		p.Process(ErrorIntent{Kind: ErrorBankLinkingTimeout})
		return
	}

	bank := result.Value
	switch bank.State {
	case custodial.LinkedBankStateActive:
		p.Process(LinkedBankStateSuccess{Bank: *bank})
	case custodial.LinkedBankStateBlocked:
		p.Process(ErrorIntent{Kind: bankLinkErrorKind(bank.Error)})
	case custodial.LinkedBankStatePending, custodial.LinkedBankStateCreated:
		if partner == custodial.BankPartnerYapily && bank.AuthorisationURL != "" {
			p.Process(AuthorisePaymentExternalURL{URL: bank.AuthorisationURL, Bank: *bank})
			return
		}
		p.Process(ErrorIntent{Kind: ErrorBankLinkingTimeout})
	default:
		p.Process(ErrorIntent{Kind: ErrorBankLinkingFailed})
	}
}

func (p *Processor) effectWatchBankLinkCompletion(ctx context.Context, bankID string) {
	result, err := p.interactor.PollBankLinkingCompleted(ctx, bankID)
	if err != nil {
		p.processEffectError(ctx, err, ErrorBankLinkingFailed)
		return
	}
	switch result.Outcome {
	case polling.Cancelled:
		return
	case polling.TimedOut:
		p.Process(ErrorIntent{Kind: ErrorBankLinkingTimeout})
		return
	}

	bank := result.Value
	switch bank.State {
	case custodial.LinkedBankStateActive:
		p.Process(LinkedBankStateSuccess{Bank: *bank})
	case custodial.LinkedBankStateBlocked:
		p.Process(ErrorIntent{Kind: bankLinkErrorKind(bank.Error)})
	default:
		p.Process(ErrorIntent{Kind: ErrorBankLinkingFailed})
	}
}

func bankLinkErrorKind(code custodial.LinkedBankError) ErrorKind {
	switch code {
	case custodial.LinkedBankErrorAlreadyLinked:
		return ErrorLinkedBankAlreadyLinked
	case custodial.LinkedBankErrorUnsupportedAccount:
		return ErrorLinkedBankAccountUnsupported
	case custodial.LinkedBankErrorNamesMismatched:
		return ErrorLinkedBankNamesMismatched
	case custodial.LinkedBankErrorRejected:
		return ErrorLinkedBankRejected
	case custodial.LinkedBankErrorExpired:
		return ErrorLinkedBankExpired
	case custodial.LinkedBankErrorFailure:
		return ErrorLinkedBankFailure
	case custodial.LinkedBankErrorInvalid:
		return ErrorLinkedBankInvalid
	default:
		return ErrorBankLinkingFailed
	}
}

func (p *Processor) effectPollCardStatus(ctx context.Context, cardID string) {
	result, err := p.interactor.PollCardStatus(ctx, cardID)
	if err != nil {
		p.processEffectError(ctx, err, ErrorNone)
		return
	}
	if result.Outcome == polling.Cancelled {
		return
	}
	card := result.Value
	if card.State == custodial.CardStateActive {
		p.Process(UpdateSelectedPaymentCard{
			ID:         card.ID,
			Label:      card.Label,
			Partner:    card.Partner,
			IsEligible: true,
		})
		return
	}
	p.Process(ErrorIntent{})
}

func (p *Processor) effectCancelOrder(ctx context.Context, orderID string) {
	if orderID != "" {
		if err := p.interactor.CancelOrder(ctx, orderID); err != nil {
			p.processEffectError(ctx, err, ErrorNone)
			return
		}
	}
	p.Process(OrderCanceled{})
}

// effectCancelAndCreatePending replaces the tracked order with a fresh
// pending one. A cancel failure of the previous order is deliberately
// ignored and creation proceeds; the backend may briefly see two active
// orders in that window.
func (p *Processor) effectCancelAndCreatePending(ctx context.Context, previous State) {
	if previous.SelectedAsset == "" || previous.Amount == nil || previous.SelectedPaymentMethod == nil {
		p.Process(ErrorIntent{})
		return
	}

	if previous.ID != "" {
		if err := p.interactor.CancelOrder(ctx, previous.ID); err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Logger.Warn().Err(err).
				Str("order_id", previous.ID).
				Msg("Failed to cancel previous order, creating replacement anyway")
		}
	}

	order, err := p.interactor.CreateOrder(
		ctx,
		previous.SelectedAsset,
		*previous.Amount,
		previous.SelectedPaymentMethod.ConcreteID(),
		previous.SelectedPaymentMethod.Type,
	)
	if err != nil {
		p.processEffectError(ctx, err, orderErrorKind(err))
		return
	}
	p.Process(OrderCreated{Order: *order})
}

func orderErrorKind(err error) ErrorKind {
	switch custodial.CodeOf(err) {
	case custodial.ErrorCodeDailyLimitExceeded:
		return ErrorDailyLimitExceeded
	case custodial.ErrorCodeWeeklyLimitExceeded:
		return ErrorWeeklyLimitExceeded
	case custodial.ErrorCodeAnnualLimitExceeded:
		return ErrorYearlyLimitExceeded
	case custodial.ErrorCodePendingOrdersLimit:
		return ErrorExistingPendingOrder
	case custodial.ErrorCodeCurrencyNotSupported:
		return ErrorCurrencyNotSupported
	default:
		return ErrorGeneric
	}
}

func (p *Processor) effectConfirmOrder(ctx context.Context, previous State) {
	if previous.ID == "" || previous.SelectedPaymentMethod == nil {
		p.Process(ErrorIntent{})
		return
	}

	method := previous.SelectedPaymentMethod
	var attributes *custodial.ConfirmAttributes
	var paymentMethodID string
	if method.IsBank() {
		paymentMethodID = method.ConcreteID()
		attributes = &custodial.ConfirmAttributes{ApprovalCallback: approvalCallbackURL}
	} else if method.IsCard() {
		attributes = &custodial.ConfirmAttributes{EverypayCallback: everypayCallbackURL}
	}

	order, err := p.interactor.ConfirmOrder(ctx, previous.ID, paymentMethodID, attributes)
	if err != nil {
		p.processEffectError(ctx, err, orderErrorKind(err))
		return
	}
	p.Process(OrderCreated{Order: *order, ShowRating: order.State == custodial.OrderStateFinished})
}

// Deep-link callbacks the partner flows return to. The wallet app owns
// the scheme.
const (
	approvalCallbackURL = "https://buyflow.lumawallet.io/oblinking"
	everypayCallbackURL = "https://buyflow.lumawallet.io/everypay"
)

func (p *Processor) effectMakePayment(ctx context.Context, orderID string) {
	order, err := p.interactor.FetchOrder(ctx, orderID)
	if err != nil {
		p.processEffectError(ctx, err, ErrorNone)
		return
	}
	p.Process(OrderPriceUpdated{Price: order.Price})

	if order.Attributes == nil {
		p.Process(CheckOrderStatus{})
		return
	}
	p.handleOrderAttributes(ctx, order)
}

func (p *Processor) handleOrderAttributes(ctx context.Context, order *custodial.Order) {
	if order.Attributes.Everypay != nil {
		p.handleCardPayment(order)
		return
	}
	if !order.Fiat.IsOpenBanking() {
		p.Process(CheckOrderStatus{})
		return
	}
	if order.Attributes.AuthorisationURL != "" {
		p.handleBankAuthorisationPayment(ctx, order.PaymentMethodID, order.Attributes.AuthorisationURL)
		return
	}
	p.Process(GetAuthorisationURL{OrderID: order.ID})
}

func (p *Processor) handleCardPayment(order *custodial.Order) {
	attrs := order.Attributes.Everypay
	if attrs.PaymentState == custodial.EverypayWaiting3DS && order.State == custodial.OrderStateAwaitingFunds {
		p.Process(Open3DSAuth{PaymentLink: attrs.PaymentLink, ExitLink: everypayCallbackURL})
		p.Process(ResetEverypayAuth{})
		return
	}
	p.Process(CheckOrderStatus{})
}

func (p *Processor) handleBankAuthorisationPayment(ctx context.Context, paymentMethodID string, authorisationURL string) {
	bank, err := p.interactor.GetLinkedBankInfo(ctx, paymentMethodID)
	if err != nil {
		p.processEffectError(ctx, err, ErrorNone)
		return
	}
	p.Process(AuthorisePaymentExternalURL{URL: authorisationURL, Bank: *bank})
}

func (p *Processor) effectGetAuthorisationURL(ctx context.Context, orderID string) {
	result, err := p.interactor.PollAuthorisationURL(ctx, orderID)
	if err != nil {
		p.processEffectError(ctx, err, ErrorNone)
		return
	}
	switch result.Outcome {
	case polling.Cancelled:
		return
	case polling.TimedOut:
		p.Process(ErrorIntent{})
		return
	}
	order := result.Value
	p.handleBankAuthorisationPayment(ctx, order.PaymentMethodID, order.Attributes.AuthorisationURL)
}

func (p *Processor) effectCheckOrderStatus(ctx context.Context, orderID string) {
	if orderID == "" {
		p.Process(ErrorIntent{})
		return
	}
	result, err := p.interactor.PollOrderStatus(ctx, orderID)
	if err != nil {
		p.processEffectError(ctx, err, ErrorNone)
		return
	}
	if result.Outcome == polling.Cancelled {
		return
	}

	order := result.Value
	switch order.State {
	case custodial.OrderStateFinished:
		p.Process(PaymentSucceeded{})
	case custodial.OrderStateAwaitingFunds, custodial.OrderStatePendingExecution:
		p.Process(PaymentPending{})
	default:
		if order.ApprovalErrorStatus != custodial.ApprovalErrorNone {
			p.Process(ErrorIntent{Kind: approvalErrorKind(order.ApprovalErrorStatus)})
			return
		}
		p.Process(ErrorIntent{})
	}
}

func approvalErrorKind(status custodial.ApprovalErrorStatus) ErrorKind {
	switch status {
	case custodial.ApprovalErrorFailed:
		return ErrorApprovedBankFailed
	case custodial.ApprovalErrorRejected:
		return ErrorApprovedBankRejected
	case custodial.ApprovalErrorDeclined:
		return ErrorApprovedBankDeclined
	case custodial.ApprovalErrorExpired:
		return ErrorApprovedBankExpired
	default:
		return ErrorApprovedGeneric
	}
}
