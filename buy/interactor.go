package buy

import (
	"context"
	"time"

	"github.com/lumawallet/buyflow/custodial"
	"github.com/lumawallet/buyflow/polling"
)

// Poll tuning. Each workflow has its own budget because user tolerance
// for waiting differs: KYC resolves within ~30s or falls back to
// UNDECIDED, bank linking gets ~60s, an executing order ~100s, and card
// activation is watched until the partner reaches a final card state.
const (
	defaultPollInterval = 5 * time.Second

	kycPollRetries      = 6
	bankLinkPollRetries = 12
	orderPollRetries    = 20
)

// Interactor implements the side-effect catalogue of the buy flow on top
// of the custodial gateway and the polling service. It performs no state
// mutation; every result is handed back to the processor as an intent.
type Interactor struct {
	gateway custodial.OrderGateway

	pollInterval        time.Duration
	kycPollRetries      int
	bankLinkPollRetries int
	orderPollRetries    int
}

func NewInteractor(gateway custodial.OrderGateway) *Interactor {
	return &Interactor{
		gateway:             gateway,
		pollInterval:        defaultPollInterval,
		kycPollRetries:      kycPollRetries,
		bankLinkPollRetries: bankLinkPollRetries,
		orderPollRetries:    orderPollRetries,
	}
}

// SetPollTuning overrides the per-workflow poll budgets, primarily for
// configuration and tests.
func (i *Interactor) SetPollTuning(interval time.Duration, kycRetries, bankLinkRetries, orderRetries int) {
	if interval > 0 {
		i.pollInterval = interval
	}
	if kycRetries > 0 {
		i.kycPollRetries = kycRetries
	}
	if bankLinkRetries > 0 {
		i.bankLinkPollRetries = bankLinkRetries
	}
	if orderRetries > 0 {
		i.orderPollRetries = orderRetries
	}
}

// CheckTierLevel resolves the current KYC state from the tier service.
// Never fails: backend errors read as KycStatePending and the caller
// retries.
func (i *Interactor) CheckTierLevel(ctx context.Context) KycState {
	tiers, err := i.gateway.GetKycTiers(ctx)
	if err != nil {
		return KycStatePending
	}
	switch {
	case tiers.IsVerifiedGold():
		eligible, err := i.gateway.IsEligibleForBuy(ctx)
		if err != nil {
			return KycStatePending
		}
		if eligible {
			return KycStateVerifiedAndEligible
		}
		return KycStateVerifiedButNotEligible
	case tiers.IsRejectedForAny():
		return KycStateFailed
	case tiers.IsInReviewForAny():
		return KycStateInReview
	default:
		return KycStatePending
	}
}

// PollKycState polls the tier state until it leaves PENDING or the
// budget runs out; an exhausted budget resolves to UNDECIDED. Producer
// errors are swallowed (they map to PENDING inside CheckTierLevel).
func (i *Interactor) PollKycState(ctx context.Context) polling.Result[KycState] {
	result, err := polling.Poll(ctx, i.pollInterval, i.kycPollRetries,
		func(ctx context.Context) (KycState, error) {
			return i.CheckTierLevel(ctx), nil
		},
		func(state KycState) bool {
			return state != KycStatePending
		})
	if err != nil {
		// Unreachable: the producer never errors.
		return polling.Result[KycState]{Outcome: polling.TimedOut, Value: KycStatePending}
	}
	if result.Outcome == polling.TimedOut {
		result.Value = KycStateUndecided
	}
	return result
}

// PollLinkedBank polls a bank-linking process until it leaves the
// pending states. When partner is set, a pending bank reported for that
// same partner also ends the poll (the partner flow continues
// externally). Transient backend errors keep the poll running.
func (i *Interactor) PollLinkedBank(ctx context.Context, bankID string, partner string) (polling.Result[*custodial.LinkedBank], error) {
	return polling.Poll(ctx, i.pollInterval, i.bankLinkPollRetries,
		func(ctx context.Context) (*custodial.LinkedBank, error) {
			bank, err := i.gateway.GetLinkedBank(ctx, bankID)
			if err != nil {
				if ctx.Err() != nil {
					return nil, err
				}
				return &custodial.LinkedBank{ID: bankID, State: custodial.LinkedBankStatePending}, nil
			}
			return bank, nil
		},
		func(bank *custodial.LinkedBank) bool {
			if !bank.State.IsLinkingPending() {
				return true
			}
			return partner != "" && bank.Partner == partner
		})
}

// PollBankLinkingCompleted polls until linking reached a final outcome.
// Unlike PollLinkedBank, partner-pending states do not end this poll:
// it backs the watch running while the user approves in an external
// browser.
func (i *Interactor) PollBankLinkingCompleted(ctx context.Context, bankID string) (polling.Result[*custodial.LinkedBank], error) {
	return polling.Poll(ctx, i.pollInterval, i.bankLinkPollRetries,
		func(ctx context.Context) (*custodial.LinkedBank, error) {
			bank, err := i.gateway.GetLinkedBank(ctx, bankID)
			if err != nil {
				if ctx.Err() != nil {
					return nil, err
				}
				return &custodial.LinkedBank{ID: bankID, State: custodial.LinkedBankStatePending}, nil
			}
			return bank, nil
		},
		func(bank *custodial.LinkedBank) bool {
			return bank.State.IsLinkingFinished()
		})
}

// PollOrderStatus polls the order until it reaches FINISHED, FAILED or
// CANCELED. Backend errors propagate: once payment was captured the
// caller needs a definite answer.
func (i *Interactor) PollOrderStatus(ctx context.Context, orderID string) (polling.Result[*custodial.Order], error) {
	return polling.Poll(ctx, i.pollInterval, i.orderPollRetries,
		func(ctx context.Context) (*custodial.Order, error) {
			return i.gateway.GetOrder(ctx, orderID)
		},
		func(order *custodial.Order) bool {
			switch order.State {
			case custodial.OrderStateFinished, custodial.OrderStateFailed, custodial.OrderStateCanceled:
				return true
			}
			return false
		})
}

// PollAuthorisationURL polls the order until the open-banking approval
// URL shows up on its attributes.
func (i *Interactor) PollAuthorisationURL(ctx context.Context, orderID string) (polling.Result[*custodial.Order], error) {
	return polling.Poll(ctx, i.pollInterval, i.bankLinkPollRetries,
		func(ctx context.Context) (*custodial.Order, error) {
			return i.gateway.GetOrder(ctx, orderID)
		},
		func(order *custodial.Order) bool {
			return order.Attributes != nil && order.Attributes.AuthorisationURL != ""
		})
}

// PollCardStatus watches a card until activation reaches a final state.
// No attempt budget: the card partner flow has no bounded latency.
func (i *Interactor) PollCardStatus(ctx context.Context, cardID string) (polling.Result[*custodial.Card], error) {
	return polling.Poll(ctx, i.pollInterval, 0,
		func(ctx context.Context) (*custodial.Card, error) {
			return i.gateway.GetCard(ctx, cardID)
		},
		func(card *custodial.Card) bool {
			return card.State.IsFinal()
		})
}

// CreateOrder creates a fresh pending order for the given selection.
func (i *Interactor) CreateOrder(ctx context.Context, asset string, amount custodial.Money, paymentMethodID string, paymentType custodial.PaymentMethodType) (*custodial.Order, error) {
	return i.gateway.CreateOrder(ctx, custodial.CreateOrderParams{
		Asset:           asset,
		Amount:          amount,
		PaymentMethodID: paymentMethodID,
		PaymentType:     paymentType,
		Pending:         true,
	})
}

func (i *Interactor) CancelOrder(ctx context.Context, orderID string) error {
	return i.gateway.CancelOrder(ctx, orderID)
}

func (i *Interactor) ConfirmOrder(ctx context.Context, orderID string, paymentMethodID string, attributes *custodial.ConfirmAttributes) (*custodial.Order, error) {
	return i.gateway.ConfirmOrder(ctx, orderID, paymentMethodID, attributes)
}

func (i *Interactor) FetchOrder(ctx context.Context, orderID string) (*custodial.Order, error) {
	return i.gateway.GetOrder(ctx, orderID)
}

func (i *Interactor) FetchQuote(ctx context.Context, asset string, amount custodial.Money) (*custodial.Quote, error) {
	return i.gateway.GetQuote(ctx, asset, amount)
}

func (i *Interactor) LinkNewBank(ctx context.Context, currency string) (*custodial.BankTransfer, error) {
	return i.gateway.LinkBank(ctx, currency)
}

func (i *Interactor) GetLinkedBankInfo(ctx context.Context, bankID string) (*custodial.LinkedBank, error) {
	return i.gateway.GetLinkedBank(ctx, bankID)
}

// EligiblePaymentMethods fetches the catalogue and derives which method
// kinds could still be added from the undefined placeholders in it.
func (i *Interactor) EligiblePaymentMethods(ctx context.Context, currency string, preselectedID string) (PaymentMethodsUpdated, error) {
	methods, err := i.gateway.GetEligiblePaymentMethods(ctx, currency)
	if err != nil {
		return PaymentMethodsUpdated{}, err
	}

	intent := PaymentMethodsUpdated{
		Available:     methods,
		PreselectedID: preselectedID,
	}
	for _, method := range methods {
		if !method.IsEligible {
			continue
		}
		switch method.ID {
		case custodial.UndefinedCardPaymentID:
			intent.CanAddCard = true
		case custodial.UndefinedBankTransferID:
			intent.CanLinkBank = true
		default:
			if method.Type == custodial.PaymentMethodTypeFunds && method.ID != custodial.FundsPaymentID {
				intent.CanLinkFunds = true
			}
		}
	}
	return intent, nil
}

// UserIsEligibleToLinkABank checks whether bank transfers are an
// eligible method kind for the currency.
func (i *Interactor) UserIsEligibleToLinkABank(ctx context.Context, currency string) (bool, error) {
	methods, err := i.gateway.GetEligiblePaymentMethods(ctx, currency)
	if err != nil {
		return false, err
	}
	for _, method := range methods {
		if method.Type == custodial.PaymentMethodTypeBank && method.IsEligible {
			return true, nil
		}
	}
	return false, nil
}

func (i *Interactor) FetchSupportedFiatCurrencies(ctx context.Context) ([]string, error) {
	return i.gateway.GetSupportedFiatCurrencies(ctx)
}

// FetchWithdrawLockTime resolves the withdrawal hold for a payment
// method type; failures fall back to zero and are never surfaced.
func (i *Interactor) FetchWithdrawLockTime(ctx context.Context, paymentType custodial.PaymentMethodType) int64 {
	seconds, err := i.gateway.GetWithdrawalLockSeconds(ctx, paymentType)
	if err != nil {
		return 0
	}
	return seconds
}
