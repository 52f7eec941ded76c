package buy

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lumawallet/buyflow/custodial"
	"github.com/lumawallet/buyflow/tests/mocks"
)

// memoryStore is an in-process StateStore for processor tests.
type memoryStore struct {
	mu    sync.Mutex
	saves []State
}

func (s *memoryStore) Load() (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.saves) == 0 {
		return nil, nil
	}
	last := s.saves[len(s.saves)-1]
	return &last, nil
}

func (s *memoryStore) Save(state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, state)
	return nil
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = nil
	return nil
}

func (s *memoryStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saves)
}

func startProcessor(t *testing.T, initial State, gateway custodial.OrderGateway) (*Processor, *memoryStore) {
	t.Helper()
	store := &memoryStore{}
	processor := NewProcessor(initial, newTestInteractor(gateway), store)
	processor.Start(context.Background())
	t.Cleanup(processor.Stop)
	return processor, store
}

func waitForState(t *testing.T, p *Processor, cond func(State) bool) State {
	t.Helper()
	require.Eventually(t, func() bool {
		return cond(p.CurrentState())
	}, 5*time.Second, 5*time.Millisecond)
	return p.CurrentState()
}

func TestProcessorReducesIntentsInEnqueueOrder(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	processor, _ := startProcessor(t, NewState(), gateway)

	processor.Process(AmountUpdated{Amount: custodial.Money{Currency: "USD", Minor: 1000}})
	processor.Process(FiatCurrencyUpdated{Currency: "EUR"})
	processor.Process(AmountUpdated{Amount: custodial.Money{Currency: "EUR", Minor: 2000}})

	state := waitForState(t, processor, func(s State) bool {
		return s.Amount != nil && s.Amount.Minor == 2000
	})
	assert.Equal(t, "EUR", state.FiatCurrency)
}

func TestProcessorDropsInvalidIntents(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	processor, _ := startProcessor(t, NewState(), gateway)

	processor.Process(ErrorIntent{Kind: ErrorDailyLimitExceeded})
	waitForState(t, processor, func(s State) bool { return s.Error == ErrorDailyLimitExceeded })

	// Frozen: a regular intent must not get through, and must not
	// trigger its side effect either (the mock would flag the call).
	processor.Process(FetchSupportedFiatCurrencies{})
	processor.Process(AmountUpdated{Amount: custodial.Money{Currency: "USD", Minor: 1000}})

	processor.Process(ClearError{})
	state := waitForState(t, processor, func(s State) bool { return s.Error == ErrorNone })
	assert.Nil(t, state.Amount)
}

func TestProcessorPersistsEveryPublishedState(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	processor, store := startProcessor(t, NewState(), gateway)

	processor.Process(FiatCurrencyUpdated{Currency: "GBP"})
	processor.Process(AmountUpdated{Amount: custodial.Money{Currency: "GBP", Minor: 500}})
	require.Eventually(t, func() bool {
		return store.saveCount() == 2
	}, 5*time.Second, 5*time.Millisecond)
	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "GBP", loaded.FiatCurrency)
}

func TestSubscribeDeliversCurrentStateFirst(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	initial := NewState()
	initial.FiatCurrency = "EUR"
	processor, _ := startProcessor(t, initial, gateway)

	sub := processor.Subscribe()
	first := <-sub
	assert.Equal(t, "EUR", first.FiatCurrency)

	processor.Process(FiatCurrencyUpdated{Currency: "GBP"})
	select {
	case next := <-sub:
		assert.Equal(t, "GBP", next.FiatCurrency)
	case <-time.After(5 * time.Second):
		t.Fatal("no state update delivered")
	}

	processor.Unsubscribe(sub)
	_, open := <-sub
	assert.False(t, open, "unsubscribed channel must be closed")
}

func TestProcessorQuoteRoundTrip(t *testing.T) {
	amount := custodial.Money{Currency: "USD", Minor: 5000}
	quote := custodial.Quote{Rate: custodial.Money{Currency: "USD", Minor: 9_000_000}}

	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetQuote(mock.Anything, "BTC", amount).Return(&quote, nil)

	initial := NewState()
	initial.SelectedAsset = "BTC"
	initial.Amount = &amount
	processor, _ := startProcessor(t, initial, gateway)

	processor.Process(FetchQuote{})
	state := waitForState(t, processor, func(s State) bool { return s.Quote != nil })
	assert.Equal(t, quote, *state.Quote)
}

func TestProcessorCardPurchaseHappyPath(t *testing.T) {
	amount := custodial.Money{Currency: "USD", Minor: 5000}
	pending := custodial.Order{ID: "order-1", State: custodial.OrderStatePendingConfirmation}
	confirmed := custodial.Order{ID: "order-1", State: custodial.OrderStateAwaitingFunds}
	finished := custodial.Order{ID: "order-1", State: custodial.OrderStateFinished}

	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().CreateOrder(mock.Anything, custodial.CreateOrderParams{
		Asset:           "BTC",
		Amount:          amount,
		PaymentMethodID: "card-1",
		PaymentType:     custodial.PaymentMethodTypeCard,
		Pending:         true,
	}).Return(&pending, nil)
	gateway.EXPECT().ConfirmOrder(mock.Anything, "order-1", "", &custodial.ConfirmAttributes{
		EverypayCallback: everypayCallbackURL,
	}).Return(&confirmed, nil)
	gateway.EXPECT().GetOrder(mock.Anything, "order-1").Return(&finished, nil)
	gateway.EXPECT().GetKycTiers(mock.Anything).Return(&custodial.KycTiers{
		Gold: custodial.TierStateVerified,
	}, nil)
	gateway.EXPECT().IsEligibleForBuy(mock.Anything).Return(true, nil)

	initial := NewState()
	initial.SelectedAsset = "BTC"
	initial.Amount = &amount
	initial.SelectedPaymentMethod = &SelectedPaymentMethod{
		ID:         "card-1",
		Type:       custodial.PaymentMethodTypeCard,
		IsEligible: true,
	}
	processor, _ := startProcessor(t, initial, gateway)

	processor.Process(CancelOrderIfAnyAndCreatePendingOne{})
	waitForState(t, processor, func(s State) bool {
		return s.ID == "order-1" && s.OrderState == custodial.OrderStatePendingConfirmation
	})

	processor.Process(ConfirmOrder{})
	waitForState(t, processor, func(s State) bool {
		return s.OrderState == custodial.OrderStateAwaitingFunds
	})

	processor.Process(CheckOrderStatus{})
	state := waitForState(t, processor, func(s State) bool { return s.PaymentSucceeded })
	assert.Equal(t, ErrorNone, state.Error)
	assert.False(t, state.ShouldShowUnlockHigherFunds)
}

func TestProcessorReplacesTrackedOrder(t *testing.T) {
	amount := custodial.Money{Currency: "USD", Minor: 7500}
	replacement := custodial.Order{ID: "order-2", State: custodial.OrderStatePendingConfirmation}

	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().CancelOrder(mock.Anything, "order-1").Return(nil)
	gateway.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(&replacement, nil)

	initial := NewState()
	initial.ID = "order-1"
	initial.OrderState = custodial.OrderStatePendingConfirmation
	initial.SelectedAsset = "BTC"
	initial.Amount = &amount
	initial.SelectedPaymentMethod = &SelectedPaymentMethod{
		ID:         "card-1",
		Type:       custodial.PaymentMethodTypeCard,
		IsEligible: true,
	}
	processor, _ := startProcessor(t, initial, gateway)

	processor.Process(CancelOrderIfAnyAndCreatePendingOne{})
	waitForState(t, processor, func(s State) bool { return s.ID == "order-2" })
}

func TestProcessorOrderCreationLimitError(t *testing.T) {
	amount := custodial.Money{Currency: "USD", Minor: 500_000}

	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, &custodial.APIError{
		Code: custodial.ErrorCodeDailyLimitExceeded,
	})

	initial := NewState()
	initial.SelectedAsset = "BTC"
	initial.Amount = &amount
	initial.SelectedPaymentMethod = &SelectedPaymentMethod{
		ID:         "card-1",
		Type:       custodial.PaymentMethodTypeCard,
		IsEligible: true,
	}
	processor, _ := startProcessor(t, initial, gateway)

	processor.Process(CancelOrderIfAnyAndCreatePendingOne{})
	state := waitForState(t, processor, func(s State) bool { return s.Error != ErrorNone })
	assert.Equal(t, ErrorDailyLimitExceeded, state.Error)
	assert.False(t, state.IsLoading)
}

func TestProcessorBankLinkTimeout(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(&custodial.LinkedBank{
		ID:      "bank-1",
		State:   custodial.LinkedBankStatePending,
		Partner: custodial.BankPartnerYodlee,
	}, nil)

	processor, _ := startProcessor(t, NewState(), gateway)

	processor.Process(StartPollingLinkedBank{BankID: "bank-1"})
	state := waitForState(t, processor, func(s State) bool { return s.Error != ErrorNone })
	assert.Equal(t, ErrorBankLinkingTimeout, state.Error)
}

func TestProcessorBankLinkSuccessSelectsBank(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(&custodial.LinkedBank{
		ID:          "bank-1",
		State:       custodial.LinkedBankStateActive,
		AccountName: "Main account",
	}, nil)

	processor, _ := startProcessor(t, NewState(), gateway)

	processor.Process(StartPollingLinkedBank{BankID: "bank-1"})
	state := waitForState(t, processor, func(s State) bool { return s.SelectedPaymentMethod != nil })
	assert.Equal(t, "bank-1", state.SelectedPaymentMethod.ID)
	assert.True(t, state.SelectedPaymentMethod.IsBank())
}

func TestProcessorPaymentMethodChangeRoutesPlaceholderToAddFlow(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	processor, _ := startProcessor(t, NewState(), gateway)

	placeholder := custodial.PaymentMethod{
		ID:         custodial.UndefinedCardPaymentID,
		Type:       custodial.PaymentMethodTypeCard,
		IsEligible: true,
	}
	processor.Process(PaymentMethodChangeRequested{Method: placeholder})
	state := waitForState(t, processor, func(s State) bool { return s.NewPaymentMethodToBeAdded != nil })
	assert.Equal(t, custodial.UndefinedCardPaymentID, state.NewPaymentMethodToBeAdded.ID)
	assert.Nil(t, state.SelectedPaymentMethod)

	concrete := custodial.PaymentMethod{ID: "card-1", Type: custodial.PaymentMethodTypeCard, IsEligible: true}
	processor.Process(PaymentMethodChangeRequested{Method: concrete})
	state = waitForState(t, processor, func(s State) bool { return s.SelectedPaymentMethod != nil })
	assert.Equal(t, "card-1", state.SelectedPaymentMethod.ID)
}

func TestProcessorCancelWithoutTrackedOrderSkipsBackend(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	processor, _ := startProcessor(t, NewState(), gateway)

	processor.Process(CancelOrder{})
	state := waitForState(t, processor, func(s State) bool {
		return s.OrderState == custodial.OrderStateCanceled
	})
	assert.Empty(t, state.ID)
}

func TestProcessorStopDropsLateIntents(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	store := &memoryStore{}
	processor := NewProcessor(NewState(), newTestInteractor(gateway), store)
	processor.Start(context.Background())
	processor.Stop()

	processor.Process(AmountUpdated{Amount: custodial.Money{Currency: "USD", Minor: 100}})
	time.Sleep(20 * time.Millisecond)
	assert.Nil(t, processor.CurrentState().Amount)
}

func TestProcessorStartConcurrentWithProcess(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	store := &memoryStore{}
	processor := NewProcessor(NewState(), newTestInteractor(gateway), store)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			processor.Process(FiatCurrencyUpdated{Currency: "EUR"})
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		processor.Start(context.Background())
	}()
	processor.Start(context.Background())
	t.Cleanup(processor.Stop)
	wg.Wait()

	waitForState(t, processor, func(s State) bool { return s.FiatCurrency == "EUR" })
}

func TestSubscribeSnapshotsStayOrderedDuringPublishes(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	processor := NewProcessor(NewState(), newTestInteractor(gateway), &memoryStore{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := int64(1); i <= 200; i++ {
			next := NewState()
			next.Amount = &custodial.Money{Currency: "USD", Minor: i}
			processor.publish(next)
		}
	}()

	for i := 0; i < 20; i++ {
		states := processor.Subscribe()
		state, ok := <-states
		require.True(t, ok)
		last := int64(0)
		if state.Amount != nil {
			last = state.Amount.Minor
		}
	drain:
		for {
			select {
			case state, ok := <-states:
				require.True(t, ok)
				minor := int64(0)
				if state.Amount != nil {
					minor = state.Amount.Minor
				}
				require.GreaterOrEqual(t, minor, last)
				last = minor
			default:
				break drain
			}
		}
		processor.Unsubscribe(states)
	}
	<-done
}

func TestProcessorBankLinkCompletesAfterExternalAuthorisation(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	pending := custodial.LinkedBank{
		ID:      "bank-1",
		Partner: custodial.BankPartnerYapily,
		State:   custodial.LinkedBankStatePending,
	}
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(&pending, nil).Once()
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(&custodial.LinkedBank{
		ID:          "bank-1",
		Partner:     custodial.BankPartnerYapily,
		State:       custodial.LinkedBankStateActive,
		AccountName: "Main account",
	}, nil).Once()

	processor, _ := startProcessor(t, NewState(), gateway)

	processor.Process(AuthorisePaymentExternalURL{URL: "https://auth.yapily.test/approve", Bank: pending})
	state := waitForState(t, processor, func(s State) bool {
		return s.LinkedBank != nil && s.LinkedBank.State == custodial.LinkedBankStateActive
	})
	require.NotNil(t, state.SelectedPaymentMethod)
	assert.Equal(t, "bank-1", state.SelectedPaymentMethod.ID)
	assert.True(t, state.SelectedPaymentMethod.IsBank())
	assert.Equal(t, "https://auth.yapily.test/approve", state.AuthorisePaymentURL)
}
