package buy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lumawallet/buyflow/custodial"
	"github.com/lumawallet/buyflow/polling"
	"github.com/lumawallet/buyflow/tests/mocks"
)

func newTestInteractor(gateway custodial.OrderGateway) *Interactor {
	interactor := NewInteractor(gateway)
	interactor.SetPollTuning(time.Millisecond, 3, 3, 3)
	return interactor
}

func TestCheckTierLevelGoldAndEligible(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetKycTiers(mock.Anything).Return(&custodial.KycTiers{
		Silver: custodial.TierStateVerified,
		Gold:   custodial.TierStateVerified,
	}, nil)
	gateway.EXPECT().IsEligibleForBuy(mock.Anything).Return(true, nil)

	state := newTestInteractor(gateway).CheckTierLevel(context.Background())
	assert.Equal(t, KycStateVerifiedAndEligible, state)
}

func TestCheckTierLevelGoldButNotEligible(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetKycTiers(mock.Anything).Return(&custodial.KycTiers{
		Gold: custodial.TierStateVerified,
	}, nil)
	gateway.EXPECT().IsEligibleForBuy(mock.Anything).Return(false, nil)

	state := newTestInteractor(gateway).CheckTierLevel(context.Background())
	assert.Equal(t, KycStateVerifiedButNotEligible, state)
}

func TestCheckTierLevelRejected(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetKycTiers(mock.Anything).Return(&custodial.KycTiers{
		Silver: custodial.TierStateRejected,
	}, nil)

	state := newTestInteractor(gateway).CheckTierLevel(context.Background())
	assert.Equal(t, KycStateFailed, state)
}

func TestCheckTierLevelInReview(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetKycTiers(mock.Anything).Return(&custodial.KycTiers{
		Gold: custodial.TierStateUnderReview,
	}, nil)

	state := newTestInteractor(gateway).CheckTierLevel(context.Background())
	assert.Equal(t, KycStateInReview, state)
}

func TestCheckTierLevelBackendErrorReadsAsPending(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetKycTiers(mock.Anything).Return(nil, errors.New("unavailable"))

	state := newTestInteractor(gateway).CheckTierLevel(context.Background())
	assert.Equal(t, KycStatePending, state)
}

func TestPollKycStateResolvesOncePendingEnds(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetKycTiers(mock.Anything).Return(&custodial.KycTiers{}, nil).Once()
	gateway.EXPECT().GetKycTiers(mock.Anything).Return(&custodial.KycTiers{
		Gold: custodial.TierStateVerified,
	}, nil).Once()
	gateway.EXPECT().IsEligibleForBuy(mock.Anything).Return(true, nil)

	result := newTestInteractor(gateway).PollKycState(context.Background())
	assert.Equal(t, polling.Final, result.Outcome)
	assert.Equal(t, KycStateVerifiedAndEligible, result.Value)
}

func TestPollKycStateExhaustedBudgetIsUndecided(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetKycTiers(mock.Anything).Return(&custodial.KycTiers{}, nil)

	result := newTestInteractor(gateway).PollKycState(context.Background())
	assert.Equal(t, polling.TimedOut, result.Outcome)
	assert.Equal(t, KycStateUndecided, result.Value)
}

func TestPollLinkedBankStopsOnActive(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(&custodial.LinkedBank{
		ID: "bank-1", State: custodial.LinkedBankStatePending,
	}, nil).Once()
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(&custodial.LinkedBank{
		ID: "bank-1", State: custodial.LinkedBankStateActive,
	}, nil).Once()

	result, err := newTestInteractor(gateway).PollLinkedBank(context.Background(), "bank-1", "")
	require.NoError(t, err)
	assert.Equal(t, polling.Final, result.Outcome)
	assert.Equal(t, custodial.LinkedBankStateActive, result.Value.State)
}

func TestPollLinkedBankPartnerPendingEndsPoll(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(&custodial.LinkedBank{
		ID:      "bank-1",
		State:   custodial.LinkedBankStatePending,
		Partner: custodial.BankPartnerYapily,
	}, nil)

	result, err := newTestInteractor(gateway).PollLinkedBank(context.Background(), "bank-1", custodial.BankPartnerYapily)
	require.NoError(t, err)
	assert.Equal(t, polling.Final, result.Outcome)
	assert.Equal(t, custodial.LinkedBankStatePending, result.Value.State)
}

func TestPollLinkedBankSwallowsTransientErrors(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(nil, errors.New("transient")).Once()
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(&custodial.LinkedBank{
		ID: "bank-1", State: custodial.LinkedBankStateBlocked,
	}, nil).Once()

	result, err := newTestInteractor(gateway).PollLinkedBank(context.Background(), "bank-1", "")
	require.NoError(t, err)
	assert.Equal(t, polling.Final, result.Outcome)
	assert.Equal(t, custodial.LinkedBankStateBlocked, result.Value.State)
}

func TestPollBankLinkingCompletedIgnoresPartnerPending(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(&custodial.LinkedBank{
		ID: "bank-1", Partner: custodial.BankPartnerYapily, State: custodial.LinkedBankStatePending,
	}, nil).Once()
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(&custodial.LinkedBank{
		ID: "bank-1", Partner: custodial.BankPartnerYapily, State: custodial.LinkedBankStateActive,
	}, nil).Once()

	result, err := newTestInteractor(gateway).PollBankLinkingCompleted(context.Background(), "bank-1")
	require.NoError(t, err)
	assert.Equal(t, polling.Final, result.Outcome)
	assert.Equal(t, custodial.LinkedBankStateActive, result.Value.State)
}

func TestPollBankLinkingCompletedTimesOutWhilePending(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetLinkedBank(mock.Anything, "bank-1").Return(&custodial.LinkedBank{
		ID: "bank-1", State: custodial.LinkedBankStatePending,
	}, nil).Times(3)

	result, err := newTestInteractor(gateway).PollBankLinkingCompleted(context.Background(), "bank-1")
	require.NoError(t, err)
	assert.Equal(t, polling.TimedOut, result.Outcome)
}

func TestPollOrderStatusPropagatesBackendErrors(t *testing.T) {
	boom := errors.New("order lookup failed")
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetOrder(mock.Anything, "order-1").Return(nil, boom)

	_, err := newTestInteractor(gateway).PollOrderStatus(context.Background(), "order-1")
	assert.ErrorIs(t, err, boom)
}

func TestPollOrderStatusStopsOnTerminalState(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetOrder(mock.Anything, "order-1").Return(&custodial.Order{
		ID: "order-1", State: custodial.OrderStatePendingExecution,
	}, nil).Once()
	gateway.EXPECT().GetOrder(mock.Anything, "order-1").Return(&custodial.Order{
		ID: "order-1", State: custodial.OrderStateFinished,
	}, nil).Once()

	result, err := newTestInteractor(gateway).PollOrderStatus(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, polling.Final, result.Outcome)
	assert.Equal(t, custodial.OrderStateFinished, result.Value.State)
}

func TestPollAuthorisationURLWaitsForAttributes(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetOrder(mock.Anything, "order-1").Return(&custodial.Order{ID: "order-1"}, nil).Once()
	gateway.EXPECT().GetOrder(mock.Anything, "order-1").Return(&custodial.Order{
		ID:         "order-1",
		Attributes: &custodial.OrderAttributes{AuthorisationURL: "https://bank.example/approve"},
	}, nil).Once()

	result, err := newTestInteractor(gateway).PollAuthorisationURL(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, polling.Final, result.Outcome)
	assert.Equal(t, "https://bank.example/approve", result.Value.Attributes.AuthorisationURL)
}

func TestPollCardStatusRunsUntilFinalState(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetCard(mock.Anything, "card-1").Return(&custodial.Card{
		ID: "card-1", State: custodial.CardStatePending,
	}, nil).Times(5)
	gateway.EXPECT().GetCard(mock.Anything, "card-1").Return(&custodial.Card{
		ID: "card-1", State: custodial.CardStateActive,
	}, nil).Once()

	result, err := newTestInteractor(gateway).PollCardStatus(context.Background(), "card-1")
	require.NoError(t, err)
	assert.Equal(t, polling.Final, result.Outcome)
	assert.Equal(t, custodial.CardStateActive, result.Value.State)
}

func TestCreateOrderIsAlwaysPending(t *testing.T) {
	amount := custodial.Money{Currency: "USD", Minor: 5000}
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().CreateOrder(mock.Anything, custodial.CreateOrderParams{
		Asset:           "BTC",
		Amount:          amount,
		PaymentMethodID: "card-1",
		PaymentType:     custodial.PaymentMethodTypeCard,
		Pending:         true,
	}).Return(&custodial.Order{ID: "order-1", State: custodial.OrderStatePendingConfirmation}, nil)

	order, err := newTestInteractor(gateway).CreateOrder(context.Background(), "BTC", amount, "card-1", custodial.PaymentMethodTypeCard)
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
}

func TestEligiblePaymentMethodsDerivesAddableKinds(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetEligiblePaymentMethods(mock.Anything, "USD").Return([]custodial.PaymentMethod{
		{ID: custodial.UndefinedCardPaymentID, Type: custodial.PaymentMethodTypeCard, IsEligible: true},
		{ID: custodial.UndefinedBankTransferID, Type: custodial.PaymentMethodTypeBank, IsEligible: true},
		{ID: "funds-unlinked", Type: custodial.PaymentMethodTypeFunds, IsEligible: true},
		{ID: "card-1", Type: custodial.PaymentMethodTypeCard, IsEligible: true},
	}, nil)

	intent, err := newTestInteractor(gateway).EligiblePaymentMethods(context.Background(), "USD", "card-1")
	require.NoError(t, err)
	assert.True(t, intent.CanAddCard)
	assert.True(t, intent.CanLinkBank)
	assert.True(t, intent.CanLinkFunds)
	assert.Equal(t, "card-1", intent.PreselectedID)
	assert.Len(t, intent.Available, 4)
}

func TestEligiblePaymentMethodsIgnoresIneligiblePlaceholders(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetEligiblePaymentMethods(mock.Anything, "USD").Return([]custodial.PaymentMethod{
		{ID: custodial.UndefinedCardPaymentID, Type: custodial.PaymentMethodTypeCard, IsEligible: false},
		{ID: custodial.FundsPaymentID, Type: custodial.PaymentMethodTypeFunds, IsEligible: true},
	}, nil)

	intent, err := newTestInteractor(gateway).EligiblePaymentMethods(context.Background(), "USD", "")
	require.NoError(t, err)
	assert.False(t, intent.CanAddCard)
	assert.False(t, intent.CanLinkFunds, "linked funds are not a kind to add")
}

func TestUserIsEligibleToLinkABank(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetEligiblePaymentMethods(mock.Anything, "EUR").Return([]custodial.PaymentMethod{
		{ID: custodial.UndefinedBankTransferID, Type: custodial.PaymentMethodTypeBank, IsEligible: true},
	}, nil).Once()

	eligible, err := newTestInteractor(gateway).UserIsEligibleToLinkABank(context.Background(), "EUR")
	require.NoError(t, err)
	assert.True(t, eligible)

	gateway.EXPECT().GetEligiblePaymentMethods(mock.Anything, "USD").Return([]custodial.PaymentMethod{
		{ID: "card-1", Type: custodial.PaymentMethodTypeCard, IsEligible: true},
	}, nil).Once()

	eligible, err = newTestInteractor(gateway).UserIsEligibleToLinkABank(context.Background(), "USD")
	require.NoError(t, err)
	assert.False(t, eligible)
}

func TestFetchWithdrawLockTimeFallsBackToZero(t *testing.T) {
	gateway := mocks.NewMockOrderGateway(t)
	gateway.EXPECT().GetWithdrawalLockSeconds(mock.Anything, custodial.PaymentMethodTypeCard).Return(int64(0), errors.New("unavailable"))

	seconds := newTestInteractor(gateway).FetchWithdrawLockTime(context.Background(), custodial.PaymentMethodTypeCard)
	assert.Zero(t, seconds)
}
