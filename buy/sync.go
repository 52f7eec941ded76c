package buy

import (
	"context"

	"github.com/lumawallet/buyflow/custodial"
	"github.com/lumawallet/buyflow/logger"
)

// Reconciler aligns the locally persisted buy state with the backend's
// order records on startup and foregrounding. The backend owns the
// truth; the local snapshot only ever moves forward along the order
// lifecycle, and terminal orders evict it.
type Reconciler struct {
	gateway custodial.OrderGateway
	store   StateStore
}

func NewReconciler(gateway custodial.OrderGateway, store StateStore) *Reconciler {
	return &Reconciler{gateway: gateway, store: store}
}

// activeOrderStates are the lifecycle states worth resuming a flow for.
var activeOrderStates = map[custodial.OrderState]bool{
	custodial.OrderStatePendingConfirmation: true,
	custodial.OrderStatePendingExecution:    true,
	custodial.OrderStateAwaitingFunds:       true,
}

// PerformSync resolves the state the app should resume with. It returns
// nil when there is nothing to resume (no snapshot and no active remote
// order, or the tracked order finished while the app was away). The
// resolved state, when non-nil, has already been persisted.
//
// Backend failures fail open: the local snapshot survives a sync that
// could not reach the server.
func (r *Reconciler) PerformSync(ctx context.Context) (*State, error) {
	local, err := r.store.Load()
	if err != nil {
		return nil, err
	}

	if local == nil || local.ID == "" {
		return r.adoptRemotePending(ctx)
	}

	remote, err := r.gateway.GetOrder(ctx, local.ID)
	if err != nil {
		logger.Logger.Warn().Err(err).
			Str("order_id", local.ID).
			Msg("Order lookup failed during sync, keeping local snapshot")
		return local, nil
	}

	resolved := *local
	// Monotonic merge: remote only wins when it is strictly further
	// along, so a lagging backend read can never roll the flow back.
	if local.OrderState.Rank() < remote.State.Rank() {
		resolved = r.stateFromOrder(ctx, *remote)
		resolved.KycState = local.KycState
	}

	// A snapshot that never reached confirmation yields to any active
	// order the backend already has, whatever its id.
	if resolved.OrderState.Rank() < custodial.OrderStatePendingConfirmation.Rank() {
		if override := r.remotePendingState(ctx); override != nil {
			resolved = *override
		}
	}

	if resolved.OrderState.IsTerminal() {
		if err := r.store.Clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err := r.store.Save(resolved); err != nil {
		return nil, err
	}
	return &resolved, nil
}

// LightweightSync refreshes a snapshot parked in AWAITING_FUNDS, the one
// state that resolves without user input. It only ever evicts: a remote
// order that reached a terminal state clears the snapshot, anything else
// leaves it untouched.
func (r *Reconciler) LightweightSync(ctx context.Context) (*State, error) {
	local, err := r.store.Load()
	if err != nil {
		return nil, err
	}
	if local == nil || local.ID == "" || local.OrderState != custodial.OrderStateAwaitingFunds {
		return local, nil
	}

	remote, err := r.gateway.GetOrder(ctx, local.ID)
	if err != nil {
		logger.Logger.Warn().Err(err).
			Str("order_id", local.ID).
			Msg("Order lookup failed during lightweight sync, keeping local snapshot")
		return local, nil
	}
	if remote.State.IsTerminal() {
		if err := r.store.Clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return local, nil
}

// adoptRemotePending resumes from the backend when there is no usable
// local snapshot. With no active remote order either, any stale snapshot
// is cleared.
func (r *Reconciler) adoptRemotePending(ctx context.Context) (*State, error) {
	state := r.remotePendingState(ctx)
	if state == nil {
		if err := r.store.Clear(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err := r.store.Save(*state); err != nil {
		return nil, err
	}
	return state, nil
}

// remotePendingState picks the active outstanding order worth resuming,
// preferring the one that expires last (the most recently created).
// Backend failures read as no active order.
func (r *Reconciler) remotePendingState(ctx context.Context) *State {
	orders, err := r.gateway.GetOutstandingOrders(ctx)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Outstanding order lookup failed during sync")
		return nil
	}

	var candidate *custodial.Order
	for i := range orders {
		order := &orders[i]
		if !activeOrderStates[order.State] {
			continue
		}
		if candidate == nil || candidate.ExpiresAt.Before(order.ExpiresAt) {
			candidate = order
		}
	}
	if candidate == nil {
		return nil
	}
	state := r.stateFromOrder(ctx, *candidate)
	return &state
}

// stateFromOrder inflates a resumable state from a backend order,
// enriching concrete card or bank payment methods with their display
// labels. Label lookups are cosmetic and fail soft.
func (r *Reconciler) stateFromOrder(ctx context.Context, order custodial.Order) State {
	state := NewState()
	state.ID = order.ID
	state.OrderState = order.State
	state.SelectedAsset = order.Asset
	state.FiatCurrency = order.Fiat.Currency
	amount := order.Fiat
	state.Amount = &amount
	state.Fee = order.Fee
	state.OrderPrice = order.Price
	state.OrderValue = order.OrderValue
	if !order.ExpiresAt.IsZero() {
		expires := order.ExpiresAt
		state.ExpiresAt = &expires
	}
	state.PaymentSucceeded = order.State == custodial.OrderStateFinished

	method := &SelectedPaymentMethod{
		ID:         order.PaymentMethodID,
		Type:       order.PaymentMethodType,
		IsEligible: true,
	}
	switch {
	case order.HasDefinedCardPayment():
		if card, err := r.gateway.GetCard(ctx, order.PaymentMethodID); err == nil {
			method.Label = card.Label
			method.Partner = card.Partner
		}
	case order.HasDefinedBankPayment():
		if bank, err := r.gateway.GetLinkedBank(ctx, order.PaymentMethodID); err == nil {
			method.Label = bank.AccountName
			method.Partner = bank.Partner
		}
	}
	state.SelectedPaymentMethod = method
	return state
}
