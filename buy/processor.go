package buy

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/lumawallet/buyflow/logger"
)

const (
	intentQueueSize     = 64
	subscriberQueueSize = 16
)

// Processor owns the single authoritative in-memory State. Intents are
// consumed one at a time from a mailbox: the reduction is synchronous
// and serialized, the resulting state is published to subscribers and
// persisted, and side effects run concurrently, feeding their outcomes
// back into the same mailbox as new intents. Effects never mutate state
// directly.
type Processor struct {
	interactor *Interactor
	store      StateStore

	intents chan Intent

	stateMu sync.RWMutex
	state   State

	subMu       sync.Mutex
	subscribers []chan State

	startMu sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	started bool

	wg sync.WaitGroup
}

func NewProcessor(initialState State, interactor *Interactor, store StateStore) *Processor {
	return &Processor{
		interactor: interactor,
		store:      store,
		intents:    make(chan Intent, intentQueueSize),
		state:      initialState,
	}
}

// Start launches the mailbox loop. Cancelling ctx (or calling Stop)
// disposes the processor: in-flight side effects are cancelled and any
// intents they would still produce are dropped.
func (p *Processor) Start(ctx context.Context) {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.started {
		return
	}
	p.started = true
	p.ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run()
}

// Stop disposes the processor and waits for in-flight effects to wind
// down.
func (p *Processor) Stop() {
	p.startMu.Lock()
	cancel := p.cancel
	p.startMu.Unlock()
	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *Processor) context() context.Context {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	return p.ctx
}

// Process enqueues an intent. Intents are reduced strictly in enqueue
// order. Intents enqueued after disposal are dropped.
func (p *Processor) Process(intent Intent) {
	ctx := p.context()
	if ctx == nil {
		// Not started yet; queue for when the loop comes up.
		p.intents <- intent
		return
	}
	select {
	case p.intents <- intent:
	case <-ctx.Done():
	}
}

// CurrentState returns the latest published state snapshot.
func (p *Processor) CurrentState() State {
	p.stateMu.RLock()
	defer p.stateMu.RUnlock()
	return p.state
}

// Subscribe returns a channel of state snapshots. The current state is
// delivered first. Slow subscribers miss intermediate snapshots rather
// than blocking the mailbox.
func (p *Processor) Subscribe() <-chan State {
	ch := make(chan State, subscriberQueueSize)
	p.subMu.Lock()
	p.subscribers = append(p.subscribers, ch)
	// The initial send happens under subMu so a concurrent publish
	// cannot enqueue a newer snapshot ahead of it.
	ch <- p.CurrentState()
	p.subMu.Unlock()
	return ch
}

// Unsubscribe removes a channel obtained from Subscribe and closes it.
func (p *Processor) Unsubscribe(sub <-chan State) {
	p.subMu.Lock()
	defer p.subMu.Unlock()
	for i, ch := range p.subscribers {
		if ch == sub {
			p.subscribers = append(p.subscribers[:i], p.subscribers[i+1:]...)
			close(ch)
			return
		}
	}
}

func (p *Processor) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case intent := <-p.intents:
			p.handle(intent)
		}
	}
}

func (p *Processor) handle(intent Intent) {
	previous := p.CurrentState()

	if !intent.IsValidFor(previous) {
		logger.Logger.Debug().
			Str("intent", intentName(intent)).
			Msg("Dropping invalid intent")
		return
	}

	newState := intent.Reduce(previous)
	p.publish(newState)

	// The effect is keyed to the state the intent was reduced against,
	// and sees the state published by this step before the next intent
	// is reduced.
	p.dispatchEffect(previous, intent)
}

func (p *Processor) publish(newState State) {
	p.stateMu.Lock()
	p.state = newState
	p.stateMu.Unlock()

	if err := p.store.Save(newState); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to persist buy state snapshot")
	}

	p.subMu.Lock()
	for _, ch := range p.subscribers {
		select {
		case ch <- newState:
		default:
		}
	}
	p.subMu.Unlock()
}

// spawn runs one side effect on its own goroutine, scoped to the
// processor's lifetime.
func (p *Processor) spawn(name string, effect func(ctx context.Context)) {
	effectID := uuid.NewString()
	logger.Logger.Debug().
		Str("effect", name).
		Str("effect_id", effectID).
		Msg("Dispatching side effect")

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		effect(p.ctx)
	}()
}

func intentName(intent Intent) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", intent), "buy.")
}
