// Package state holds the single in-memory source of truth of the register.
//
// The Store owns an entity.AppState. Readers get deep copies; writers submit a
// Patch naming the top-level keys to replace. Every accepted write produces a
// new snapshot and one notification to the subscribers, in write order.
package state

import (
	"fmt"
	"log/slog"
	"sync"

	"pos/internal/domain/entity"
)

// Key names one top-level slice of the application state.
type Key string

const (
	KeyCatalog  Key = "catalog"
	KeyCart     Key = "cart"
	KeyOrders   Key = "orders"
	KeySettings Key = "settings"
	KeyUI       Key = "ui"
	KeyCheckout Key = "checkout"
)

// Patch is a partial state. Nil fields leave the current value untouched, so
// an empty cart must be written as entity.Cart{} rather than nil.
type Patch struct {
	Catalog  entity.Catalog
	Cart     entity.Cart
	Orders   entity.Orders
	Settings *entity.Settings
	UI       *entity.UIState
	Checkout *entity.CheckoutState
}

// Keys lists the top-level keys the patch replaces.
func (p Patch) Keys() []Key {
	keys := make([]Key, 0, 6)
	if p.Catalog != nil {
		keys = append(keys, KeyCatalog)
	}
	if p.Cart != nil {
		keys = append(keys, KeyCart)
	}
	if p.Orders != nil {
		keys = append(keys, KeyOrders)
	}
	if p.Settings != nil {
		keys = append(keys, KeySettings)
	}
	if p.UI != nil {
		keys = append(keys, KeyUI)
	}
	if p.Checkout != nil {
		keys = append(keys, KeyCheckout)
	}

	return keys
}

// IsEmpty reports whether the patch replaces nothing.
func (p Patch) IsEmpty() bool {
	return len(p.Keys()) == 0
}

func (p Patch) applyTo(s entity.AppState) entity.AppState {
	if p.Catalog != nil {
		s.Catalog = p.Catalog.Clone()
	}
	if p.Cart != nil {
		s.Cart = p.Cart.Clone()
	}
	if p.Orders != nil {
		s.Orders = p.Orders.Clone()
	}
	if p.Settings != nil {
		s.Settings = *p.Settings
	}
	if p.UI != nil {
		s.UI = *p.UI
	}
	if p.Checkout != nil {
		s.Checkout = *p.Checkout
	}

	return s
}

// EventKind tells subscribers whether the state was replaced or updated.
type EventKind int

const (
	// Replaced is emitted by SetState.
	Replaced EventKind = 1 << iota
	// Updated is emitted by UpdateState and Mutate.
	Updated

	// AllEvents subscribes to both kinds.
	AllEvents = Replaced | Updated
)

// String returns the name used in logs and wire messages.
func (k EventKind) String() string {
	switch k {
	case Replaced:
		return "replaced"
	case Updated:
		return "updated"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes one accepted write.
type Event struct {
	Kind EventKind
	Keys []Key
	Prev entity.AppState
	Next entity.AppState
}

// Has reports whether the event touched key.
func (e Event) Has(key Key) bool {
	for _, k := range e.Keys {
		if k == key {
			return true
		}
	}

	return false
}

// Subscriber receives state events. Returned errors are logged.
type Subscriber func(Event) error

type subscription struct {
	id    uint64
	kinds EventKind
	name  string
	fn    Subscriber
}

// Store is the state container. It is safe for concurrent use.
type Store struct {
	logger *slog.Logger

	mu       sync.Mutex
	current  entity.AppState
	pending  []Event
	draining bool

	subMu  sync.RWMutex
	subs   []subscription
	nextID uint64
}

// New creates a store holding the initial empty state.
func New(logger *slog.Logger) *Store {
	return &Store{
		logger:  logger.With(slog.String("component", "state")),
		current: InitialState(),
	}
}

// InitialState is the state before any data is loaded.
func InitialState() entity.AppState {
	return entity.AppState{
		Catalog:  entity.Catalog{},
		Cart:     entity.Cart{},
		Orders:   entity.Orders{},
		Settings: entity.DefaultSettings(),
		UI:       entity.DefaultUIState(),
		Checkout: entity.IdleCheckout(),
	}
}

// GetState returns a deep copy of the current state.
func (s *Store) GetState() entity.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current.Clone()
}

// SetState merges patch into the state and emits a Replaced event.
func (s *Store) SetState(patch Patch) {
	s.commit(Replaced, func(entity.AppState) (Patch, error) { return patch, nil })
}

// UpdateState merges patch into the state and emits an Updated event
// carrying only the keys the patch replaced.
func (s *Store) UpdateState(patch Patch) {
	s.commit(Updated, func(entity.AppState) (Patch, error) { return patch, nil })
}

// Mutate runs fn against a copy of the current state while holding the writer
// lock and merges the returned patch as UpdateState does. When fn returns an
// error nothing is written and no event is emitted.
func (s *Store) Mutate(fn func(current entity.AppState) (Patch, error)) error {
	return s.commit(Updated, fn)
}

// Replace is Mutate for wholesale replacements such as a restore: fn runs
// under the writer lock and the merge emits a Replaced event.
func (s *Store) Replace(fn func(current entity.AppState) (Patch, error)) error {
	return s.commit(Replaced, fn)
}

func (s *Store) commit(kind EventKind, fn func(entity.AppState) (Patch, error)) error {
	s.mu.Lock()

	patch, err := fn(s.current.Clone())
	if err != nil {
		s.mu.Unlock()

		return err
	}

	keys := patch.Keys()
	if len(keys) == 0 {
		s.mu.Unlock()

		return nil
	}

	prev := s.current
	s.current = patch.applyTo(prev)
	s.pending = append(s.pending, Event{
		Kind: kind,
		Keys: keys,
		Prev: prev.Clone(),
		Next: s.current.Clone(),
	})

	if s.draining {
		// The active drainer delivers this event after the ones before it.
		s.mu.Unlock()

		return nil
	}
	s.draining = true
	s.mu.Unlock()

	s.drain()

	return nil
}

func (s *Store) drain() {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			s.mu.Unlock()

			return
		}
		event := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		s.dispatch(event)
	}
}

func (s *Store) dispatch(event Event) {
	s.subMu.RLock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	for _, sub := range subs {
		if sub.kinds&event.Kind == 0 {
			continue
		}
		s.notify(sub, event)
	}
}

func (s *Store) notify(sub subscription, event Event) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("State subscriber panicked",
				slog.String("subscriber", sub.name),
				slog.String("event", event.Kind.String()),
				slog.Any("panic", r),
			)
		}
	}()

	if err := sub.fn(event); err != nil {
		s.logger.Warn("State subscriber failed",
			slog.String("subscriber", sub.name),
			slog.String("event", event.Kind.String()),
			slog.Any("error", err),
		)
	}
}

// Subscribe registers fn for the given event kinds and returns a function
// that removes the subscription. Subscribers run in registration order.
func (s *Store) Subscribe(name string, kinds EventKind, fn Subscriber) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, kinds: kinds, name: name, fn: fn})

	var once sync.Once

	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store) unsubscribe(id uint64) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	kept := make([]subscription, 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.id != id {
			kept = append(kept, sub)
		}
	}
	s.subs = kept
}
