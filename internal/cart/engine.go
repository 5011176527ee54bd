package cart

import (
	"encoding/json"
	"fmt"
	"log"
)

// Notifier receives transient user notifications for cart mutations.
// Notifications are fire-and-forget: no acknowledgement is awaited and
// failures are never surfaced to the cart caller.
type Notifier interface {
	Notify(message string)
}

// NopNotifier discards all notifications
type NopNotifier struct{}

func (NopNotifier) Notify(string) {}

// Engine binds the pure reducer to a persistence store and a notifier.
// Every successful mutation is written back to the store under the
// engine's key before Dispatch returns.
type Engine struct {
	state    State
	store    Store
	key      string
	notifier Notifier
}

// NewEngine creates a cart engine, loading any previously persisted
// state from the store. A malformed stored value is discarded and the
// cart starts empty; loading never fails.
func NewEngine(store Store, key string, notifier Notifier) *Engine {
	if key == "" {
		key = StorageKey
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}

	return &Engine{
		state:    loadState(store, key),
		store:    store,
		key:      key,
		notifier: notifier,
	}
}

// loadState deserializes the persisted cart, treating anything
// unreadable as an empty cart
func loadState(store Store, key string) State {
	empty := State{}

	raw, err := store.Get(key)
	if err != nil || raw == "" {
		return empty
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return empty
	}
	return state
}

// State returns the current cart state
func (e *Engine) State() State {
	return e.state
}

// Dispatch applies an action, persists the new state and emits the
// matching notification. Returns the updated state.
func (e *Engine) Dispatch(action Action) State {
	previous := e.state
	e.state = Reduce(e.state, action)
	e.persist()
	e.notify(previous, action)
	return e.state
}

// persist serializes the cart to the store. A failed write is logged
// but does not roll back the in-memory mutation.
func (e *Engine) persist() {
	data, err := json.Marshal(e.state)
	if err != nil {
		log.Printf("cart: failed to serialize state: %v", err)
		return
	}

	if err := e.store.Set(e.key, string(data)); err != nil {
		log.Printf("cart: failed to persist state: %v", err)
	}
}

// notify emits the user-facing notification for a mutation
func (e *Engine) notify(previous State, action Action) {
	switch a := action.(type) {
	case Add:
		e.notifier.Notify(fmt.Sprintf("%s added to cart", a.Product.Name))
	case Remove:
		// Only announce removals that removed something
		if item := previous.Find(a.ProductID); item != nil {
			e.notifier.Notify(fmt.Sprintf("%s removed from cart", item.Name))
		}
	case UpdateQuantity:
		if a.Quantity < 1 {
			return
		}
		if item := e.state.Find(a.ProductID); item != nil {
			e.notifier.Notify(fmt.Sprintf("%s quantity updated to %d", item.Name, a.Quantity))
		}
	case Clear:
		e.notifier.Notify("Cart cleared")
	}
}
