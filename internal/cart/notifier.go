package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// ChangeKind names the mutation that produced a cart-changed event.
type ChangeKind string

const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeAdjusted ChangeKind = "adjusted"
	ChangeCleared  ChangeKind = "cleared"
)

// ChangeEvent is broadcast after every successful cart mutation, once the
// write has been persisted.
type ChangeEvent struct {
	UserID    uuid.UUID
	Kind      ChangeKind
	ItemCount int
}

// Observer receives cart-changed events. Implementations must not block;
// slow consumers should hand off to their own goroutine.
type Observer interface {
	CartChanged(ctx context.Context, event ChangeEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, event ChangeEvent)

func (f ObserverFunc) CartChanged(ctx context.Context, event ChangeEvent) {
	f(ctx, event)
}

// Broadcaster fans one cart-changed event out to every subscriber.
// Subscription order is delivery order.
type Broadcaster struct {
	mu        sync.RWMutex
	observers []Observer
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{}
}

// Subscribe registers an observer for all future events.
func (b *Broadcaster) Subscribe(obs Observer) {
	if obs == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.observers = append(b.observers, obs)
}

// CartChanged delivers the event to every subscriber synchronously.
func (b *Broadcaster) CartChanged(ctx context.Context, event ChangeEvent) {
	b.mu.RLock()
	observers := make([]Observer, len(b.observers))
	copy(observers, b.observers)
	b.mu.RUnlock()

	for _, obs := range observers {
		obs.CartChanged(ctx, event)
	}
}
