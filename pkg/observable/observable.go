// Package observable provides a single-slot, in-memory pub/sub primitive.
// It performs no I/O: Set replaces the value and synchronously notifies
// every current subscriber in subscription order.
package observable

import "sync"

// Observable holds a single value of type T.
// Safe for concurrent use. Callbacks run without the internal lock held, so
// a subscriber may unsubscribe itself or others from within a notification
// without skipping or double-invoking the remaining subscribers.
type Observable[T any] struct {
	mu     sync.Mutex
	value  T
	nextID uint64
	subs   map[uint64]func(T)
	order  []uint64
}

// New creates an Observable initialized to the given value.
func New[T any](initial T) *Observable[T] {
	return &Observable[T]{
		value: initial,
		subs:  make(map[uint64]func(T)),
	}
}

// Get returns the current snapshot.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set replaces the snapshot and notifies all current subscribers with the
// new value, in subscription order. Subscribers removed mid-notification
// are not invoked.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	o.value = v
	o.compactLocked()
	ids := make([]uint64, len(o.order))
	copy(ids, o.order)
	o.mu.Unlock()

	for _, id := range ids {
		o.mu.Lock()
		fn, ok := o.subs[id]
		o.mu.Unlock()
		if ok {
			fn(v)
		}
	}
}

// Subscribe registers a callback and returns its unsubscribe function.
// Unsubscription is O(1) and idempotent.
func (o *Observable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.subs[id] = fn
	o.order = append(o.order, id)
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		delete(o.subs, id)
		o.mu.Unlock()
	}
}

// compactLocked drops unsubscribed IDs from the order slice once they
// outnumber the live ones. Caller must hold o.mu.
func (o *Observable[T]) compactLocked() {
	if len(o.order) <= 2*len(o.subs) {
		return
	}
	live := o.order[:0]
	for _, id := range o.order {
		if _, ok := o.subs[id]; ok {
			live = append(live, id)
		}
	}
	o.order = live
}
