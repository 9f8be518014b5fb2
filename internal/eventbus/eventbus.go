package eventbus

import (
	"log"
	"sync"
)

// Handler receives the payload passed to Emit.
type Handler func(payload any)

// Bus is a minimal synchronous publish/subscribe register. Handlers
// for an event run in subscription order; a panicking handler is
// recovered and logged without stopping delivery to the rest.
//
// Handlers registered while an Emit of the same event is in progress
// do not see that emission.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	events map[string][]subscription
}

type subscription struct {
	id uint64
	fn Handler
}

func New() *Bus {
	return &Bus{events: make(map[string][]subscription)}
}

// On registers handler for event and returns an unsubscribe function.
// The returned function is idempotent.
func (b *Bus) On(event string, handler Handler) func() {
	if handler == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.events[event] = append(b.events[event], subscription{id: id, fn: handler})
	b.mu.Unlock()

	return func() { b.remove(event, id) }
}

// Once registers handler to run for at most one emission. The
// subscription is removed before the handler runs, so a handler that
// re-emits the same event cannot fire itself again.
func (b *Bus) Once(event string, handler Handler) func() {
	if handler == nil {
		return func() {}
	}

	var once sync.Once
	var unsub func()
	unsub = b.On(event, func(payload any) {
		once.Do(func() {
			unsub()
			handler(payload)
		})
	})
	return unsub
}

// Off removes every subscription on event that was registered with the
// given unsubscribe function's handler id. It exists for symmetry with
// the On contract; callers holding the unsubscribe function should
// prefer calling it directly.
func (b *Bus) Off(unsubscribe func()) {
	if unsubscribe != nil {
		unsubscribe()
	}
}

// Emit invokes all handlers currently registered for event,
// synchronously and in subscription order, with payload. Handler
// panics are isolated: they are logged and the remaining handlers
// still run.
func (b *Bus) Emit(event string, payload any) {
	b.mu.Lock()
	subs := make([]subscription, len(b.events[event]))
	copy(subs, b.events[event])
	b.mu.Unlock()

	for _, s := range subs {
		invoke(event, s.fn, payload)
	}
}

func invoke(event string, fn Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[eventbus] handler for %q panicked: %v", event, r)
		}
	}()
	fn(payload)
}

// Clear removes the handler lists for the named events, or every
// registered event when called with no arguments.
func (b *Bus) Clear(events ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(events) == 0 {
		b.events = make(map[string][]subscription)
		return
	}
	for _, e := range events {
		delete(b.events, e)
	}
}

// HandlerCount reports how many handlers are registered for event.
func (b *Bus) HandlerCount(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.events[event])
}

func (b *Bus) remove(event string, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.events[event]
	for i, s := range subs {
		if s.id == id {
			b.events[event] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.events[event]) == 0 {
		delete(b.events, event)
	}
}
