package libemit

import (
	"sync"
)

// Emitter is a synchronous, in-process event emitter. It maps event types (of type K)
// to ordered lists of listeners receiving a payload (of type V), and keeps a separate
// list of wildcard listeners which observe every emitted event.
// The zero value is ready to use. All methods are safe for concurrent use.
type Emitter[K comparable, V any] struct {
	listeners map[K][]*Listener[V]
	wildcards []*Listener[Event[K, V]]
	lock      sync.RWMutex

	logger logger
}

// NewEmitter creates a new Emitter and returns a pointer to it.
func NewEmitter[K comparable, V any](opts ...Option) *Emitter[K, V] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Emitter[K, V]{
		listeners: make(map[K][]*Listener[V]),
		logger:    cfg.logger.WithField("component", "emitter"),
	}
}

func (e *Emitter[K, V]) log() logger {
	if e.logger == nil {
		return noopLogger{}
	}
	return e.logger
}

// On registers a listener for the given event. Registering the same listener
// twice makes it fire twice.
func (e *Emitter[K, V]) On(event K, listener *Listener[V]) {
	if listener == nil {
		return
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	if e.listeners == nil {
		e.listeners = make(map[K][]*Listener[V])
	}

	e.listeners[event] = append(e.listeners[event], listener)
	e.log().Debugf("listener registered on %v, total %d", event, len(e.listeners[event]))
}

// OnFunc wraps fn into a new listener, registers it for the given event and
// returns the handle needed to unregister it.
func (e *Emitter[K, V]) OnFunc(event K, fn func(V)) *Listener[V] {
	listener := NewListener(fn)
	e.On(event, listener)
	return listener
}

// Off removes the first occurrence of listener from the given event.
// Removing a listener that is not registered is a no-op.
func (e *Emitter[K, V]) Off(event K, listener *Listener[V]) {
	e.lock.Lock()
	defer e.lock.Unlock()

	next, removed := removeFirst(e.listeners[event], listener)
	if !removed {
		e.log().Debugf("listener not registered on %v, nothing to remove", event)
		return
	}

	if len(next) == 0 {
		delete(e.listeners, event)
	} else {
		e.listeners[event] = next
	}

	e.log().Debugf("listener removed from %v, total %d", event, len(next))
}

// Each registers a wildcard listener, called for every emitted event.
func (e *Emitter[K, V]) Each(listener *Listener[Event[K, V]]) {
	if listener == nil {
		return
	}

	e.lock.Lock()
	defer e.lock.Unlock()

	e.wildcards = append(e.wildcards, listener)
	e.log().Debugf("wildcard listener registered, total %d", len(e.wildcards))
}

// EachFunc wraps fn into a new wildcard listener, registers it and returns its handle.
func (e *Emitter[K, V]) EachFunc(fn func(Event[K, V])) *Listener[Event[K, V]] {
	listener := NewListener(fn)
	e.Each(listener)
	return listener
}

// None removes the first occurrence of a wildcard listener. No-op when absent.
func (e *Emitter[K, V]) None(listener *Listener[Event[K, V]]) {
	e.lock.Lock()
	defer e.lock.Unlock()

	next, removed := removeFirst(e.wildcards, listener)
	if !removed {
		e.log().Debugf("wildcard listener not registered, nothing to remove")
		return
	}

	e.wildcards = next
	e.log().Debugf("wildcard listener removed, total %d", len(next))
}

// Emit calls every listener registered for the given event, in registration order,
// and then every wildcard listener. Both lists are copied before being walked, so
// listeners registered or removed while emitting only take effect on the next Emit.
// No lock is held while listeners run: they may call back into the emitter.
// A panicking listener is not recovered and stops the remaining calls.
func (e *Emitter[K, V]) Emit(event K, data V) {
	e.lock.RLock()
	listeners := snapshot(e.listeners[event])
	e.lock.RUnlock()

	for _, listener := range listeners {
		listener.Call(data)
	}

	e.lock.RLock()
	wildcards := snapshot(e.wildcards)
	e.lock.RUnlock()

	if len(wildcards) == 0 {
		return
	}

	evt := Event[K, V]{Type: event, Args: data}
	for _, listener := range wildcards {
		listener.Call(evt)
	}
}

// ListenerCount returns how many listeners are registered for the given event.
func (e *Emitter[K, V]) ListenerCount(event K) int {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return len(e.listeners[event])
}

// WildcardCount returns how many wildcard listeners are registered.
func (e *Emitter[K, V]) WildcardCount() int {
	e.lock.RLock()
	defer e.lock.RUnlock()

	return len(e.wildcards)
}

// Events returns the event types having at least one listener, in no particular order.
func (e *Emitter[K, V]) Events() []K {
	e.lock.RLock()
	defer e.lock.RUnlock()

	events := make([]K, 0, len(e.listeners))
	for event := range e.listeners {
		events = append(events, event)
	}
	return events
}

// Close removes all listeners, wildcard ones included, to prevent memory leaks.
// The emitter remains usable afterwards.
func (e *Emitter[K, V]) Close() {
	e.lock.Lock()
	defer e.lock.Unlock()

	e.listeners = make(map[K][]*Listener[V])
	e.wildcards = nil
	e.log().Debugf("all listeners removed")
}
