package libemit

import (
	"sync/atomic"
)

// Once registers fn to be called the first time event is emitted only. The returned
// listener unregisters itself before calling fn, so an Emit of the same event made
// from within fn does not reach it again. Concurrent Emits racing on the same
// listener still call fn a single time. The handle can be passed to Off to cancel
// the subscription before the event ever fires.
func Once[K comparable, V any](e subscriber[K, V], event K, fn func(V)) *Listener[V] {
	var (
		self  *Listener[V]
		fired atomic.Bool
	)

	self = NewListener(func(data V) {
		if !fired.CompareAndSwap(false, true) {
			return
		}

		e.Off(event, self)

		if fn != nil {
			fn(data)
		}
	})

	e.On(event, self)

	return self
}

// OnceEach is the wildcard counterpart of Once: fn observes the next emitted event,
// whatever its type, and is then unregistered.
func OnceEach[K comparable, V any](e wildcardSubscriber[K, V], fn func(Event[K, V])) *Listener[Event[K, V]] {
	var (
		self  *Listener[Event[K, V]]
		fired atomic.Bool
	)

	self = NewListener(func(evt Event[K, V]) {
		if !fired.CompareAndSwap(false, true) {
			return
		}

		e.None(self)

		if fn != nil {
			fn(evt)
		}
	})

	e.Each(self)

	return self
}
