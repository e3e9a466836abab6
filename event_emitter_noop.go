package libemit

type (
	subscriber[K comparable, V any] interface {
		// On registers a listener for the given event.
		On(event K, listener *Listener[V])

		// Off removes the first occurrence of listener from the given event.
		Off(event K, listener *Listener[V])
	}

	wildcardSubscriber[K comparable, V any] interface {
		// Each registers a listener for every event.
		Each(listener *Listener[Event[K, V]])

		// None removes the first occurrence of a wildcard listener.
		None(listener *Listener[Event[K, V]])
	}

	publisher[K comparable, V any] interface {
		// Emit calls the listeners registered for the given event, then the wildcard ones.
		Emit(event K, data V)
	}

	// EventEmitter is the full behaviour of an emitter, as implemented by
	// Emitter and NoopEmitter.
	EventEmitter[K comparable, V any] interface {
		subscriber[K, V]
		wildcardSubscriber[K, V]
		publisher[K, V]

		OnFunc(event K, fn func(V)) *Listener[V]
		EachFunc(fn func(Event[K, V])) *Listener[Event[K, V]]
		Close()
	}
)

var (
	_ EventEmitter[string, any] = (*Emitter[string, any])(nil)
	_ EventEmitter[string, any] = NoopEmitter[string, any]{}
)

// NoopEmitter accepts every call and delivers nothing. It stands in for an Emitter
// where events are not wanted.
type NoopEmitter[K comparable, V any] struct{}

func NewNoopEmitter[K comparable, V any]() NoopEmitter[K, V] {
	return NoopEmitter[K, V]{}
}

func (NoopEmitter[K, V]) On(K, *Listener[V]) {}

func (NoopEmitter[K, V]) Off(K, *Listener[V]) {}

func (NoopEmitter[K, V]) OnFunc(_ K, fn func(V)) *Listener[V] { return NewListener(fn) }

func (NoopEmitter[K, V]) Each(*Listener[Event[K, V]]) {}

func (NoopEmitter[K, V]) None(*Listener[Event[K, V]]) {}

func (NoopEmitter[K, V]) EachFunc(fn func(Event[K, V])) *Listener[Event[K, V]] {
	return NewListener(fn)
}

func (NoopEmitter[K, V]) Emit(K, V) {}

func (NoopEmitter[K, V]) Close() {}
