package libemit

// Topic binds an event key to the payload type carried under it. Topics let a single
// Emitter[K, any] host events of different shapes while keeping publishers and
// subscribers type checked.
//
//	var Connected = NewTopic[ConnectedArgs]("connected")
//
//	Subscribe(emitter, Connected, func(args ConnectedArgs) { ... })
//	Publish(emitter, Connected, ConnectedArgs{Addr: addr})
type Topic[K comparable, T any] struct {
	key K
}

// NewTopic returns the topic for key whose payloads are of type T.
func NewTopic[T any, K comparable](key K) Topic[K, T] {
	return Topic[K, T]{key: key}
}

// Key returns the event key, to be used with the untyped Emitter API such as Off.
func (t Topic[K, T]) Key() K {
	return t.key
}

// typed adapts fn to the untyped payload. Payloads emitted under the topic key that
// are not of type T are skipped. A nil published on an interface-typed topic
// reaches fn as the zero T.
func (t Topic[K, T]) typed(fn func(T)) func(any) {
	return func(data any) {
		var zero T
		if data == nil && any(zero) == nil {
			fn(zero)
			return
		}

		payload, ok := data.(T)
		if !ok {
			return
		}
		fn(payload)
	}
}

// Subscribe registers fn on the topic and returns the handle to pass to Off
// along with t.Key().
func Subscribe[K comparable, T any](e *Emitter[K, any], t Topic[K, T], fn func(T)) *Listener[any] {
	return e.OnFunc(t.key, t.typed(fn))
}

// SubscribeOnce registers fn on the topic for a single delivery, as Once does.
func SubscribeOnce[K comparable, T any](e *Emitter[K, any], t Topic[K, T], fn func(T)) *Listener[any] {
	return Once[K, any](e, t.key, t.typed(fn))
}

// Publish emits payload on the topic.
func Publish[K comparable, T any](e *Emitter[K, any], t Topic[K, T], payload T) {
	e.Emit(t.key, payload)
}
