package libemit

// Listener is a subscription handle wrapping a callback. Two handles are never
// equal, even when they wrap the same function: removal matches by handle.
type Listener[V any] struct {
	fn func(V)
}

// NewListener wraps fn into a new handle. The same handle may be subscribed
// several times; every subscription fires.
func NewListener[V any](fn func(V)) *Listener[V] {
	return &Listener[V]{fn: fn}
}

// Call invokes the wrapped callback. A handle built around a nil func is inert.
func (l *Listener[V]) Call(data V) {
	if l == nil || l.fn == nil {
		return
	}
	l.fn(data)
}

// Event is what wildcard listeners receive: the emitted type plus its payload.
type Event[K comparable, V any] struct {
	Type K
	Args V
}

// indexOf returns the position of the first occurrence of l, or -1.
func indexOf[V any](listeners []*Listener[V], l *Listener[V]) int {
	for i, candidate := range listeners {
		if candidate == l {
			return i
		}
	}
	return -1
}

// removeFirst drops the first occurrence of l. The returned slice never aliases
// the input, so snapshots taken earlier stay untouched.
func removeFirst[V any](listeners []*Listener[V], l *Listener[V]) ([]*Listener[V], bool) {
	idx := indexOf(listeners, l)
	if idx < 0 {
		return listeners, false
	}

	next := make([]*Listener[V], 0, len(listeners)-1)
	next = append(next, listeners[:idx]...)
	next = append(next, listeners[idx+1:]...)

	return next, true
}

func snapshot[V any](listeners []*Listener[V]) []*Listener[V] {
	if len(listeners) == 0 {
		return nil
	}
	out := make([]*Listener[V], len(listeners))
	copy(out, listeners)
	return out
}
