package libemit

import (
	"github.com/stretchr/testify/mock"
)

// mockListener records every call made through its handle. tap, when set, runs
// before the call is recorded, letting tests act from inside a listener.
type mockListener[V any] struct {
	mock.Mock

	tap func(V)
}

func (m *mockListener[V]) Handle(data V) {
	if m.tap != nil {
		m.tap(data)
	}
	m.Called(data)
}

func (m *mockListener[V]) Listener() *Listener[V] {
	return NewListener(m.Handle)
}

// recorder appends a label each time one of its listeners fires, to assert on
// cross-listener ordering.
type recorder struct {
	calls []string
}

func (r *recorder) listener(label string) *Listener[int] {
	return NewListener(func(int) {
		r.calls = append(r.calls, label)
	})
}
