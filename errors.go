package libemit

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrListenerPanic = errors.New("listener panicked")
)

// ListenerPanicError reports a panic recovered by Recover. Value holds whatever was
// passed to panic; the wrapped error carries the stack trace.
type ListenerPanicError struct {
	Value any
	err   error
}

func (e *ListenerPanicError) Error() string {
	return fmt.Sprintf("%s: %v", ErrListenerPanic, e.Value)
}

func (e *ListenerPanicError) Unwrap() error { return e.err }

// StackTrace exposes the trace recorded at recovery time, so that %+v printing
// through pkg/errors helpers shows where the listener blew up.
func (e *ListenerPanicError) StackTrace() errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	if st, ok := e.err.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

func newListenerPanicError(value any) *ListenerPanicError {
	return &ListenerPanicError{
		Value: value,
		err:   errors.WithStack(ErrListenerPanic),
	}
}
