package libemit

// PanicHandler receives the error built from a recovered listener panic.
type PanicHandler func(err error)

// Recover wraps fn so that a panic inside it is turned into a *ListenerPanicError and
// handed to handler instead of unwinding through Emit. Listeners wrapped this way no
// longer stop the listeners registered after them. A nil handler drops the error.
func Recover[V any](fn func(V), handler PanicHandler) func(V) {
	return func(data V) {
		defer func() {
			if r := recover(); r != nil {
				if handler != nil {
					handler(newListenerPanicError(r))
				}
			}
		}()

		fn(data)
	}
}

// LogPanics returns a PanicHandler that reports recovered panics at error level.
// A nil logger discards them.
func LogPanics(l logger) PanicHandler {
	if l == nil {
		l = noopLogger{}
	}
	l = l.WithField("component", "recover")

	return func(err error) {
		l.Errorf("recovered from listener panic: %s", err)
	}
}
