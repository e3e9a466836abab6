package libemit

// Option configures an Emitter at construction time.
type Option func(*config)

type config struct {
	logger logger
}

func defaultConfig() config {
	return config{
		logger: noopLogger{},
	}
}

// WithLogger sets the logger the emitter reports registry changes to.
// A nil logger keeps the default, which discards everything.
func WithLogger(l logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
