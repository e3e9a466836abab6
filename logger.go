package libemit

// logger is the logging surface used across the package. Its method set mirrors
// logrus. Build one with NewLogrusLogger or NewZerologLogger and hand it to
// WithLogger or LogPanics.
type logger interface {
	WithField(key string, value any) logger
	Debug(args ...any)
	Debugf(format string, args ...any)
	Debugln(args ...any)
	Info(args ...any)
	Infof(format string, args ...any)
	Infoln(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Warnln(args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
	Errorln(args ...any)
}
