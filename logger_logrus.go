package libemit

import (
	"github.com/sirupsen/logrus"
)

// logrusLogger adapts a logrus entry to the logger interface. Every method but
// WithField is promoted from the embedded entry.
type logrusLogger struct {
	*logrus.Entry
}

func (l logrusLogger) WithField(key string, value any) logger {
	return logrusLogger{Entry: l.Entry.WithField(key, value)}
}

// NewLogrusLogger returns a logger backed by the given logrus entry. A nil entry
// falls back to the logrus standard logger.
func NewLogrusLogger(entry *logrus.Entry) logger {
	if entry == nil {
		entry = logrus.NewEntry(logrus.StandardLogger())
	}
	return logrusLogger{Entry: entry}
}
