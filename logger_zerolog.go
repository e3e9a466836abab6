package libemit

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// zerologLogger adapts a zerolog.Logger to the logger interface.
type zerologLogger struct {
	l zerolog.Logger
}

// NewZerologLogger returns a logger backed by the given zerolog logger.
func NewZerologLogger(l zerolog.Logger) logger {
	return zerologLogger{l: l}
}

func (z zerologLogger) WithField(key string, value any) logger {
	return zerologLogger{l: z.l.With().Interface(key, value).Logger()}
}

func (z zerologLogger) Debug(args ...any) { z.l.Debug().Msg(fmt.Sprint(args...)) }

func (z zerologLogger) Debugf(format string, args ...any) { z.l.Debug().Msgf(format, args...) }

func (z zerologLogger) Debugln(args ...any) { z.l.Debug().Msg(sprintln(args...)) }

func (z zerologLogger) Info(args ...any) { z.l.Info().Msg(fmt.Sprint(args...)) }

func (z zerologLogger) Infof(format string, args ...any) { z.l.Info().Msgf(format, args...) }

func (z zerologLogger) Infoln(args ...any) { z.l.Info().Msg(sprintln(args...)) }

func (z zerologLogger) Warn(args ...any) { z.l.Warn().Msg(fmt.Sprint(args...)) }

func (z zerologLogger) Warnf(format string, args ...any) { z.l.Warn().Msgf(format, args...) }

func (z zerologLogger) Warnln(args ...any) { z.l.Warn().Msg(sprintln(args...)) }

func (z zerologLogger) Error(args ...any) { z.l.Error().Msg(fmt.Sprint(args...)) }

func (z zerologLogger) Errorf(format string, args ...any) { z.l.Error().Msgf(format, args...) }

func (z zerologLogger) Errorln(args ...any) { z.l.Error().Msg(sprintln(args...)) }

// sprintln mirrors fmt.Sprintln without the trailing newline, which zerolog
// would otherwise keep inside the message field.
func sprintln(args ...any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
