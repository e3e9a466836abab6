package libemit

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

// testLogger implements the logger interface on top of an io.Writer. Lines have the
// form "LEVEL [k=v, ...]: msg", fields sorted by key so output can be asserted on.
type testLogger struct {
	writer io.Writer
	mu     *sync.Mutex
	fields map[string]any
}

func newTestLogger(writer io.Writer) logger {
	return &testLogger{
		writer: writer,
		mu:     &sync.Mutex{},
		fields: make(map[string]any),
	}
}

func (l *testLogger) WithField(key string, value any) logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value

	return &testLogger{writer: l.writer, mu: l.mu, fields: fields}
}

func (l *testLogger) formatFields() string {
	if len(l.fields) == 0 {
		return ""
	}

	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(" [")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, l.fields[k])
	}
	sb.WriteString("]")
	return sb.String()
}

func (l *testLogger) log(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.writer, "%s%s: %s\n", level, l.formatFields(), strings.TrimSuffix(msg, "\n"))
}

func (l *testLogger) Debug(args ...any) { l.log("DEBUG", fmt.Sprint(args...)) }

func (l *testLogger) Debugf(format string, args ...any) { l.log("DEBUG", fmt.Sprintf(format, args...)) }

func (l *testLogger) Debugln(args ...any) { l.log("DEBUG", fmt.Sprintln(args...)) }

func (l *testLogger) Info(args ...any) { l.log("INFO", fmt.Sprint(args...)) }

func (l *testLogger) Infof(format string, args ...any) { l.log("INFO", fmt.Sprintf(format, args...)) }

func (l *testLogger) Infoln(args ...any) { l.log("INFO", fmt.Sprintln(args...)) }

func (l *testLogger) Warn(args ...any) { l.log("WARN", fmt.Sprint(args...)) }

func (l *testLogger) Warnf(format string, args ...any) { l.log("WARN", fmt.Sprintf(format, args...)) }

func (l *testLogger) Warnln(args ...any) { l.log("WARN", fmt.Sprintln(args...)) }

func (l *testLogger) Error(args ...any) { l.log("ERROR", fmt.Sprint(args...)) }

func (l *testLogger) Errorf(format string, args ...any) { l.log("ERROR", fmt.Sprintf(format, args...)) }

func (l *testLogger) Errorln(args ...any) { l.log("ERROR", fmt.Sprintln(args...)) }
