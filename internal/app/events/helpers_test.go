package events

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mercato/internal/kafka"
	"mercato/internal/logging"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

// recordingLogger captures log calls so tests can assert on dispatch
// outcomes without a real sink.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) Info(msg string, args ...any)  { l.record("info", msg, args) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args) }
func (l *recordingLogger) Error(msg string, args ...any) { l.record("error", msg, args) }
func (l *recordingLogger) Debug(msg string, args ...any) { l.record("debug", msg, args) }

func (l *recordingLogger) With(args ...any) logging.Logger { return l }

func (l *recordingLogger) find(level, msg string) (logEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.level == level && e.msg == msg {
			return e, true
		}
	}
	return logEntry{}, false
}

func argValue(e logEntry, key string) (any, bool) {
	for i := 0; i+1 < len(e.args); i += 2 {
		if e.args[i] == key {
			return e.args[i+1], true
		}
	}
	return nil, false
}

func testEnvelope(t *testing.T, eventType string, data any) *kafka.Envelope {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	return &kafka.Envelope{
		ID:        "evt-1",
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    "api-server",
		Data:      raw,
	}
}
