package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercato/internal/config"
	"mercato/internal/kafka"
	"mercato/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)      {}
func (nopLogger) Warn(msg string, args ...any)      {}
func (nopLogger) Error(msg string, args ...any)     {}
func (nopLogger) Debug(msg string, args ...any)     {}
func (l nopLogger) With(args ...any) logging.Logger { return l }

func checkHealth(t *testing.T, h *Handler) (int, healthResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec.Code, resp
}

func TestCheckDegradedWhenMessagingDown(t *testing.T) {
	svc := kafka.NewService(config.KafkaConfig{Enabled: true}, nopLogger{})
	h := NewHandler(svc, true)

	code, resp := checkHealth(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "degraded", resp.Status)
	assert.False(t, resp.Kafka.Connected)
	assert.False(t, resp.Kafka.ConsumersRunning)
}

func TestCheckOKWhenMessagingDisabled(t *testing.T) {
	svc := kafka.NewService(config.KafkaConfig{Enabled: false}, nopLogger{})
	h := NewHandler(svc, false)

	code, resp := checkHealth(t, h)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}
