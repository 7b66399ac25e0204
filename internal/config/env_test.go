package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)

	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "api-server", cfg.Kafka.ClientID)
	assert.Equal(t, "api-server", cfg.Kafka.Source)
	assert.Equal(t, "api-server", cfg.Kafka.GroupPrefix)
	assert.Equal(t, 30*time.Second, cfg.Kafka.SessionTimeout)
	assert.Equal(t, 3*time.Second, cfg.Kafka.HeartbeatInterval)
	assert.Equal(t, 5*time.Second, cfg.Kafka.AutoCommitInterval)
	assert.Equal(t, int32(1048576), cfg.Kafka.MaxBytesPerPartition)

	assert.Equal(t, "mercato-api", cfg.Observability.ServiceName)
	assert.Empty(t, cfg.Observability.OtelEndpoint)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_ENABLED", "false")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("KAFKA_GROUP_PREFIX", "billing")
	t.Setenv("KAFKA_SESSION_TIMEOUT", "45s")
	t.Setenv("OTEL_ENDPOINT", "otel-collector:4317")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "billing", cfg.Kafka.GroupPrefix)
	assert.Equal(t, 45*time.Second, cfg.Kafka.SessionTimeout)
	assert.Equal(t, "otel-collector:4317", cfg.Observability.OtelEndpoint)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("KAFKA_SESSION_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}
