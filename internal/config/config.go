package config

import "time"

type HTTPConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8080"`
}

// KafkaConfig carries everything the messaging layer reads at startup.
// Broker list, client id and the per-group timeouts come from the
// environment of the deployment; there is no hot-reload.
type KafkaConfig struct {
	Enabled  bool     `env:"ENABLED" envDefault:"true"`
	Brokers  []string `env:"BROKERS" envDefault:"localhost:9092"`
	ClientID string   `env:"CLIENT_ID" envDefault:"api-server"`

	// Source is the logical emitter identity stamped on every envelope.
	Source string `env:"SOURCE" envDefault:"api-server"`

	// GroupPrefix is combined with the topic name to form consumer group
	// ids, e.g. "api-server-user-events".
	GroupPrefix string `env:"GROUP_PREFIX" envDefault:"api-server"`

	SessionTimeout       time.Duration `env:"SESSION_TIMEOUT" envDefault:"30s"`
	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL" envDefault:"3s"`
	AutoCommitInterval   time.Duration `env:"AUTOCOMMIT_INTERVAL" envDefault:"5s"`
	MaxBytesPerPartition int32         `env:"MAX_BYTES_PER_PARTITION" envDefault:"1048576"`
}

// ObservabilityConfig Observability / telemetry configuration
type ObservabilityConfig struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"mercato-api"`
	ServiceEnv  string `env:"SERVICE_ENV" envDefault:"Development"`
	// e.g. "otel-collector:4317"; telemetry setup is skipped when empty.
	OtelEndpoint string `env:"ENDPOINT"`
}

type Config struct {
	Environment string `env:"APP_ENV" envDefault:"Development"`

	HTTP          HTTPConfig          `envPrefix:"HTTP_"`
	Kafka         KafkaConfig         `envPrefix:"KAFKA_"`
	Observability ObservabilityConfig `envPrefix:"OTEL_"`
}
