package kafka

import (
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"mercato/internal/config"
	"mercato/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (nopLogger) Debug(msg string, args ...any) {}
func (l nopLogger) With(args ...any) logging.Logger {
	return l
}

func testKafkaConfig() config.KafkaConfig {
	return config.KafkaConfig{
		Enabled:     true,
		Brokers:     []string{"localhost:9092"},
		ClientID:    "test-client",
		Source:      "api-server",
		GroupPrefix: "api-server",
	}
}

func newRawMessage(body string) *message.Message {
	return message.NewMessage(watermill.NewUUID(), []byte(body))
}

func newTestPubSub(t *testing.T) *gochannel.GoChannel {
	t.Helper()
	return gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 16,
		Persistent:          true,
	}, watermill.NopLogger{})
}

// overridePublisher routes producer connects to the in-memory pub/sub and
// counts how often the factory runs.
func overridePublisher(t *testing.T, pubsub *gochannel.GoChannel) *int {
	t.Helper()

	calls := new(int)
	orig := newPublisher
	newPublisher = func(cfg config.KafkaConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
		*calls++
		return pubsub, nil
	}
	t.Cleanup(func() { newPublisher = orig })
	return calls
}

func overrideSubscriber(t *testing.T, pubsub *gochannel.GoChannel) {
	t.Helper()

	orig := newSubscriber
	newSubscriber = func(cfg config.KafkaConfig, reg Registration, logger watermill.LoggerAdapter) (message.Subscriber, error) {
		return pubsub, nil
	}
	t.Cleanup(func() { newSubscriber = orig })
}
