package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wkafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/garsue/watermillzap"

	"mercato/internal/config"
	"mercato/internal/logging"
)

// ErrNotConnected is returned when an event is published before Connect
// has completed. No network I/O happens in that case.
var ErrNotConnected = errors.New("producer not connected")

// marshaler keys every record by the envelope id, so retries from the
// idempotent producer always land on the same partition.
var marshaler = wkafka.NewWithPartitioningMarshaler(
	func(topic string, msg *message.Message) (string, error) {
		return msg.UUID, nil
	},
)

// newPublisher builds the real Kafka publisher. Tests swap it for an
// in-memory pub/sub.
var newPublisher = func(cfg config.KafkaConfig, logger watermill.LoggerAdapter) (message.Publisher, error) {
	sc := wkafka.DefaultSaramaSyncPublisherConfig()
	sc.ClientID = cfg.ClientID
	// Strict ordering and exactly-once-per-partition delivery: a single
	// in-flight request plus idempotent mode means broker-side retries
	// cannot duplicate or reorder messages within a partition.
	sc.Producer.Idempotent = true
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Net.MaxOpenRequests = 1

	return wkafka.NewPublisher(wkafka.PublisherConfig{
		Brokers:               cfg.Brokers,
		Marshaler:             marshaler,
		OverwriteSaramaConfig: sc,
	}, logger)
}

// Producer maintains the one long-lived publisher connection and turns
// domain events into envelopes on their way to the broker.
type Producer struct {
	cfg    config.KafkaConfig
	logger logging.Logger

	mu        sync.Mutex
	publisher message.Publisher
}

func NewProducer(cfg config.KafkaConfig, baseLogger logging.Logger) *Producer {
	return &Producer{
		cfg:    cfg,
		logger: baseLogger.With("component", "kafka_producer"),
	}
}

// Connect establishes the broker session. Calling it while already
// connected is a no-op.
func (p *Producer) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.publisher != nil {
		p.logger.Info("kafka producer already connected")
		return nil
	}

	wmLogger := watermillzap.NewLogger(logging.AsZap(p.logger))

	publisher, err := newPublisher(p.cfg, wmLogger)
	if err != nil {
		return fmt.Errorf("create kafka publisher: %w", err)
	}

	p.publisher = publisher
	p.logger.Info("kafka producer connected", "brokers", p.cfg.Brokers)
	return nil
}

// PublishEvent wraps data into a fresh envelope and publishes it to the
// topic. The envelope id is assigned here and doubles as the message key.
func (p *Producer) PublishEvent(ctx context.Context, topic, eventType string, data any, md Metadata) error {
	p.mu.Lock()
	publisher := p.publisher
	p.mu.Unlock()

	if publisher == nil {
		return fmt.Errorf("publish %s to %s: %w", eventType, topic, ErrNotConnected)
	}

	env, err := newEnvelope(eventType, p.cfg.Source, data, md)
	if err != nil {
		return err
	}

	msg, err := env.Message()
	if err != nil {
		return err
	}
	msg.SetContext(ctx)

	if err := publisher.Publish(topic, msg); err != nil {
		publishFailures.WithLabelValues(topic).Inc()
		p.logger.Error("failed to publish event",
			"topic", topic,
			"event_type", eventType,
			"error", err,
		)
		return fmt.Errorf("publish %s to %s: %w", eventType, topic, err)
	}

	messagesProduced.WithLabelValues(topic, eventType).Inc()
	p.logger.Debug("published event",
		"topic", topic,
		"event_type", eventType,
		"event_id", env.ID,
	)
	return nil
}

// Disconnect tears the session down. Safe to call repeatedly or before
// Connect.
func (p *Producer) Disconnect() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.publisher == nil {
		return nil
	}

	err := p.publisher.Close()
	p.publisher = nil
	if err != nil {
		return fmt.Errorf("close kafka publisher: %w", err)
	}

	p.logger.Info("kafka producer disconnected")
	return nil
}

// Connected reports the point-in-time connection flag without blocking.
func (p *Producer) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.publisher != nil
}
