package kafka

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wkafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/garsue/watermillzap"

	"mercato/internal/config"
	"mercato/internal/logging"
)

// EventHandler processes one decoded envelope. Returning an error leaves
// the message uncommitted so the broker redelivers it (at-least-once).
// Handlers must treat unknown event types as a no-op, not an error.
type EventHandler func(ctx context.Context, env *Envelope) error

// Registration binds one consumer group to its topics and handler. One
// registration per logical business domain in the current topology,
// though a group may subscribe to any number of topics.
type Registration struct {
	GroupID string
	Topics  []string
	Handler EventHandler

	FromBeginning      bool
	AutoCommit         bool
	AutoCommitInterval time.Duration

	SessionTimeout       time.Duration
	HeartbeatInterval    time.Duration
	MaxBytesPerPartition int32
}

// newSubscriber builds the real Kafka subscriber for a registration.
// Tests swap it for an in-memory pub/sub.
var newSubscriber = func(cfg config.KafkaConfig, reg Registration, logger watermill.LoggerAdapter) (message.Subscriber, error) {
	sc := wkafka.DefaultSaramaSubscriberConfig()
	sc.ClientID = cfg.ClientID
	sc.Consumer.Offsets.AutoCommit.Enable = reg.AutoCommit
	if reg.AutoCommitInterval > 0 {
		sc.Consumer.Offsets.AutoCommit.Interval = reg.AutoCommitInterval
	}
	if reg.SessionTimeout > 0 {
		sc.Consumer.Group.Session.Timeout = reg.SessionTimeout
	}
	if reg.HeartbeatInterval > 0 {
		sc.Consumer.Group.Heartbeat.Interval = reg.HeartbeatInterval
	}
	if reg.MaxBytesPerPartition > 0 {
		sc.Consumer.Fetch.Default = reg.MaxBytesPerPartition
	}
	if reg.FromBeginning {
		sc.Consumer.Offsets.Initial = sarama.OffsetOldest
	}

	return wkafka.NewSubscriber(wkafka.SubscriberConfig{
		Brokers:               cfg.Brokers,
		Unmarshaler:           marshaler,
		ConsumerGroup:         reg.GroupID,
		OverwriteSaramaConfig: sc,
		NackResendSleep:       5 * time.Second,
		ReconnectRetrySleep:   10 * time.Second,
	}, logger)
}

// consumerGroup runs one registration: a dedicated subscriber bound to
// the group id, plus one consume loop per subscribed topic. Messages
// within a partition are delivered sequentially and the next one is not
// handed over until the previous Ack/Nack settles.
type consumerGroup struct {
	reg    Registration
	logger logging.Logger

	subscriber message.Subscriber
	wg         sync.WaitGroup
	running    atomic.Bool
}

func newConsumerGroup(reg Registration, baseLogger logging.Logger) *consumerGroup {
	return &consumerGroup{
		reg: reg,
		logger: baseLogger.With(
			"component", "kafka_consumer",
			"group_id", reg.GroupID,
		),
	}
}

// start connects and subscribes to every topic of the registration.
// Fail-fast: any subscribe error aborts the whole start.
func (g *consumerGroup) start(ctx context.Context, cfg config.KafkaConfig) error {
	wmLogger := watermillzap.NewLogger(logging.AsZap(g.logger))

	subscriber, err := newSubscriber(cfg, g.reg, wmLogger)
	if err != nil {
		return fmt.Errorf("create subscriber for group %s: %w", g.reg.GroupID, err)
	}
	g.subscriber = subscriber

	for _, topic := range g.reg.Topics {
		messages, err := subscriber.Subscribe(ctx, topic)
		if err != nil {
			_ = subscriber.Close()
			return fmt.Errorf("subscribe group %s to topic %s: %w", g.reg.GroupID, topic, err)
		}

		g.logger.Info("subscribed to topic", "topic", topic)

		g.wg.Add(1)
		go g.consume(topic, messages)
	}

	g.running.Store(true)
	return nil
}

func (g *consumerGroup) consume(topic string, messages <-chan *message.Message) {
	defer g.wg.Done()
	for msg := range messages {
		g.handleMessage(topic, msg)
	}
}

// handleMessage acks malformed messages so the stream continues past
// them, and nacks handler failures so the offset is never committed past
// an unprocessed message.
func (g *consumerGroup) handleMessage(topic string, msg *message.Message) {
	env, err := DecodeEnvelope(msg.Payload)
	if err != nil {
		messagesDropped.WithLabelValues(topic, g.reg.GroupID).Inc()
		g.logger.Error("dropping malformed message",
			"topic", topic,
			"message_uuid", msg.UUID,
			"error", err,
		)
		msg.Ack()
		return
	}

	messagesConsumed.WithLabelValues(topic, g.reg.GroupID).Inc()
	g.logger.Debug("received message",
		"topic", topic,
		"event_type", env.Type,
		"event_id", env.ID,
	)

	start := time.Now()
	if err := g.reg.Handler(msg.Context(), env); err != nil {
		handlerFailures.WithLabelValues(topic, g.reg.GroupID).Inc()
		g.logger.Error("handler failed, message will be redelivered",
			"topic", topic,
			"event_type", env.Type,
			"event_id", env.ID,
			"error", err,
		)
		msg.Nack()
		return
	}

	processingDuration.WithLabelValues(env.Type, topic).Observe(time.Since(start).Seconds())
	msg.Ack()
}

// stop closes the subscriber and waits for in-flight handlers to drain.
// Safe to call repeatedly or before start.
func (g *consumerGroup) stop() error {
	g.running.Store(false)

	if g.subscriber == nil {
		return nil
	}

	err := g.subscriber.Close()
	g.wg.Wait()
	if err != nil {
		return fmt.Errorf("close subscriber for group %s: %w", g.reg.GroupID, err)
	}

	g.logger.Info("consumer group stopped")
	return nil
}

func (g *consumerGroup) isRunning() bool {
	return g.running.Load()
}
