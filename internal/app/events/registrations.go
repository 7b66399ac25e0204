package events

import (
	"mercato/internal/config"
	"mercato/internal/kafka"
	"mercato/internal/logging"
)

// Registrations builds the standard topology: one consumer group per
// business domain, each subscribed to its single topic with interval
// based auto-commit. Group ids follow the <prefix>-<topic> contract so
// replicas of the same role share partition assignment.
func Registrations(cfg config.KafkaConfig, baseLogger logging.Logger) []kafka.Registration {
	newReg := func(topic string, handler kafka.EventHandler) kafka.Registration {
		return kafka.Registration{
			GroupID:              kafka.GroupID(cfg.GroupPrefix, topic),
			Topics:               []string{topic},
			Handler:              handler,
			FromBeginning:        false,
			AutoCommit:           true,
			AutoCommitInterval:   cfg.AutoCommitInterval,
			SessionTimeout:       cfg.SessionTimeout,
			HeartbeatInterval:    cfg.HeartbeatInterval,
			MaxBytesPerPartition: cfg.MaxBytesPerPartition,
		}
	}

	return []kafka.Registration{
		newReg(kafka.TopicUserEvents, NewUserHandler(baseLogger).Handle),
		newReg(kafka.TopicProductEvents, NewProductHandler(baseLogger).Handle),
		newReg(kafka.TopicOrderEvents, NewOrderHandler(baseLogger).Handle),
		newReg(kafka.TopicAPIEvents, NewAPIHandler(baseLogger).Handle),
		newReg(kafka.TopicAuditLogs, NewAuditHandler(baseLogger).Handle),
	}
}
