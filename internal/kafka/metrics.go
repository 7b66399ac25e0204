package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesProduced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kafka_messages_produced_total",
		Help: "Total number of Kafka messages produced",
	}, []string{"topic", "event_type"})

	publishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kafka_publish_failures_total",
		Help: "Total number of failed Kafka publishes",
	}, []string{"topic"})

	messagesConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kafka_messages_consumed_total",
		Help: "Total number of Kafka messages consumed",
	}, []string{"topic", "consumer_group"})

	messagesDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kafka_messages_dropped_total",
		Help: "Total number of malformed Kafka messages dropped on decode",
	}, []string{"topic", "consumer_group"})

	handlerFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kafka_handler_failures_total",
		Help: "Total number of event handler failures",
	}, []string{"topic", "consumer_group"})

	processingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "event_processing_duration_seconds",
		Help:    "Duration of event processing in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1, 2, 5},
	}, []string{"event_type", "topic"})
)
