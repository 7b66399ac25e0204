package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"mercato/internal/config"
	"mercato/internal/logging"
)

// Service owns the single producer connection and every consumer group.
// It is constructed exactly once by the process entry point and passed by
// handle to anything needing broker access; no other component holds a
// connection directly.
type Service struct {
	cfg      config.KafkaConfig
	logger   logging.Logger
	producer *Producer

	mu      sync.Mutex
	groups  []*consumerGroup
	running bool
}

func NewService(cfg config.KafkaConfig, baseLogger logging.Logger) *Service {
	return &Service{
		cfg:      cfg,
		logger:   baseLogger.With("component", "kafka_service"),
		producer: NewProducer(cfg, baseLogger),
	}
}

// Producer returns the shared producer handle.
func (s *Service) Producer() *Producer {
	return s.producer
}

// Start connects the shared producer, then starts every registration
// concurrently. A failure in any registration tears down whatever already
// started and fails Start as a whole: a partially-subscribed consumer
// fleet is worse than a clear boot failure.
func (s *Service) Start(ctx context.Context, regs []Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.logger.Info("kafka service already running")
		return nil
	}

	if err := s.producer.Connect(ctx); err != nil {
		return err
	}

	groups := make([]*consumerGroup, len(regs))
	errs := make([]error, len(regs))

	var wg sync.WaitGroup
	for i, reg := range regs {
		groups[i] = newConsumerGroup(reg, s.logger)

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = groups[i].start(ctx, s.cfg)
		}(i)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		for _, g := range groups {
			_ = g.stop()
		}
		_ = s.producer.Disconnect()
		return fmt.Errorf("start consumer groups: %w", err)
	}

	s.groups = groups
	s.running = true
	s.logger.Info("all kafka consumers started", "groups", len(groups))
	return nil
}

// Stop disconnects every consumer and the producer. Idempotent and safe
// to call before Start. Shutdown is drain-oriented: subscriber close
// waits for in-flight handlers rather than killing them.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, g := range s.groups {
		if err := g.stop(); err != nil {
			errs = append(errs, err)
		}
	}
	s.groups = nil

	if err := s.producer.Disconnect(); err != nil {
		errs = append(errs, err)
	}

	if s.running {
		s.running = false
		s.logger.Info("kafka service stopped")
	}

	return errors.Join(errs...)
}

// GroupStatus reports one consumer group for the health surface.
type GroupStatus struct {
	GroupID string `json:"groupId"`
	Running bool   `json:"running"`
}

// Status is the aggregate state used by liveness/readiness reporting. A
// disconnected producer or a non-running group reports as degraded, never
// hidden.
type Status struct {
	Running           bool          `json:"running"`
	ProducerConnected bool          `json:"producerConnected"`
	Groups            []GroupStatus `json:"groups"`
}

func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Running:           s.running,
		ProducerConnected: s.producer.Connected(),
		Groups:            make([]GroupStatus, 0, len(s.groups)),
	}
	for _, g := range s.groups {
		st.Groups = append(st.Groups, GroupStatus{
			GroupID: g.reg.GroupID,
			Running: g.isRunning(),
		})
	}
	return st
}
