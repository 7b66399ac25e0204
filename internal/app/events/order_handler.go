package events

import (
	"context"

	"mercato/internal/domain/order"
	"mercato/internal/kafka"
	"mercato/internal/logging"
)

// OrderHandler dispatches order-events envelopes to the matching business
// handler.
type OrderHandler struct {
	logger logging.Logger
}

func NewOrderHandler(baseLogger logging.Logger) *OrderHandler {
	return &OrderHandler{
		logger: baseLogger.With("component", "order_events_handler"),
	}
}

func (h *OrderHandler) Handle(ctx context.Context, env *kafka.Envelope) error {
	switch env.Type {
	case kafka.EventOrderCreated:
		return h.orderCreated(env)
	case kafka.EventOrderUpdated:
		return h.orderUpdated(env)
	case kafka.EventOrderCancelled:
		return h.orderCancelled(env)
	case kafka.EventOrderStatusChanged:
		return h.orderStatusChanged(env)
	default:
		h.logger.Warn("unknown order event type",
			"event_type", env.Type,
			"event_id", env.ID,
		)
		return nil
	}
}

func (h *OrderHandler) orderCreated(env *kafka.Envelope) error {
	o, err := kafka.DecodePayload[order.Order](env)
	if err != nil {
		return err
	}
	h.logger.Info("order created event processed",
		"order_id", o.ID,
		"total_amount", o.TotalAmount,
		"event_id", env.ID,
	)
	return nil
}

func (h *OrderHandler) orderUpdated(env *kafka.Envelope) error {
	o, err := kafka.DecodePayload[order.Order](env)
	if err != nil {
		return err
	}
	h.logger.Info("order updated event processed", "order_id", o.ID, "event_id", env.ID)
	return nil
}

func (h *OrderHandler) orderCancelled(env *kafka.Envelope) error {
	o, err := kafka.DecodePayload[order.Order](env)
	if err != nil {
		return err
	}
	h.logger.Info("order cancelled event processed", "order_id", o.ID, "event_id", env.ID)
	return nil
}

func (h *OrderHandler) orderStatusChanged(env *kafka.Envelope) error {
	o, err := kafka.DecodePayload[order.Order](env)
	if err != nil {
		return err
	}
	h.logger.Info("order status changed event processed",
		"order_id", o.ID,
		"status", o.Status,
		"event_id", env.ID,
	)
	return nil
}
