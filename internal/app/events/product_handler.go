package events

import (
	"context"

	"mercato/internal/domain/product"
	"mercato/internal/kafka"
	"mercato/internal/logging"
)

// ProductHandler dispatches product-events envelopes to the matching
// business handler.
type ProductHandler struct {
	logger logging.Logger
}

func NewProductHandler(baseLogger logging.Logger) *ProductHandler {
	return &ProductHandler{
		logger: baseLogger.With("component", "product_events_handler"),
	}
}

func (h *ProductHandler) Handle(ctx context.Context, env *kafka.Envelope) error {
	switch env.Type {
	case kafka.EventProductCreated:
		return h.productCreated(env)
	case kafka.EventProductUpdated:
		return h.productUpdated(env)
	case kafka.EventProductDeleted:
		return h.productDeleted(env)
	case kafka.EventProductStockUpdated:
		return h.productStockUpdated(env)
	default:
		h.logger.Warn("unknown product event type",
			"event_type", env.Type,
			"event_id", env.ID,
		)
		return nil
	}
}

func (h *ProductHandler) productCreated(env *kafka.Envelope) error {
	p, err := kafka.DecodePayload[product.Product](env)
	if err != nil {
		return err
	}
	h.logger.Info("product created event processed", "name", p.Name, "event_id", env.ID)
	return nil
}

func (h *ProductHandler) productUpdated(env *kafka.Envelope) error {
	p, err := kafka.DecodePayload[product.Product](env)
	if err != nil {
		return err
	}
	h.logger.Info("product updated event processed", "name", p.Name, "event_id", env.ID)
	return nil
}

func (h *ProductHandler) productDeleted(env *kafka.Envelope) error {
	p, err := kafka.DecodePayload[product.Product](env)
	if err != nil {
		return err
	}
	h.logger.Info("product deleted event processed", "name", p.Name, "event_id", env.ID)
	return nil
}

func (h *ProductHandler) productStockUpdated(env *kafka.Envelope) error {
	p, err := kafka.DecodePayload[product.Product](env)
	if err != nil {
		return err
	}
	h.logger.Info("product stock updated event processed",
		"name", p.Name,
		"quantity", p.Quantity,
		"event_id", env.ID,
	)
	return nil
}
