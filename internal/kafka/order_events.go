package kafka

import (
	"context"
	"fmt"

	"mercato/internal/domain/order"
)

func (p *Producer) PublishOrderCreated(ctx context.Context, o *order.Order, correlationID string) error {
	return p.publishOrderEvent(ctx, EventOrderCreated, o, correlationID)
}

func (p *Producer) PublishOrderUpdated(ctx context.Context, o *order.Order, correlationID string) error {
	return p.publishOrderEvent(ctx, EventOrderUpdated, o, correlationID)
}

func (p *Producer) PublishOrderCancelled(ctx context.Context, o *order.Order, correlationID string) error {
	return p.publishOrderEvent(ctx, EventOrderCancelled, o, correlationID)
}

func (p *Producer) PublishOrderStatusChanged(ctx context.Context, o *order.Order, correlationID string) error {
	return p.publishOrderEvent(ctx, EventOrderStatusChanged, o, correlationID)
}

func (p *Producer) publishOrderEvent(ctx context.Context, eventType string, o *order.Order, correlationID string) error {
	md := Metadata{
		MetaOrderID: o.ID,
		MetaUserID:  o.UserID,
	}
	if correlationID != "" {
		md[MetaCorrelationID] = correlationID
	}

	if err := p.PublishEvent(ctx, TopicOrderEvents, eventType, o, md); err != nil {
		return fmt.Errorf("order event: %w", err)
	}
	return nil
}
