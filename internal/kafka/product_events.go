package kafka

import (
	"context"
	"fmt"

	"mercato/internal/domain/product"
)

func (p *Producer) PublishProductCreated(ctx context.Context, prod *product.Product, correlationID string) error {
	return p.publishProductEvent(ctx, EventProductCreated, prod, correlationID)
}

func (p *Producer) PublishProductUpdated(ctx context.Context, prod *product.Product, correlationID string) error {
	return p.publishProductEvent(ctx, EventProductUpdated, prod, correlationID)
}

func (p *Producer) PublishProductDeleted(ctx context.Context, prod *product.Product, correlationID string) error {
	return p.publishProductEvent(ctx, EventProductDeleted, prod, correlationID)
}

// PublishProductStockUpdated republishes the full product document with
// its new quantity.
func (p *Producer) PublishProductStockUpdated(ctx context.Context, prod *product.Product, correlationID string) error {
	return p.publishProductEvent(ctx, EventProductStockUpdated, prod, correlationID)
}

func (p *Producer) publishProductEvent(ctx context.Context, eventType string, prod *product.Product, correlationID string) error {
	md := Metadata{MetaProductID: prod.ID}
	if correlationID != "" {
		md[MetaCorrelationID] = correlationID
	}

	if err := p.PublishEvent(ctx, TopicProductEvents, eventType, prod, md); err != nil {
		return fmt.Errorf("product event: %w", err)
	}
	return nil
}
