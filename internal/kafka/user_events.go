package kafka

import (
	"context"
	"fmt"

	"mercato/internal/domain/user"
)

// User lifecycle publishers. These are pure envelope builders: they fix
// the event type and topic, map correlation fields into metadata and
// delegate to PublishEvent. Payload contents are never validated here.

func (p *Producer) PublishUserCreated(ctx context.Context, u *user.User, correlationID string) error {
	return p.publishUserEvent(ctx, EventUserCreated, u, correlationID)
}

func (p *Producer) PublishUserUpdated(ctx context.Context, u *user.User, correlationID string) error {
	return p.publishUserEvent(ctx, EventUserUpdated, u, correlationID)
}

func (p *Producer) PublishUserDeleted(ctx context.Context, u *user.User, correlationID string) error {
	return p.publishUserEvent(ctx, EventUserDeleted, u, correlationID)
}

func (p *Producer) PublishUserDeactivated(ctx context.Context, u *user.User, correlationID string) error {
	return p.publishUserEvent(ctx, EventUserDeactivated, u, correlationID)
}

func (p *Producer) publishUserEvent(ctx context.Context, eventType string, u *user.User, correlationID string) error {
	md := Metadata{MetaUserID: u.ID}
	if correlationID != "" {
		md[MetaCorrelationID] = correlationID
	}

	if err := p.PublishEvent(ctx, TopicUserEvents, eventType, u, md); err != nil {
		return fmt.Errorf("user event: %w", err)
	}
	return nil
}
