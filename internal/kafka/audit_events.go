package kafka

import (
	"context"
	"fmt"
)

// AuditRecord captures who did what to which resource.
type AuditRecord struct {
	Action        string `json:"action"`
	Resource      string `json:"resource"`
	ResourceID    string `json:"resourceId,omitempty"`
	UserID        string `json:"userId,omitempty"`
	SessionID     string `json:"sessionId,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

func (p *Producer) PublishAuditLog(ctx context.Context, rec *AuditRecord) error {
	md := Metadata{}
	if rec.UserID != "" {
		md[MetaUserID] = rec.UserID
	}
	if rec.SessionID != "" {
		md[MetaSessionID] = rec.SessionID
	}
	if rec.CorrelationID != "" {
		md[MetaCorrelationID] = rec.CorrelationID
	}

	if err := p.PublishEvent(ctx, TopicAuditLogs, EventAuditLog, rec, md); err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
