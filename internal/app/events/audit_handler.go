package events

import (
	"context"

	"mercato/internal/kafka"
	"mercato/internal/logging"
)

// AuditHandler processes audit-logs envelopes. Every event type on the
// topic is stored the same way, so there is no per-type dispatch beyond
// the expected audit.log tag.
type AuditHandler struct {
	logger logging.Logger
}

func NewAuditHandler(baseLogger logging.Logger) *AuditHandler {
	return &AuditHandler{
		logger: baseLogger.With("component", "audit_logs_handler"),
	}
}

func (h *AuditHandler) Handle(ctx context.Context, env *kafka.Envelope) error {
	if env.Type != kafka.EventAuditLog {
		h.logger.Warn("unknown audit event type",
			"event_type", env.Type,
			"event_id", env.ID,
		)
		return nil
	}

	rec, err := kafka.DecodePayload[kafka.AuditRecord](env)
	if err != nil {
		return err
	}

	userID := rec.UserID
	if userID == "" {
		userID = "system"
	}
	h.logger.Info("audit log stored",
		"action", rec.Action,
		"resource", rec.Resource,
		"user_id", userID,
		"event_id", env.ID,
	)
	return nil
}
