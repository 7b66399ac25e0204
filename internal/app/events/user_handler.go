package events

import (
	"context"

	"mercato/internal/domain/user"
	"mercato/internal/kafka"
	"mercato/internal/logging"
)

// UserHandler dispatches user-events envelopes to the matching business
// handler. Unknown event types are forward-compatible no-ops.
type UserHandler struct {
	logger logging.Logger
}

func NewUserHandler(baseLogger logging.Logger) *UserHandler {
	return &UserHandler{
		logger: baseLogger.With("component", "user_events_handler"),
	}
}

func (h *UserHandler) Handle(ctx context.Context, env *kafka.Envelope) error {
	switch env.Type {
	case kafka.EventUserCreated:
		return h.userCreated(env)
	case kafka.EventUserUpdated:
		return h.userUpdated(env)
	case kafka.EventUserDeleted:
		return h.userDeleted(env)
	case kafka.EventUserDeactivated:
		return h.userDeactivated(env)
	default:
		h.logger.Warn("unknown user event type",
			"event_type", env.Type,
			"event_id", env.ID,
		)
		return nil
	}
}

func (h *UserHandler) userCreated(env *kafka.Envelope) error {
	u, err := kafka.DecodePayload[user.User](env)
	if err != nil {
		return err
	}
	h.logger.Info("user created event processed", "email", u.Email, "event_id", env.ID)
	return nil
}

func (h *UserHandler) userUpdated(env *kafka.Envelope) error {
	u, err := kafka.DecodePayload[user.User](env)
	if err != nil {
		return err
	}
	h.logger.Info("user updated event processed", "email", u.Email, "event_id", env.ID)
	return nil
}

func (h *UserHandler) userDeleted(env *kafka.Envelope) error {
	u, err := kafka.DecodePayload[user.User](env)
	if err != nil {
		return err
	}
	h.logger.Info("user deleted event processed", "email", u.Email, "event_id", env.ID)
	return nil
}

func (h *UserHandler) userDeactivated(env *kafka.Envelope) error {
	u, err := kafka.DecodePayload[user.User](env)
	if err != nil {
		return err
	}
	h.logger.Info("user deactivated event processed", "email", u.Email, "event_id", env.ID)
	return nil
}
