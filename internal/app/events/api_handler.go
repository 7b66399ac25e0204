package events

import (
	"context"

	"mercato/internal/kafka"
	"mercato/internal/logging"
)

// APIHandler dispatches api-events envelopes to the matching business
// handler.
type APIHandler struct {
	logger logging.Logger
}

func NewAPIHandler(baseLogger logging.Logger) *APIHandler {
	return &APIHandler{
		logger: baseLogger.With("component", "api_events_handler"),
	}
}

func (h *APIHandler) Handle(ctx context.Context, env *kafka.Envelope) error {
	switch env.Type {
	case kafka.EventAPIRequest:
		return h.apiRequest(env)
	case kafka.EventAPIResponse:
		return h.apiResponse(env)
	case kafka.EventAPIError:
		return h.apiError(env)
	default:
		h.logger.Warn("unknown api event type",
			"event_type", env.Type,
			"event_id", env.ID,
		)
		return nil
	}
}

func (h *APIHandler) apiRequest(env *kafka.Envelope) error {
	req, err := kafka.DecodePayload[kafka.APIRequest](env)
	if err != nil {
		return err
	}
	h.logger.Info("api request event processed",
		"method", req.Method,
		"path", req.Path,
		"event_id", env.ID,
	)
	return nil
}

func (h *APIHandler) apiResponse(env *kafka.Envelope) error {
	resp, err := kafka.DecodePayload[kafka.APIResponse](env)
	if err != nil {
		return err
	}
	h.logger.Info("api response event processed",
		"status_code", resp.StatusCode,
		"path", resp.Path,
		"event_id", env.ID,
	)
	return nil
}

func (h *APIHandler) apiError(env *kafka.Envelope) error {
	apiErr, err := kafka.DecodePayload[kafka.APIError](env)
	if err != nil {
		return err
	}
	h.logger.Info("api error event processed",
		"status_code", apiErr.StatusCode,
		"path", apiErr.Path,
		"error", apiErr.Error,
		"event_id", env.ID,
	)
	return nil
}
