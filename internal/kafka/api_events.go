package kafka

import (
	"context"
	"fmt"
)

// APIRequest describes an inbound HTTP request observed by the service.
type APIRequest struct {
	Method        string `json:"method"`
	Path          string `json:"path"`
	RemoteIP      string `json:"remoteIp,omitempty"`
	UserID        string `json:"userId,omitempty"`
	SessionID     string `json:"sessionId,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// APIResponse describes the outcome of a served request.
type APIResponse struct {
	Method        string `json:"method"`
	Path          string `json:"path"`
	StatusCode    int    `json:"statusCode"`
	DurationMs    int64  `json:"durationMs,omitempty"`
	UserID        string `json:"userId,omitempty"`
	SessionID     string `json:"sessionId,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// APIError describes a request that failed inside the service.
type APIError struct {
	Method        string `json:"method"`
	Path          string `json:"path"`
	StatusCode    int    `json:"statusCode"`
	Error         string `json:"error"`
	UserID        string `json:"userId,omitempty"`
	SessionID     string `json:"sessionId,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

func (p *Producer) PublishAPIRequest(ctx context.Context, req *APIRequest) error {
	return p.publishAPIEvent(ctx, EventAPIRequest, req, req.UserID, req.SessionID, req.CorrelationID)
}

func (p *Producer) PublishAPIResponse(ctx context.Context, resp *APIResponse) error {
	return p.publishAPIEvent(ctx, EventAPIResponse, resp, resp.UserID, resp.SessionID, resp.CorrelationID)
}

func (p *Producer) PublishAPIError(ctx context.Context, apiErr *APIError) error {
	return p.publishAPIEvent(ctx, EventAPIError, apiErr, apiErr.UserID, apiErr.SessionID, apiErr.CorrelationID)
}

func (p *Producer) publishAPIEvent(ctx context.Context, eventType string, data any, userID, sessionID, correlationID string) error {
	md := Metadata{}
	if userID != "" {
		md[MetaUserID] = userID
	}
	if sessionID != "" {
		md[MetaSessionID] = sessionID
	}
	if correlationID != "" {
		md[MetaCorrelationID] = correlationID
	}

	if err := p.PublishEvent(ctx, TopicAPIEvents, eventType, data, md); err != nil {
		return fmt.Errorf("api event: %w", err)
	}
	return nil
}
