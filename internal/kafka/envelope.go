package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Metadata is the open-ended correlation mapping attached to an envelope.
type Metadata map[string]string

// Envelope is the wire representation of a domain event. Every field
// except Metadata must be present on any envelope that leaves the
// producer or is accepted by a consumer. Envelopes are immutable once
// constructed.
type Envelope struct {
	ID        string          `json:"id" validate:"required"`
	Type      string          `json:"type" validate:"required"`
	Timestamp time.Time       `json:"timestamp" validate:"required"`
	Source    string          `json:"source" validate:"required"`
	Data      json.RawMessage `json:"data" validate:"required"`
	Metadata  Metadata        `json:"metadata,omitempty"`
}

// Header keys mirrored into transport metadata so brokers and tooling can
// inspect a message without deserializing the body.
const (
	HeaderEventType = "eventType"
	HeaderEventID   = "eventId"
	HeaderTimestamp = "timestamp"
	HeaderSource    = "source"
)

var validate = validator.New()

// DecodeError marks a message body that cannot become a valid envelope.
// Such a message is logged and dropped; it never reaches a handler.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode envelope: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// newEnvelope builds a complete envelope from a caller-supplied event.
// The id and timestamp are always assigned here, never by the caller.
func newEnvelope(eventType, source string, data any, md Metadata) (*Envelope, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal event payload: %w", err)
	}

	return &Envelope{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    source,
		Data:      payload,
		Metadata:  md,
	}, nil
}

// Message serializes the envelope as the message body and mirrors the
// identifying fields into transport headers. The message UUID is the
// envelope id, which also serves as the partition key.
func (e *Envelope) Message() (*message.Message, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}

	msg := message.NewMessage(e.ID, body)
	msg.Metadata.Set(HeaderEventType, e.Type)
	msg.Metadata.Set(HeaderEventID, e.ID)
	msg.Metadata.Set(HeaderTimestamp, e.Timestamp.Format(time.RFC3339Nano))
	msg.Metadata.Set(HeaderSource, e.Source)

	return msg, nil
}

// DecodeEnvelope parses a message body into an envelope and checks the
// required-field invariant. Failures are local to one message.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	if len(body) == 0 {
		return nil, &DecodeError{Cause: errors.New("message body is empty")}
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &DecodeError{Cause: fmt.Errorf("unmarshal body: %w", err)}
	}

	if err := validate.Struct(&env); err != nil {
		return nil, &DecodeError{Cause: fmt.Errorf("missing required fields: %w", err)}
	}
	// json.RawMessage holding a literal null passes the length check above
	// but carries no payload.
	if string(env.Data) == "null" {
		return nil, &DecodeError{Cause: errors.New("data field is null")}
	}

	return &env, nil
}

// DecodePayload unmarshals the envelope data into a typed payload.
func DecodePayload[T any](e *Envelope) (*T, error) {
	var v T
	if err := json.Unmarshal(e.Data, &v); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return &v, nil
}
