package service

import (
	"context"
	"time"
)

// Event is a domain event handed to the message bus.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// EventPublisher defines the interface for publishing events to a message bus
type EventPublisher interface {
	// Publish sends a single event. Callers treat failures as non-fatal.
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
