package service

import (
	"context"
	"time"
)

// DomainEvent is a fact about the plan broadcast to interested consumers.
type DomainEvent struct {
	Type       string            `json:"type"`
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	UserID     int64             `json:"user_id,omitempty"`
	StartupID  int64             `json:"startup_id,omitempty"`
	EntityID   int64             `json:"entity_id,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends the event. Callers treat failures as non-fatal.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
