package domain

import (
	"context"
	"time"
)

// EventPublisher pushes cart events to the message bus. Publishing is
// best-effort and happens after the mutation committed.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

type ItemAddedEvent struct {
	SessionID string    `json:"session_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

type ItemUpdatedEvent struct {
	SessionID string    `json:"session_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

type ItemRemovedEvent struct {
	SessionID string    `json:"session_id"`
	ProductID uint      `json:"product_id"`
	Timestamp time.Time `json:"timestamp"`
}
