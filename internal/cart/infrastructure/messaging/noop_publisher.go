package messaging

import (
	"context"

	"github.com/olaria/storefront/internal/cart/domain"
)

type noopPublisher struct{}

// NewNoopPublisher discards events. Used when Kafka is disabled and in
// tests.
func NewNoopPublisher() domain.EventPublisher {
	return &noopPublisher{}
}

func (p *noopPublisher) Publish(ctx context.Context, key string, event any) error {
	return nil
}
