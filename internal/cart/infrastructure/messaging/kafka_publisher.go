// Package messaging provides the Kafka-backed cart event publisher.
package messaging

import (
	"context"

	"github.com/olaria/storefront/internal/cart/domain"
	"github.com/olaria/storefront/pkg/mq"
)

type kafkaPublisher struct {
	producer *mq.Producer
	topic    string
}

// NewKafkaPublisher publishes cart events to the configured topic, keyed by
// session id so one session's events stay ordered on a partition.
func NewKafkaPublisher(producer *mq.Producer, topic string) domain.EventPublisher {
	return &kafkaPublisher{producer: producer, topic: topic}
}

func (p *kafkaPublisher) Publish(ctx context.Context, key string, event any) error {
	return p.producer.SendMessage(ctx, p.topic, key, event)
}
