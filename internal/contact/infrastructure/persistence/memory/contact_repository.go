// Package memory holds an in-memory message repository for tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/olaria/storefront/internal/contact/domain"
)

type MessageRepository struct {
	mu       sync.Mutex
	messages []*domain.Message
	nextID   uint
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{nextID: 1}
}

func (r *MessageRepository) Save(ctx context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	msg.ID = r.nextID
	r.nextID++
	msg.CreatedAt = time.Now().UTC()
	cp := *msg
	r.messages = append(r.messages, &cp)
	return nil
}

// Messages returns the stored messages (test helper).
func (r *MessageRepository) Messages() []*domain.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Message, len(r.messages))
	copy(out, r.messages)
	return out
}
