package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/olaria/storefront/internal/session/domain"
)

const keyPrefix = "storefront:session:"

type sessionStore struct {
	client redis.UniversalClient
}

// NewSessionStore keeps sessions as JSON values under a key prefix; expiry
// is whatever TTL the caller saves with.
func NewSessionStore(client redis.UniversalClient) domain.Store {
	return &sessionStore{client: client}
}

func (s *sessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *sessionStore) Save(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+session.ID, data, ttl).Err()
}

func (s *sessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
