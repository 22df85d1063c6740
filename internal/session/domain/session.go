package domain

import (
	"context"
	"time"
)

// Session is an anonymous browser session. The id is a bearer token with no
// identity behind it; it exists only to key cart state.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the server-side session store. Get returns (nil, nil) for an
// unknown id.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
