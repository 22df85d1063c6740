package domain

import "context"

// CartRepository persists cart items keyed by (session, product). Lookups by
// item id are session-scoped so sessions can never touch each other's rows.
type CartRepository interface {
	// GetByID resolves an item id within a session, ErrCartItemNotFound
	// otherwise.
	GetByID(ctx context.Context, sessionID string, id uint) (*CartItem, error)
	// GetBySessionAndProduct returns the item for the pair,
	// ErrCartItemNotFound when the pair is absent.
	GetBySessionAndProduct(ctx context.Context, sessionID string, productID uint) (*CartItem, error)
	// ListBySession returns the session's items in insertion order.
	ListBySession(ctx context.Context, sessionID string) ([]*CartItem, error)
	// Save creates or updates a single item.
	Save(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, item *CartItem) error
	// CountBySession sums quantities across the session, 0 when empty.
	CountBySession(ctx context.Context, sessionID string) (int, error)
}
