// Package memory holds an in-memory cart repository for tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/olaria/storefront/internal/cart/domain"
)

type CartRepository struct {
	mu     sync.RWMutex
	items  map[uint]*domain.CartItem
	nextID uint
}

func NewCartRepository() *CartRepository {
	return &CartRepository{items: make(map[uint]*domain.CartItem), nextID: 1}
}

func (r *CartRepository) GetByID(ctx context.Context, sessionID string, id uint) (*domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok || item.SessionID != sessionID {
		return nil, domain.ErrCartItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *CartRepository) GetBySessionAndProduct(ctx context.Context, sessionID string, productID uint) (*domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.SessionID == sessionID && item.ProductID == productID {
			cp := *item
			return &cp, nil
		}
	}
	return nil, domain.ErrCartItemNotFound
}

func (r *CartRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.CartItem
	for _, item := range r.items {
		if item.SessionID == sessionID {
			cp := *item
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AddedAt.Equal(out[j].AddedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].AddedAt.Before(out[j].AddedAt)
	})
	return out, nil
}

func (r *CartRepository) Save(ctx context.Context, item *domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == 0 {
		item.ID = r.nextID
		r.nextID++
		item.AddedAt = time.Now().UTC()
	}
	cp := *item
	r.items[cp.ID] = &cp
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, item *domain.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[item.ID]
	if ok && stored.SessionID == item.SessionID {
		delete(r.items, item.ID)
	}
	return nil
}

func (r *CartRepository) CountBySession(ctx context.Context, sessionID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, item := range r.items {
		if item.SessionID == sessionID {
			total += item.Quantity
		}
	}
	return total, nil
}
