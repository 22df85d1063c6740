// Package memory holds an in-memory product repository for tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/olaria/storefront/internal/catalog/domain"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products map[uint]*domain.Product
	nextID   uint
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[uint]*domain.Product), nextID: 1}
}

// Add registers a product, assigning an id when missing.
func (r *ProductRepository) Add(p *domain.Product) *domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	} else if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
	cp := *p
	r.products[cp.ID] = &cp
	return p
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepository) List(ctx context.Context, category, search string) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Product
	for _, p := range r.sorted() {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(p.Name, search) &&
			!strings.Contains(p.Description, search) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{})
	var categories []string
	for _, p := range r.products {
		if _, ok := seen[p.Category]; !ok {
			seen[p.Category] = struct{}{}
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *ProductRepository) Featured(ctx context.Context, limit int) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Product
	for _, p := range r.sorted() {
		if !p.Featured {
			continue
		}
		cp := *p
		out = append(out, &cp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *ProductRepository) Newest(ctx context.Context, limit int) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := r.sorted()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	var out []*domain.Product
	for _, p := range all {
		cp := *p
		out = append(out, &cp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *ProductRepository) Related(ctx context.Context, prod *domain.Product, limit int) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Product
	for _, p := range r.sorted() {
		if p.ID == prod.ID || p.Category != prod.Category || !p.InStock {
			continue
		}
		cp := *p
		out = append(out, &cp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// SetStock mutates a product's stock counter in place (test helper for the
// out-of-band catalog mutations the storefront itself never performs).
func (r *ProductRepository) SetStock(id uint, inStock bool, qty int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.InStock = inStock
		p.StockQuantity = qty
	}
}

// SetPrice mutates a product's price in place (test helper).
func (r *ProductRepository) SetPrice(id uint, price decimal.Decimal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.Price = price
	}
}

func (r *ProductRepository) sorted() []*domain.Product {
	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
