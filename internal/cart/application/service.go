package application

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/olaria/storefront/internal/cart/domain"
	catalogdomain "github.com/olaria/storefront/internal/catalog/domain"
	"github.com/olaria/storefront/pkg/logger"
)

// CartService owns the per-session cart state machine. Every mutating
// operation checks the product's current stock row; there is no
// reservation, so concurrent sessions may oversell (accepted behavior).
type CartService struct {
	carts    domain.CartRepository
	products catalogdomain.ProductRepository
	events   domain.EventPublisher
}

func NewCartService(
	carts domain.CartRepository,
	products catalogdomain.ProductRepository,
	events domain.EventPublisher,
) *CartService {
	return &CartService{carts: carts, products: products, events: events}
}

// CartLine is one cart item joined with its product at current catalog
// prices.
type CartLine struct {
	Item     *domain.CartItem       `json:"item"`
	Product  *catalogdomain.Product `json:"product"`
	Subtotal decimal.Decimal        `json:"subtotal"`
}

// CartView is the full cart for one session.
type CartView struct {
	Lines []CartLine      `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// AddItem puts qty units of a product into the session's cart, accumulating
// onto an existing item for the same product. The target quantity must not
// exceed current stock; a rejected add leaves the prior quantity untouched
// rather than clamping.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uint, qty int) (*domain.CartItem, error) {
	if qty < 1 {
		qty = 1
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Available() {
		return nil, domain.ErrProductUnavailable
	}

	item, err := s.carts.GetBySessionAndProduct(ctx, sessionID, productID)
	switch {
	case err == nil:
		target := item.Quantity + qty
		if target > product.StockQuantity {
			return nil, &domain.InsufficientStockError{Max: product.StockQuantity}
		}
		item.Quantity = target
	case err == domain.ErrCartItemNotFound:
		if qty > product.StockQuantity {
			return nil, &domain.InsufficientStockError{Max: product.StockQuantity}
		}
		item = &domain.CartItem{SessionID: sessionID, ProductID: productID, Quantity: qty}
	default:
		return nil, err
	}

	if err := s.carts.Save(ctx, item); err != nil {
		return nil, err
	}
	s.publish(ctx, sessionID, domain.ItemAddedEvent{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  item.Quantity,
		Timestamp: time.Now().UTC(),
	})
	return item, nil
}

// UpdateItem sets an item's quantity. A quantity of zero or less removes
// the item and is reported as a successful removal, not an error.
// The removed return is true when the item was deleted.
func (s *CartService) UpdateItem(ctx context.Context, sessionID string, itemID uint, qty int) (removed bool, err error) {
	item, err := s.carts.GetByID(ctx, sessionID, itemID)
	if err != nil {
		return false, err
	}

	if qty <= 0 {
		if err := s.carts.Delete(ctx, item); err != nil {
			return false, err
		}
		s.publish(ctx, sessionID, domain.ItemRemovedEvent{
			SessionID: sessionID,
			ProductID: item.ProductID,
			Timestamp: time.Now().UTC(),
		})
		return true, nil
	}

	product, err := s.products.GetByID(ctx, item.ProductID)
	if err != nil {
		return false, err
	}
	if qty > product.StockQuantity {
		return false, &domain.InsufficientStockError{Max: product.StockQuantity}
	}

	item.Quantity = qty
	if err := s.carts.Save(ctx, item); err != nil {
		return false, err
	}
	s.publish(ctx, sessionID, domain.ItemUpdatedEvent{
		SessionID: sessionID,
		ProductID: item.ProductID,
		Quantity:  qty,
		Timestamp: time.Now().UTC(),
	})
	return false, nil
}

// RemoveItem deletes an item from the session's cart.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, itemID uint) error {
	item, err := s.carts.GetByID(ctx, sessionID, itemID)
	if err != nil {
		return err
	}
	if err := s.carts.Delete(ctx, item); err != nil {
		return err
	}
	s.publish(ctx, sessionID, domain.ItemRemovedEvent{
		SessionID: sessionID,
		ProductID: item.ProductID,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// GetCart returns the session's lines and total. Subtotals are recomputed
// from the catalog's current prices on every read; nothing is snapshotted,
// so a price change is reflected in existing carts immediately.
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	items, err := s.carts.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Lines: make([]CartLine, 0, len(items)), Total: decimal.Zero}
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Lines = append(view.Lines, CartLine{Item: item, Product: product, Subtotal: subtotal})
		view.Total = view.Total.Add(subtotal)
	}
	return view, nil
}

// Count returns the sum of quantities across the session's cart. It never
// fails; a store error is logged and reported as an empty cart.
func (s *CartService) Count(ctx context.Context, sessionID string) int {
	if sessionID == "" {
		return 0
	}
	count, err := s.carts.CountBySession(ctx, sessionID)
	if err != nil {
		logger.Warn(ctx, "cart count failed, reporting empty", "error", err)
		return 0
	}
	return count
}

func (s *CartService) publish(ctx context.Context, key string, event any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, key, event); err != nil {
		logger.Warn(ctx, "cart event publish failed", "error", err)
	}
}
