package domain

import (
	"errors"
	"fmt"
	"time"

	catalogdomain "github.com/olaria/storefront/internal/catalog/domain"
)

var (
	// ErrProductUnavailable signals an add against a product that is out of
	// stock or flagged unavailable.
	ErrProductUnavailable = errors.New("product unavailable")
	// ErrCartItemNotFound signals a cart item reference that does not
	// resolve within the caller's session.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// InsufficientStockError rejects a quantity that would exceed the product's
// current stock. Max is the largest quantity the cart may hold.
type InsufficientStockError struct {
	Max int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: at most %d available", e.Max)
}

// CartItem is the quantity of one product held by one browser session.
// A session holds at most one row per product.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SessionID string    `gorm:"column:session_id;type:varchar(100);not null;index;uniqueIndex:idx_session_product" json:"-"`
	ProductID uint      `gorm:"column:product_id;not null;uniqueIndex:idx_session_product" json:"product_id"`
	Quantity  int       `gorm:"column:quantity;not null;default:1" json:"quantity"`
	AddedAt   time.Time `gorm:"column:added_at;autoCreateTime" json:"added_at"`

	Product *catalogdomain.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string { return "cart_items" }
