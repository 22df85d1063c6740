package mysql

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/olaria/storefront/internal/cart/domain"
)

type cartRepository struct{ db *gorm.DB }

func NewCartRepository(db *gorm.DB) domain.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetByID(ctx context.Context, sessionID string, id uint) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", id, sessionID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) GetBySessionAndProduct(ctx context.Context, sessionID string, productID uint) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCartItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.CartItem, error) {
	var items []*domain.CartItem
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("added_at, id").
		Find(&items).Error
	return items, err
}

func (r *cartRepository) Save(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepository) Delete(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).
		Where("session_id = ?", item.SessionID).
		Delete(&domain.CartItem{}, item.ID).Error
}

func (r *cartRepository) CountBySession(ctx context.Context, sessionID string) (int, error) {
	// SUM over zero rows yields NULL, which must read as an empty cart.
	var count sql.NullInt64
	err := r.db.WithContext(ctx).Model(&domain.CartItem{}).
		Where("session_id = ?", sessionID).
		Select("SUM(quantity)").
		Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count.Int64), nil
}
