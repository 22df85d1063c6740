package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/olaria/storefront/internal/catalog/domain"
)

type productRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, category, search string) ([]*domain.Product, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	var products []*domain.Product
	err := q.Order("id").Find(&products).Error
	return products, err
}

func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Distinct("category").Order("category").Pluck("category", &categories).Error
	return categories, err
}

func (r *productRepository) Featured(ctx context.Context, limit int) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).
		Where("featured = ?", true).Order("id").Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) Newest(ctx context.Context, limit int) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).
		Order("created_at DESC").Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) Related(ctx context.Context, p *domain.Product, limit int) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).
		Where("category = ? AND id <> ? AND in_stock = ?", p.Category, p.ID, true).
		Limit(limit).Find(&products).Error
	return products, err
}
