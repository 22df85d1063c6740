package application

import (
	"context"

	"github.com/olaria/storefront/internal/catalog/domain"
)

const (
	featuredLimit = 3
	newestLimit   = 6
	relatedLimit  = 3
)

// CatalogQueryService answers the read-only catalog queries used by the
// storefront pages.
type CatalogQueryService struct{ repo domain.ProductRepository }

func NewCatalogQueryService(repo domain.ProductRepository) *CatalogQueryService {
	return &CatalogQueryService{repo: repo}
}

// ProductDetail is a product together with its related suggestions.
type ProductDetail struct {
	Product *domain.Product   `json:"product"`
	Related []*domain.Product `json:"related"`
}

func (s *CatalogQueryService) GetProduct(ctx context.Context, id uint) (*ProductDetail, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	related, err := s.repo.Related(ctx, p, relatedLimit)
	if err != nil {
		return nil, err
	}
	return &ProductDetail{Product: p, Related: related}, nil
}

func (s *CatalogQueryService) ListProducts(ctx context.Context, category, search string) ([]*domain.Product, error) {
	return s.repo.List(ctx, category, search)
}

func (s *CatalogQueryService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *CatalogQueryService) FeaturedProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.Featured(ctx, featuredLimit)
}

func (s *CatalogQueryService) NewestProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.Newest(ctx, newestLimit)
}
