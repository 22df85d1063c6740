package application

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olaria/storefront/internal/catalog/domain"
	"github.com/olaria/storefront/internal/catalog/infrastructure/persistence/memory"
)

func seedCatalog(repo *memory.ProductRepository) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	add := func(name, desc, category string, featured, inStock bool, days int) {
		repo.Add(&domain.Product{
			Name:          name,
			Description:   desc,
			Price:         decimal.RequireFromString("100.00"),
			Category:      category,
			ImageURL:      "/static/images/products/test.jpg",
			ImageSource:   "Leonardo AI",
			Featured:      featured,
			InStock:       inStock,
			StockQuantity: 2,
			CreatedAt:     base.AddDate(0, 0, days),
		})
	}
	add("Vaza Tradițională", "vază cu motive etnice", "Vaze", true, true, 0)
	add("Vaza Geometrică", "ornamente geometrice", "Vaze", false, true, 1)
	add("Vaza Celtic", "design celtic", "Vaze", true, false, 2)
	add("Ghiveci Multicolor", "glazură multicoloră", "Ghivece", false, true, 3)
	add("Cercei Florali", "motive florale", "Cercei", true, true, 4)
}

func TestListProductsFilters(t *testing.T) {
	repo := memory.NewProductRepository()
	seedCatalog(repo)
	svc := NewCatalogQueryService(repo)
	ctx := context.Background()

	all, err := svc.ListProducts(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 5)

	vaze, err := svc.ListProducts(ctx, "Vaze", "")
	require.NoError(t, err)
	assert.Len(t, vaze, 3)

	search, err := svc.ListProducts(ctx, "", "celtic")
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "Vaza Celtic", search[0].Name)

	both, err := svc.ListProducts(ctx, "Vaze", "geometrice")
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Vaza Geometrică", both[0].Name)
}

func TestCategoriesDistinctSorted(t *testing.T) {
	repo := memory.NewProductRepository()
	seedCatalog(repo)
	svc := NewCatalogQueryService(repo)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Cercei", "Ghivece", "Vaze"}, categories)
}

func TestFeaturedBounded(t *testing.T) {
	repo := memory.NewProductRepository()
	seedCatalog(repo)
	svc := NewCatalogQueryService(repo)

	featured, err := svc.FeaturedProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 3)
	for _, p := range featured {
		assert.True(t, p.Featured)
	}
}

func TestNewestOrdering(t *testing.T) {
	repo := memory.NewProductRepository()
	seedCatalog(repo)
	svc := NewCatalogQueryService(repo)

	newest, err := svc.NewestProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, newest, 5)
	assert.Equal(t, "Cercei Florali", newest[0].Name)
	for i := 1; i < len(newest); i++ {
		assert.False(t, newest[i].CreatedAt.After(newest[i-1].CreatedAt))
	}
}

func TestGetProductDetailWithRelated(t *testing.T) {
	repo := memory.NewProductRepository()
	seedCatalog(repo)
	svc := NewCatalogQueryService(repo)

	detail, err := svc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Vaza Tradițională", detail.Product.Name)
	// Same category, in stock, excluding the product itself.
	require.Len(t, detail.Related, 1)
	assert.Equal(t, "Vaza Geometrică", detail.Related[0].Name)
}

func TestGetProductNotFound(t *testing.T) {
	repo := memory.NewProductRepository()
	svc := NewCatalogQueryService(repo)

	_, err := svc.GetProduct(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestEffectiveAvailability(t *testing.T) {
	p := &domain.Product{InStock: true, StockQuantity: 1}
	assert.True(t, p.Available())

	// Advisory flag and counter are independent; both must agree.
	p = &domain.Product{InStock: true, StockQuantity: 0}
	assert.False(t, p.Available())
	p = &domain.Product{InStock: false, StockQuantity: 3}
	assert.False(t, p.Available())
}
