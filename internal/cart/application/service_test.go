package application

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olaria/storefront/internal/cart/domain"
	cartmemory "github.com/olaria/storefront/internal/cart/infrastructure/persistence/memory"
	catalogdomain "github.com/olaria/storefront/internal/catalog/domain"
	catalogmemory "github.com/olaria/storefront/internal/catalog/infrastructure/persistence/memory"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []any
}

func (p *capturePublisher) Publish(ctx context.Context, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func newFixture(t *testing.T) (*CartService, *catalogmemory.ProductRepository, *capturePublisher) {
	t.Helper()
	products := catalogmemory.NewProductRepository()
	carts := cartmemory.NewCartRepository()
	events := &capturePublisher{}
	return NewCartService(carts, products, events), products, events
}

func seedProduct(products *catalogmemory.ProductRepository, name, price string, inStock bool, stock int) *catalogdomain.Product {
	return products.Add(&catalogdomain.Product{
		Name:          name,
		Description:   name,
		Price:         decimal.RequireFromString(price),
		Category:      "Vaze",
		ImageURL:      "/static/images/products/test.jpg",
		ImageSource:   "Leonardo AI",
		InStock:       inStock,
		StockQuantity: stock,
	})
}

func TestAddItemUnavailableProduct(t *testing.T) {
	tests := []struct {
		name    string
		inStock bool
		stock   int
	}{
		{"zero stock", true, 0},
		{"flagged out of stock", false, 5},
		{"both", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, products, _ := newFixture(t)
			p := seedProduct(products, "Vaza", "150.00", tt.inStock, tt.stock)

			_, err := svc.AddItem(context.Background(), "s1", p.ID, 1)
			assert.ErrorIs(t, err, domain.ErrProductUnavailable)
			assert.Equal(t, 0, svc.Count(context.Background(), "s1"))
		})
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _, _ := newFixture(t)
	_, err := svc.AddItem(context.Background(), "s1", 999, 1)
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestAddItemAccumulatesOntoExistingItem(t *testing.T) {
	svc, products, _ := newFixture(t)
	p := seedProduct(products, "Ghiveci", "85.00", true, 6)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.AddItem(ctx, "s1", p.ID, 2)
		require.NoError(t, err)
	}

	view, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1, "repeated adds must merge into one item")
	assert.Equal(t, 6, view.Lines[0].Item.Quantity)
	assert.Equal(t, 6, svc.Count(ctx, "s1"))
}

func TestAddItemRejectsBeyondStockWithoutClamping(t *testing.T) {
	svc, products, _ := newFixture(t)
	p := seedProduct(products, "Vaza", "150.00", true, 3)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", p.ID, 2)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "s1", p.ID, 2)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Max)

	// No partial write: quantity stays at 2, not clamped to 3.
	view, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Item.Quantity)
}

func TestAddItemFirstAddBeyondStock(t *testing.T) {
	svc, products, _ := newFixture(t)
	p := seedProduct(products, "Cercei", "45.00", true, 2)

	_, err := svc.AddItem(context.Background(), "s1", p.ID, 5)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Max)
	assert.Equal(t, 0, svc.Count(context.Background(), "s1"))
}

func TestUpdateItemZeroQuantityRemoves(t *testing.T) {
	svc, products, _ := newFixture(t)
	p := seedProduct(products, "Ghiveci", "95.00", true, 4)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "s1", p.ID, 3)
	require.NoError(t, err)

	removed, err := svc.UpdateItem(ctx, "s1", item.ID, 0)
	require.NoError(t, err, "quantity <= 0 is a removal, not an error")
	assert.True(t, removed)

	view, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, 0, svc.Count(ctx, "s1"))
}

func TestUpdateItemBeyondStock(t *testing.T) {
	svc, products, _ := newFixture(t)
	p := seedProduct(products, "Vaza", "120.00", true, 2)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "s1", p.ID, 1)
	require.NoError(t, err)

	_, err = svc.UpdateItem(ctx, "s1", item.ID, 5)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Max)

	view, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Lines[0].Item.Quantity)
}

func TestUpdateItemUnknown(t *testing.T) {
	svc, _, _ := newFixture(t)
	_, err := svc.UpdateItem(context.Background(), "s1", 42, 1)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	svc, products, _ := newFixture(t)
	p := seedProduct(products, "Cercei", "38.00", true, 8)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "s1", p.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, "s1", item.ID))
	assert.Equal(t, 0, svc.Count(ctx, "s1"))

	err = svc.RemoveItem(ctx, "s1", item.ID)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestTotalRecomputedFromLivePrices(t *testing.T) {
	svc, products, _ := newFixture(t)
	p := seedProduct(products, "Statueta", "95.00", true, 5)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", p.ID, 2)
	require.NoError(t, err)

	view, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("190.00")), "total %s", view.Total)

	// A catalog price change is reflected without any cart mutation.
	products.SetPrice(p.ID, decimal.RequireFromString("100.00"))

	view, err = svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("200.00")), "total %s", view.Total)
}

func TestTotalSumsAcrossItems(t *testing.T) {
	svc, products, _ := newFixture(t)
	p1 := seedProduct(products, "Vaza", "150.00", true, 3)
	p2 := seedProduct(products, "Cercei", "45.00", true, 6)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", p1.ID, 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", p2.ID, 2)
	require.NoError(t, err)

	view, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.True(t, view.Lines[0].Subtotal.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, view.Lines[1].Subtotal.Equal(decimal.RequireFromString("90.00")))
	assert.True(t, view.Total.Equal(decimal.RequireFromString("240.00")), "total %s", view.Total)
}

func TestCountEmptySession(t *testing.T) {
	svc, _, _ := newFixture(t)
	assert.Equal(t, 0, svc.Count(context.Background(), "never-seen"))
	assert.Equal(t, 0, svc.Count(context.Background(), ""))
}

func TestSessionIsolation(t *testing.T) {
	svc, products, _ := newFixture(t)
	p := seedProduct(products, "Ghiveci", "75.00", true, 5)
	ctx := context.Background()

	itemA, err := svc.AddItem(ctx, "session-a", p.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "session-b", p.ID, 1)
	require.NoError(t, err)

	viewA, err := svc.GetCart(ctx, "session-a")
	require.NoError(t, err)
	viewB, err := svc.GetCart(ctx, "session-b")
	require.NoError(t, err)
	assert.Equal(t, 2, viewA.Lines[0].Item.Quantity)
	assert.Equal(t, 1, viewB.Lines[0].Item.Quantity)

	// One session cannot address another session's item.
	_, err = svc.UpdateItem(ctx, "session-b", itemA.ID, 1)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
	err = svc.RemoveItem(ctx, "session-b", itemA.ID)
	assert.ErrorIs(t, err, domain.ErrCartItemNotFound)
}

func TestStockBoundScenario(t *testing.T) {
	svc, products, _ := newFixture(t)
	p := seedProduct(products, "Vaza", "150.00", true, 3)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "s1", p.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	_, err = svc.AddItem(ctx, "s1", p.ID, 2)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Max)
	assert.Equal(t, 2, svc.Count(ctx, "s1"))

	removed, err := svc.UpdateItem(ctx, "s1", item.ID, 3)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 3, svc.Count(ctx, "s1"))

	removed, err = svc.UpdateItem(ctx, "s1", item.ID, 0)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, svc.Count(ctx, "s1"))
}

func TestEventsPublishedOnMutations(t *testing.T) {
	svc, products, events := newFixture(t)
	p := seedProduct(products, "Cercei", "48.00", true, 4)
	ctx := context.Background()

	item, err := svc.AddItem(ctx, "s1", p.ID, 1)
	require.NoError(t, err)
	_, err = svc.UpdateItem(ctx, "s1", item.ID, 2)
	require.NoError(t, err)
	require.NoError(t, svc.RemoveItem(ctx, "s1", item.ID))

	require.Len(t, events.events, 3)
	assert.IsType(t, domain.ItemAddedEvent{}, events.events[0])
	assert.IsType(t, domain.ItemUpdatedEvent{}, events.events[1])
	assert.IsType(t, domain.ItemRemovedEvent{}, events.events[2])
}

func TestRejectedMutationsPublishNothing(t *testing.T) {
	svc, products, events := newFixture(t)
	p := seedProduct(products, "Vaza", "180.00", true, 1)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", p.ID, 2)
	require.Error(t, err)
	assert.Empty(t, events.events)
}
