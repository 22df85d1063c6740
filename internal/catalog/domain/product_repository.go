package domain

import "context"

// ProductRepository is the read side of the catalog. Products are written
// only by seeding; nothing in the storefront mutates them.
type ProductRepository interface {
	GetByID(ctx context.Context, id uint) (*Product, error)
	// List filters by exact category and/or a substring match over name and
	// description. Empty arguments mean no filter.
	List(ctx context.Context, category, search string) ([]*Product, error)
	Categories(ctx context.Context) ([]string, error)
	Featured(ctx context.Context, limit int) ([]*Product, error)
	Newest(ctx context.Context, limit int) ([]*Product, error)
	// Related returns up to limit in-stock products sharing the category,
	// excluding the product itself.
	Related(ctx context.Context, p *Product, limit int) ([]*Product, error)
}
