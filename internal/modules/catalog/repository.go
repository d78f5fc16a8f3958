package catalog

import "context"

// Repository is the row-store side of the remote gateway. Handlers and
// the admin editing session depend on this, never on gorm directly.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Insert(ctx context.Context, name, price, description string, images []string) (Product, error)
	Update(ctx context.Context, id, name, price, description string, images []string) error
	Delete(ctx context.Context, id string) error
}
