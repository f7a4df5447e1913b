package catalog

import (
	"context"
	"errors"

	"github.com/Mykyta-G/Webbshop/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the catalog store operations the read service
// and the HTTP surface need.
type ProductRepository interface {
	GetAllProducts(ctx context.Context) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	RunMigrations(migrationsPath string) error
	Close() error
}
