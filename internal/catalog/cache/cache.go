package cache

import (
	"context"
	"errors"

	"github.com/Mykyta-G/Webbshop/internal/domain"
)

// ProductCache fronts the catalog read path. A failing cache is never fatal;
// callers log and fall through to the repository.
type ProductCache interface {
	GetProducts(ctx context.Context) ([]*domain.Product, error)
	SetProducts(ctx context.Context, products []*domain.Product) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	SetProduct(ctx context.Context, p *domain.Product) error
	// Delete drops the product's key and the full-list key; called after
	// every catalog write.
	Delete(ctx context.Context, id int64) error
}

var ErrCacheMiss = errors.New("cache miss")
