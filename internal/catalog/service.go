package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"

	"github.com/Mykyta-G/Webbshop/internal/catalog/cache"
	"github.com/Mykyta-G/Webbshop/internal/domain"
)

// ErrCatalogUnavailable is returned while the breaker holds the store open;
// callers surface it as a degraded (empty) catalog, never a crash.
var ErrCatalogUnavailable = errors.New("catalog store unavailable")

// Service is the catalog read path: Redis cache in front of the repository,
// singleflight to stop cache-miss stampedes, and a circuit breaker so a
// failing store fails fast instead of stacking up queries.
type Service struct {
	repo    ProductRepository
	cache   cache.ProductCache // nil disables caching
	sfg     singleflight.Group
	breaker *gobreaker.CircuitBreaker[any]
}

func NewService(repo ProductRepository, productCache cache.ProductCache) *Service {
	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:    "catalog-store",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// A missing product is an answer, not a store failure.
			return err == nil || errors.Is(err, ErrProductNotFound)
		},
	})
	return &Service{
		repo:    repo,
		cache:   productCache,
		breaker: breaker,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	v, err, _ := s.sfg.Do("all", func() (interface{}, error) {
		if s.cache != nil {
			products, err := s.cache.GetProducts(ctx)
			if err == nil {
				return products, nil
			}
			if !errors.Is(err, cache.ErrCacheMiss) {
				log.Printf("catalog cache get error: %v", err)
			}
		}

		res, err := s.breaker.Execute(func() (any, error) {
			return s.repo.GetAllProducts(ctx)
		})
		if err != nil {
			return nil, storeErr(err)
		}
		products := res.([]*domain.Product)

		if s.cache != nil {
			if err := s.cache.SetProducts(ctx, products); err != nil {
				log.Printf("catalog cache set error: %v", err)
			}
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*domain.Product), nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	v, err, _ := s.sfg.Do(fmt.Sprintf("id:%d", id), func() (interface{}, error) {
		if s.cache != nil {
			p, err := s.cache.GetProduct(ctx, id)
			if err == nil {
				return p, nil
			}
			if !errors.Is(err, cache.ErrCacheMiss) {
				log.Printf("catalog cache get error: %v", err)
			}
		}

		res, err := s.breaker.Execute(func() (any, error) {
			return s.repo.GetProduct(ctx, id)
		})
		if err != nil {
			return nil, storeErr(err)
		}
		p := res.(*domain.Product)

		if s.cache != nil {
			if err := s.cache.SetProduct(ctx, p); err != nil {
				log.Printf("catalog cache set error: %v", err)
			}
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

func (s *Service) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	created, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, created.ID)
	return created, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *Service) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		log.Printf("catalog cache invalidate error: %v", err)
	}
}

func storeErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrCatalogUnavailable
	}
	return err
}
