package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Mykyta-G/Webbshop/internal/domain"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrDuplicateSubmission = errors.New("order for this submission already exists")
)

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrdersByEmail(ctx context.Context, email string) ([]*domain.Order, error)
	RunMigrations(*Credentials) error
	Close() error
}
