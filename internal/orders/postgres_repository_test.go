package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Mykyta-G/Webbshop/internal/domain"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	creds := &Credentials{
		Host:              host,
		Port:              port.Int(),
		User:              "testuser",
		Password:          "testpass",
		DBName:            "testdb",
		MigrationsDirPath: "./migrations",
	}

	repo, err := NewRepository(creds)
	require.NoError(t, err)

	err = repo.RunMigrations(creds)
	require.NoError(t, err)

	cleanup := func() {
		repo.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return repo, cleanup
}

func newArchivedOrder(email string, createdAt time.Time) *domain.Order {
	return &domain.Order{
		ID:    uuid.New(),
		Email: email,
		Customer: domain.Customer{
			Email:     email,
			FirstName: "Anna",
			LastName:  "Svensson",
			Address:   "Storgatan 1",
			Zip:       "11122",
			City:      "Stockholm",
		},
		Total:  318,
		Status: domain.OrderStatusReceived,
		Items: []domain.CartLine{
			{ID: "4", Name: "Glow Spinner", Price: 159, Quantity: 2},
		},
		CreatedAt: createdAt,
	}
}

func TestCreateOrder_Success(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	order := newArchivedOrder("anna@example.com", time.Now().UTC())

	err := repo.CreateOrder(ctx, order)
	require.NoError(t, err)

	fetched, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, order.Email, fetched.Email)
	assert.Equal(t, order.Total, fetched.Total)
	assert.Equal(t, order.Status, fetched.Status)
	assert.Equal(t, order.Customer.FirstName, fetched.Customer.FirstName)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, order.Items[0].ID, fetched.Items[0].ID)
	assert.Equal(t, order.Items[0].Quantity, fetched.Items[0].Quantity)
}

func TestCreateOrder_DuplicateSubmission(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	order := newArchivedOrder("anna@example.com", time.Now().UTC())

	require.NoError(t, repo.CreateOrder(ctx, order))

	// Redelivery of the same submission carries the same id.
	err := repo.CreateOrder(ctx, order)
	assert.ErrorIs(t, err, ErrDuplicateSubmission)
}

func TestGetOrderByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetOrderByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrdersByEmail(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	email := "list@example.com"
	now := time.Now().UTC()

	older := newArchivedOrder(email, now.Add(-time.Hour))
	require.NoError(t, repo.CreateOrder(ctx, older))

	newer := newArchivedOrder(email, now)
	require.NoError(t, repo.CreateOrder(ctx, newer))

	other := newArchivedOrder("someone-else@example.com", now)
	require.NoError(t, repo.CreateOrder(ctx, other))

	orders, err := repo.ListOrdersByEmail(ctx, email)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Newest first.
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}
