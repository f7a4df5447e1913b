package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is the record captured by the checkout form. Every field except
// Notes must be non-blank; email format is deliberately not verified here.
type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
	Notes     string `json:"notes,omitempty"`
}

// OrderPayload is the immutable result of a successful checkout assembly.
// Items is a snapshot taken at submit time; later cart mutations cannot
// change it. CreatedAt serializes as RFC 3339.
type OrderPayload struct {
	Customer  Customer   `json:"customer"`
	Items     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"createdAt"`
}

type OrderStatus string

const (
	OrderStatusReceived   OrderStatus = "RECEIVED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
)

// Order is an archived submission. ID is the submission id assigned when the
// payload was published, which makes archiving idempotent under redelivery.
type Order struct {
	ID        uuid.UUID
	Email     string
	Customer  Customer
	Total     float64
	Status    OrderStatus
	Items     []CartLine
	CreatedAt time.Time
	UpdatedAt time.Time
}
