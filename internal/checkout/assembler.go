package checkout

import (
	"strings"
	"time"

	"github.com/Mykyta-G/Webbshop/internal/domain"
)

// Assembler turns a cart snapshot plus a customer record into an immutable
// order payload. It never touches the live ledger: the caller snapshots,
// assembles, delivers, and only then clears the cart, so a cart edit racing
// a submit cannot change an already-assembled order.
type Assembler struct {
	now func() time.Time
}

func NewAssembler() *Assembler {
	return &Assembler{now: time.Now}
}

// Assemble validates the snapshot and customer and builds the payload. The
// total is summed over the snapshot, not re-read from the ledger, and the
// items are copied so the payload does not alias the caller's slice.
func (a *Assembler) Assemble(snapshot []domain.CartLine, customer domain.Customer) (*domain.OrderPayload, error) {
	if len(snapshot) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	items := make([]domain.CartLine, len(snapshot))
	copy(items, snapshot)

	var total float64
	for _, line := range items {
		total += line.Price * float64(line.Quantity)
	}

	return &domain.OrderPayload{
		Customer:  customer,
		Items:     items,
		Total:     total,
		CreatedAt: a.now().UTC(),
	}, nil
}

func validateCustomer(c domain.Customer) error {
	required := []struct {
		field string
		value string
	}{
		{"email", c.Email},
		{"firstName", c.FirstName},
		{"lastName", c.LastName},
		{"address", c.Address},
		{"zip", c.Zip},
		{"city", c.City},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.field, Reason: "required"}
		}
	}
	return nil
}
