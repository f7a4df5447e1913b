package cart

import (
	"context"

	"github.com/Mykyta-G/Webbshop/internal/domain"
)

// Store persists the full cart line collection under a single well-known
// slot. Every Save replaces the whole collection; there are no partial
// updates, which is what lets the Ledger guarantee its invariants after
// every operation.
// Consumers define this interface, not the storage implementations.
type Store interface {
	Load(ctx context.Context) ([]domain.CartLine, error)
	Save(ctx context.Context, lines []domain.CartLine) error
}
