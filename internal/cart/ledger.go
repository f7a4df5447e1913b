package cart

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Mykyta-G/Webbshop/internal/domain"
)

// Ledger owns the authoritative cart line collection for the current
// profile. Every mutator runs a full load-modify-save cycle against the
// injected Store, serialized by one mutex, so two rapid mutations can never
// lose an update to each other. Lines keep insertion order: the first
// product added stays first.
type Ledger struct {
	mu    sync.Mutex
	store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// NormalizeID maps a product id to its canonical form. Ids arrive as numbers
// from the catalog API but as strings from markup attributes; both must land
// on the same cart line.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}

// Add increments the quantity of an existing line for the product, or
// appends a new line with quantity 1.
func (l *Ledger) Add(ctx context.Context, id, name string, price float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines, err := l.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	key := NormalizeID(id)
	for i := range lines {
		if NormalizeID(lines[i].ID) == key {
			lines[i].Quantity++
			return l.save(ctx, lines)
		}
	}

	lines = append(lines, domain.CartLine{ID: key, Name: name, Price: price, Quantity: 1})
	return l.save(ctx, lines)
}

// AdjustQuantity changes a line's quantity by delta. A result of zero or
// below removes the line entirely. Unknown ids are a no-op.
func (l *Ledger) AdjustQuantity(ctx context.Context, id string, delta int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines, err := l.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	key := NormalizeID(id)
	for i := range lines {
		if NormalizeID(lines[i].ID) != key {
			continue
		}
		if q := lines[i].Quantity + delta; q <= 0 {
			lines = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i].Quantity = q
		}
		return l.save(ctx, lines)
	}
	return nil
}

// Remove deletes the line for the product if present; unknown ids are a
// no-op.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines, err := l.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}

	key := NormalizeID(id)
	for i := range lines {
		if NormalizeID(lines[i].ID) == key {
			lines = append(lines[:i], lines[i+1:]...)
			return l.save(ctx, lines)
		}
	}
	return nil
}

// Clear empties the ledger. Called after a successful order submission.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.save(ctx, nil)
}

// Totals computes the subtotal and item count fresh on every call; nothing
// is cached because the store can change between reads.
func (l *Ledger) Totals(ctx context.Context) (domain.CartTotals, error) {
	lines, err := l.Snapshot(ctx)
	if err != nil {
		return domain.CartTotals{}, err
	}

	var totals domain.CartTotals
	for _, line := range lines {
		totals.Subtotal += line.Price * float64(line.Quantity)
		totals.Count += line.Quantity
	}
	return totals, nil
}

// Snapshot returns an independent copy of the current line sequence. A later
// cart mutation cannot retroactively alter a snapshot already handed out.
func (l *Ledger) Snapshot(ctx context.Context) ([]domain.CartLine, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines, err := l.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (l *Ledger) save(ctx context.Context, lines []domain.CartLine) error {
	if err := l.store.Save(ctx, lines); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
