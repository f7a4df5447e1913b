package cart

import (
	"context"
	"sync"

	"github.com/Mykyta-G/Webbshop/internal/domain"
)

// MemoryStore implements Store with in-memory storage. Used by tests and as
// a throwaway cart when no cart path is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	lines []domain.CartLine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) ([]domain.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lines == nil {
		return nil, nil
	}
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, lines []domain.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make([]domain.CartLine, len(lines))
	copy(s.lines, lines)
	return nil
}
