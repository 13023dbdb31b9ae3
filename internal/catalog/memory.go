package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DukeRupert/pageturn/internal/domain"
	"github.com/google/uuid"
)

// Memory is a Source backed by a slice. It is safe for concurrent use.
type Memory struct {
	mu    sync.RWMutex
	items []Item
}

// NewMemory creates a source holding items in the given order.
func NewMemory(items []Item) *Memory {
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Memory{items: cp}
}

// Seed creates a source with n generated items, one minute apart starting
// at start.
func Seed(n int, start time.Time) *Memory {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			ID:        uuid.New(),
			Name:      fmt.Sprintf("Item %d", i+1),
			CreatedAt: start.Add(time.Duration(i) * time.Minute),
		}
	}
	return &Memory{items: items}
}

// Add appends an item.
func (m *Memory) Add(item Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
}

func (m *Memory) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items), nil
}

func (m *Memory) List(ctx context.Context, offset, limit int) ([]Item, error) {
	if offset < 0 || limit < 0 {
		return nil, domain.Invalid("catalog.Memory.List", "offset and limit must not be negative")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if offset >= len(m.items) {
		return []Item{}, nil
	}
	end := offset + limit
	if end > len(m.items) {
		end = len(m.items)
	}

	out := make([]Item, end-offset)
	copy(out, m.items[offset:end])
	return out, nil
}
