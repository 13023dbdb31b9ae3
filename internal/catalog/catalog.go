// Package catalog provides the item collections served by the paginated
// listing pages.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Item is one entry of the catalog.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Source is an ordered item collection that can be counted and sliced.
type Source interface {
	// Count returns the total number of items.
	Count(ctx context.Context) (int, error)
	// List returns up to limit items starting at offset, in a stable order.
	List(ctx context.Context, offset, limit int) ([]Item, error)
}
