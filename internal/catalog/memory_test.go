package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DukeRupert/pageturn/internal/domain"
	"github.com/DukeRupert/pageturn/internal/paginate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := Seed(3, start)

	n, err := m.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	items, err := m.List(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Item 1", items[0].Name)
	assert.Equal(t, start.Add(2*time.Minute), items[2].CreatedAt)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestMemory_List(t *testing.T) {
	m := Seed(25, time.Now())
	ctx := context.Background()

	tests := []struct {
		name          string
		offset, limit int
		wantLen       int
		wantFirst     string
	}{
		{"first page", 0, 10, 10, "Item 1"},
		{"last partial page", 20, 10, 5, "Item 21"},
		{"past the end", 30, 10, 0, ""},
		{"zero limit", 5, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := m.List(ctx, tt.offset, tt.limit)
			require.NoError(t, err)
			assert.Len(t, items, tt.wantLen)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, items[0].Name)
			}
		})
	}
}

func TestMemory_List_Negative(t *testing.T) {
	m := Seed(5, time.Now())

	_, err := m.List(context.Background(), -1, 10)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func TestMemory_ListsWindowSlice(t *testing.T) {
	m := Seed(127, time.Now())
	ctx := context.Background()

	w := paginate.Calculate(127, 10, 10, 13)
	items, err := m.List(ctx, w.ItemStart, w.Limit())
	require.NoError(t, err)

	assert.Len(t, items, 7)
	assert.Equal(t, "Item 121", items[0].Name)
	assert.Equal(t, "Item 127", items[6].Name)
}

func TestMemory_Add(t *testing.T) {
	src := []Item{{Name: "a"}}
	m := NewMemory(src)
	src[0].Name = "changed"

	m.Add(Item{Name: "b"})

	items, err := m.List(context.Background(), 0, 5)
	require.NoError(t, err)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "b", items[1].Name)
}
