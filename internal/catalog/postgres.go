package catalog

import (
	"context"
	"database/sql"

	"github.com/DukeRupert/pageturn/internal/domain"
)

const (
	countItemsQuery = `SELECT count(*) FROM items`
	listItemsQuery  = `SELECT id, name, created_at FROM items ORDER BY created_at, id LIMIT $1 OFFSET $2`
	insertItemQuery = `INSERT INTO items (id, name, created_at) VALUES ($1, $2, $3)`
)

// Postgres is a Source over the items table. The caller owns db, opened
// with the pgx stdlib driver.
type Postgres struct {
	db *sql.DB
}

// NewPostgres wraps an open database handle.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Count(ctx context.Context) (int, error) {
	var n int
	if err := p.db.QueryRowContext(ctx, countItemsQuery).Scan(&n); err != nil {
		return 0, domain.Internal(err, "catalog.Postgres.Count", "failed to count items")
	}
	return n, nil
}

func (p *Postgres) List(ctx context.Context, offset, limit int) ([]Item, error) {
	const op = "catalog.Postgres.List"

	if offset < 0 || limit < 0 {
		return nil, domain.Invalid(op, "offset and limit must not be negative")
	}

	rows, err := p.db.QueryContext(ctx, listItemsQuery, limit, offset)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list items")
	}
	defer rows.Close()

	items := make([]Item, 0, limit)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.CreatedAt); err != nil {
			return nil, domain.Internal(err, op, "failed to scan item")
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, op, "failed to read items")
	}

	return items, nil
}

// Insert stores items in a single transaction.
func (p *Postgres) Insert(ctx context.Context, items ...Item) error {
	const op = "catalog.Postgres.Insert"

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Internal(err, op, "failed to begin transaction")
	}
	defer tx.Rollback()

	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertItemQuery, it.ID, it.Name, it.CreatedAt); err != nil {
			return domain.Internal(err, op, "failed to insert item")
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Internal(err, op, "failed to commit items")
	}
	return nil
}
