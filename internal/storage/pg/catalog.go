package pg

import (
	"context"
	"errors"

	"tiendita/internal/domain"
	"tiendita/pkg/e"

	"github.com/jackc/pgx/v5"
)

// Lookup implements the catalog port over the items table. Read-only.
func (p *Postgres) Lookup(ctx context.Context, itemID int) (domain.Item, error) {
	query := `SELECT id, name, price, is_sold FROM items WHERE id = $1`

	var item domain.Item
	err := p.pool.QueryRow(ctx, query, itemID).Scan(
		&item.ID, &item.Name, &item.Price, &item.IsSold,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, e.ErrNotFound
		}
		return domain.Item{}, e.Wrap("pg.Lookup", err)
	}

	return item, nil
}
