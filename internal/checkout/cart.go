package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tiendita/internal/domain"
	"tiendita/pkg/e"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=cart.go -destination=mocks/cart_mock.go
type CatalogProvider interface {
	Lookup(ctx context.Context, itemID int) (domain.Item, error)
}

// Cart resolves (item, quantity) entries against the catalog. It is the one
// aggregation path for both the single-item checkout and the multi-line cart
// page.
type Cart struct {
	catalog CatalogProvider
	logger  *slog.Logger
}

func NewCart(logger *slog.Logger, catalog CatalogProvider) *Cart {
	return &Cart{
		catalog: catalog,
		logger:  logger,
	}
}

// Resolve fails as a whole when any entry misses the catalog; there are no
// partial carts. Line order follows entry order, and duplicate item ids stay
// separate lines.
func (c *Cart) Resolve(ctx context.Context, entries []domain.CartEntry) ([]domain.CartLine, decimal.Decimal, error) {
	lines := make([]domain.CartLine, 0, len(entries))
	total := decimal.Zero

	for _, entry := range entries {
		item, err := c.catalog.Lookup(ctx, entry.ItemID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return nil, decimal.Zero, fmt.Errorf("%w: item %d", ErrItemNotFound, entry.ItemID)
			}
			c.logger.Error("catalog lookup failed",
				slog.Int("item_id", entry.ItemID),
				slog.String("error", err.Error()),
			)
			return nil, decimal.Zero, e.Wrap("checkout.Resolve", err)
		}

		qty := entry.Quantity
		if qty < 1 {
			qty = 1
		}

		subtotal := item.Price.Mul(decimal.NewFromInt(int64(qty)))
		lines = append(lines, domain.CartLine{
			Item:      item,
			Quantity:  qty,
			UnitPrice: item.Price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	return lines, total, nil
}
