package catalog

import (
	"context"

	"tiendita/internal/domain"
	"tiendita/pkg/e"
)

// Static is an in-memory catalog. It serves tests and local runs without a
// database; production wires the postgres-backed catalog instead.
type Static struct {
	items map[int]domain.Item
}

func NewStatic(items ...domain.Item) *Static {
	m := make(map[int]domain.Item, len(items))
	for _, item := range items {
		m[item.ID] = item
	}
	return &Static{items: m}
}

func (s *Static) Lookup(_ context.Context, itemID int) (domain.Item, error) {
	item, ok := s.items[itemID]
	if !ok {
		return domain.Item{}, e.ErrNotFound
	}
	return item, nil
}
