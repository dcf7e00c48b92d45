package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/apnidukan/dukan/internal/model"
)

// AddItem creates a catalog entry and returns it.
func (s *Store) AddItem(ctx context.Context, name string, price decimal.Decimal, pricingType model.PricingType, quantity string) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	item := model.Item{
		ID:          newID(),
		Name:        name,
		Price:       price,
		PricingType: pricingType,
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	items := getDoc[[]model.Item](ctx, s, keyItems)
	items = append(items, item)
	if err := setDoc(ctx, s, keyItems, items); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// ListItems returns every catalog entry.
func (s *Store) ListItems(ctx context.Context) []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := getDoc[[]model.Item](ctx, s, keyItems)
	if items == nil {
		items = []model.Item{}
	}
	return items
}

// GetItem returns the item with the given id, or ErrNotFound.
func (s *Store) GetItem(ctx context.Context, id string) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range getDoc[[]model.Item](ctx, s, keyItems) {
		if item.ID == id {
			return item, nil
		}
	}
	return model.Item{}, fmt.Errorf("item %s: %w", id, ErrNotFound)
}

// ItemPatch holds the mutable item fields; nil fields are left unchanged.
type ItemPatch struct {
	Name        *string
	Price       *decimal.Decimal
	PricingType *model.PricingType
	Quantity    *string
}

// UpdateItem applies patch to the item with the given id and bumps its
// UpdatedAt. Returns ErrNotFound if the item does not exist.
func (s *Store) UpdateItem(ctx context.Context, id string, patch ItemPatch) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := getDoc[[]model.Item](ctx, s, keyItems)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if patch.Name != nil {
			items[i].Name = *patch.Name
		}
		if patch.Price != nil {
			items[i].Price = *patch.Price
		}
		if patch.PricingType != nil {
			items[i].PricingType = *patch.PricingType
		}
		if patch.Quantity != nil {
			items[i].Quantity = *patch.Quantity
		}
		items[i].UpdatedAt = s.clock.Now()
		if err := setDoc(ctx, s, keyItems, items); err != nil {
			return model.Item{}, err
		}
		return items[i], nil
	}
	return model.Item{}, fmt.Errorf("item %s: %w", id, ErrNotFound)
}

// DeleteItem removes the item with the given id. Returns ErrNotFound if no
// such item exists.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := getDoc[[]model.Item](ctx, s, keyItems)
	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			return setDoc(ctx, s, keyItems, items)
		}
	}
	return fmt.Errorf("item %s: %w", id, ErrNotFound)
}
