package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apnidukan/dukan/internal/model"
)

// ErrSaleActive is returned by StartSale while a sale is already running.
// Starting again would snapshot already-discounted prices as "originals" and
// lose the true pre-sale prices, so a second start is always rejected.
var ErrSaleActive = errors.New("a flash sale is already active")

// ErrNoActiveSale is returned by operations that require a running sale.
var ErrNoActiveSale = errors.New("no active flash sale")

// StartSale begins a promotional window of the given duration. Every current
// item price is snapshotted so it can be restored exactly when the sale ends
// or expires. Items added after the start are never part of the snapshot.
func (s *Store) StartSale(ctx context.Context, duration time.Duration) (model.FlashSale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sale := s.readSale(ctx); sale != nil {
		if !sale.Expired(s.clock.Now()) {
			return model.FlashSale{}, ErrSaleActive
		}
		// Expired but never read: revert the stale snapshot before taking
		// a new one, otherwise discounted prices would be captured as
		// originals.
		if err := s.finishSale(ctx, *sale, true); err != nil {
			return model.FlashSale{}, err
		}
	}

	now := s.clock.Now()
	snapshot := make(map[string]decimal.Decimal)
	for _, item := range getDoc[[]model.Item](ctx, s, keyItems) {
		snapshot[item.ID] = item.Price
	}

	sale := model.FlashSale{
		Active:         true,
		StartTime:      now,
		EndTime:        now.Add(duration),
		Duration:       duration,
		OriginalPrices: snapshot,
	}
	if err := setDoc(ctx, s, keyFlashSale, sale); err != nil {
		return model.FlashSale{}, err
	}
	return sale, nil
}

// ActiveSale returns the running sale, or nil if none. If the persisted
// sale's deadline has passed it is expired in place: prices are reverted
// (best effort) and the record deleted, exactly as EndSale would. Callers
// must therefore expect a read to have side effects.
func (s *Store) ActiveSale(ctx context.Context) (*model.FlashSale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale := s.readSale(ctx)
	if sale == nil {
		return nil, nil
	}
	if sale.Expired(s.clock.Now()) {
		if err := s.finishSale(ctx, *sale, true); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return sale, nil
}

// EndSale restores every snapshotted price and deletes the sale record.
// Calling it with no sale persisted is a no-op. Unlike lazy expiry, an
// explicit end propagates reversion failures and leaves the record in place
// so the caller can retry.
func (s *Store) EndSale(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale := s.readSale(ctx)
	if sale == nil {
		return nil
	}
	return s.finishSale(ctx, *sale, false)
}

// SaleRemaining returns the time left in the running sale. Zero means no
// sale is active or the deadline has passed. Pure query: unlike ActiveSale
// it never expires the record, so a countdown ticker can poll it freely.
func (s *Store) SaleRemaining(ctx context.Context) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale := s.readSale(ctx)
	if sale == nil {
		return 0
	}
	return sale.Remaining(s.clock.Now())
}

// SetSalePrice overwrites an item's price during an active sale. The
// snapshot keeps the original, so the discount is undone when the sale ends.
// Returns ErrNoActiveSale if no sale is running (or it has expired).
func (s *Store) SetSalePrice(ctx context.Context, itemID string, price decimal.Decimal) (model.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sale := s.readSale(ctx)
	if sale == nil || sale.Expired(s.clock.Now()) {
		return model.Item{}, ErrNoActiveSale
	}

	items := getDoc[[]model.Item](ctx, s, keyItems)
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		items[i].Price = price
		items[i].UpdatedAt = s.clock.Now()
		if err := setDoc(ctx, s, keyItems, items); err != nil {
			return model.Item{}, err
		}
		return items[i], nil
	}
	return model.Item{}, fmt.Errorf("item %s: %w", itemID, ErrNotFound)
}

// readSale returns the persisted sale record without side effects, or nil.
// Caller holds s.mu.
func (s *Store) readSale(ctx context.Context) *model.FlashSale {
	sale := getDoc[model.FlashSale](ctx, s, keyFlashSale)
	if !sale.Active {
		return nil
	}
	return &sale
}

// finishSale reverts snapshotted prices and deletes the sale record.
//
// With bestEffort set (lazy expiry), reversion failures are logged and
// swallowed so the ephemeral record is guaranteed to be removed; otherwise
// the first failure aborts before the delete. Items deleted during the sale
// are skipped; items added during it have no snapshot entry and are never
// touched. Caller holds s.mu.
func (s *Store) finishSale(ctx context.Context, sale model.FlashSale, bestEffort bool) error {
	items := getDoc[[]model.Item](ctx, s, keyItems)
	changed := false
	now := s.clock.Now()
	for i := range items {
		original, ok := sale.OriginalPrices[items[i].ID]
		if !ok {
			continue
		}
		if items[i].Price.Equal(original) {
			continue
		}
		items[i].Price = original
		items[i].UpdatedAt = now
		changed = true
	}
	if changed {
		if err := setDoc(ctx, s, keyItems, items); err != nil {
			if !bestEffort {
				return fmt.Errorf("revert sale prices: %w", err)
			}
			s.logger.Warn("price reversion failed during sale expiry, removing sale record anyway", "err", err)
		}
	}

	if err := s.kv.Delete(ctx, keyFlashSale); err != nil {
		if !bestEffort {
			return fmt.Errorf("remove sale record: %w", err)
		}
		s.logger.Warn("failed to remove expired sale record", "err", err)
	}
	return nil
}
