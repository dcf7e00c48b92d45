package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/apnidukan/dukan/internal/model"
)

// BillRetention is how long a bill survives after creation. Older bills are
// purged lazily the next time the list is read.
const BillRetention = 7 * 24 * time.Hour

const billDayLayout = "20060102"

// BillLine names an item and a quantity for bill creation. The item's name,
// price, and pricing type are snapshotted at creation time.
type BillLine struct {
	ItemID   string
	Quantity decimal.Decimal
}

// CreateBill snapshots the given lines into an immutable bill, assigns the
// next per-day bill number, and prepends it to the list (most-recent-first
// ordering is relied on by list consumers).
//
// Numbering comes from a durable per-day counter rather than a count of
// surviving bills, so deleting a bill or crossing the retention boundary
// mid-day never reissues a number.
func (s *Store) CreateBill(ctx context.Context, customerName, flatNumber string, lines []BillLine) (model.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	items := getDoc[[]model.Item](ctx, s, keyItems)
	byID := make(map[string]model.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	billItems := make([]model.BillItem, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		item, ok := byID[line.ItemID]
		if !ok {
			return model.Bill{}, fmt.Errorf("bill line item %s: %w", line.ItemID, ErrNotFound)
		}
		lineTotal := item.Price.Mul(line.Quantity)
		billItems = append(billItems, model.BillItem{
			ItemID:      item.ID,
			Name:        item.Name,
			Price:       item.Price,
			PricingType: item.PricingType,
			Quantity:    line.Quantity,
			Total:       lineTotal,
		})
		total = total.Add(lineTotal)
	}

	number, err := s.nextBillNumber(ctx, now)
	if err != nil {
		return model.Bill{}, err
	}

	bill := model.Bill{
		ID:           newID(),
		BillNumber:   number,
		CustomerName: customerName,
		FlatNumber:   flatNumber,
		Items:        billItems,
		TotalAmount:  total,
		CreatedAt:    now,
		Paid:         false,
	}

	bills := getDoc[[]model.Bill](ctx, s, keyBills)
	bills = append([]model.Bill{bill}, bills...)
	if err := setDoc(ctx, s, keyBills, bills); err != nil {
		return model.Bill{}, err
	}
	return bill, nil
}

// nextBillNumber issues YYYYMMDD-NNN from the durable per-day counter map.
// Caller holds s.mu.
func (s *Store) nextBillNumber(ctx context.Context, now time.Time) (string, error) {
	prefix := now.Format(billDayLayout)
	counters := getDoc[map[string]int](ctx, s, keyBillCounters)
	if counters == nil {
		counters = make(map[string]int)
	}
	n := counters[prefix] + 1
	counters[prefix] = n
	if err := setDoc(ctx, s, keyBillCounters, counters); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%03d", prefix, n), nil
}

// ListBills returns all surviving bills, most recent first, compacting
// expired ones first. A second call immediately after returns the same set.
func (s *Store) ListBills(ctx context.Context) ([]model.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bills, err := s.compactBills(ctx)
	if err != nil {
		return nil, err
	}
	if bills == nil {
		bills = []model.Bill{}
	}
	return bills, nil
}

// compactBills drops bills past retention and rewrites the list only when
// something was dropped. Counter entries for days that can no longer produce
// a surviving bill are pruned in the same pass. Caller holds s.mu.
func (s *Store) compactBills(ctx context.Context) ([]model.Bill, error) {
	now := s.clock.Now()
	cutoff := now.Add(-BillRetention)

	bills := getDoc[[]model.Bill](ctx, s, keyBills)
	kept := bills[:0:0]
	for _, b := range bills {
		if b.CreatedAt.After(cutoff) {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(bills) {
		return bills, nil
	}
	if err := setDoc(ctx, s, keyBills, kept); err != nil {
		return nil, err
	}
	if err := s.pruneBillCounters(ctx, cutoff); err != nil {
		return nil, err
	}
	return kept, nil
}

// pruneBillCounters removes counter entries for day prefixes entirely before
// the retention cutoff. Caller holds s.mu.
func (s *Store) pruneBillCounters(ctx context.Context, cutoff time.Time) error {
	counters := getDoc[map[string]int](ctx, s, keyBillCounters)
	if len(counters) == 0 {
		return nil
	}
	cutoffDay := cutoff.Format(billDayLayout)
	changed := false
	for prefix := range counters {
		if prefix < cutoffDay {
			delete(counters, prefix)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return setDoc(ctx, s, keyBillCounters, counters)
}

// SetBillPaid toggles the only mutable bill field.
func (s *Store) SetBillPaid(ctx context.Context, id string, paid bool) (model.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bills := getDoc[[]model.Bill](ctx, s, keyBills)
	for i := range bills {
		if bills[i].ID != id {
			continue
		}
		bills[i].Paid = paid
		if err := setDoc(ctx, s, keyBills, bills); err != nil {
			return model.Bill{}, err
		}
		return bills[i], nil
	}
	return model.Bill{}, fmt.Errorf("bill %s: %w", id, ErrNotFound)
}

// DeleteBill hard-deletes a bill by id. Its bill number is never reissued.
func (s *Store) DeleteBill(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bills := getDoc[[]model.Bill](ctx, s, keyBills)
	for i := range bills {
		if bills[i].ID == id {
			bills = append(bills[:i], bills[i+1:]...)
			return setDoc(ctx, s, keyBills, bills)
		}
	}
	return fmt.Errorf("bill %s: %w", id, ErrNotFound)
}

// GetBill returns a surviving bill by id.
func (s *Store) GetBill(ctx context.Context, id string) (model.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bills, err := s.compactBills(ctx)
	if err != nil {
		return model.Bill{}, err
	}
	for _, b := range bills {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Bill{}, fmt.Errorf("bill %s: %w", id, ErrNotFound)
}
