package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlashSale is the ephemeral at-most-one-active promotional pricing record.
//
// OriginalPrices maps item ID to the price captured when the sale started.
// Only items present in the snapshot are restored when the sale ends; items
// added mid-sale were never discounted and are left alone.
type FlashSale struct {
	Active         bool                       `json:"active"`
	StartTime      time.Time                  `json:"startTime"`
	EndTime        time.Time                  `json:"endTime"`
	Duration       time.Duration              `json:"duration"`
	OriginalPrices map[string]decimal.Decimal `json:"originalPrices"`
}

// Remaining returns the time left until EndTime, or zero once the deadline
// has passed. Pure derivation; it never mutates state.
func (f FlashSale) Remaining(now time.Time) time.Duration {
	if !f.Active {
		return 0
	}
	rem := f.EndTime.Sub(now)
	if rem < 0 {
		return 0
	}
	return rem
}

// Expired reports whether the sale deadline has passed.
func (f FlashSale) Expired(now time.Time) bool {
	return !f.EndTime.After(now)
}
