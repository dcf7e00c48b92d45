package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillItem is a denormalized snapshot of a catalog item at sale time.
// Later mutation or deletion of the catalog entry never changes a bill.
type BillItem struct {
	ItemID      string          `json:"itemId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	PricingType PricingType     `json:"pricingType"`
	Quantity    decimal.Decimal `json:"quantity"`
	Total       decimal.Decimal `json:"total"` // Price * Quantity at creation
}

// Bill is a sales receipt. Immutable after creation except for the Paid flag.
//
// BillNumber has the form YYYYMMDD-NNN where NNN is a per-day sequence
// starting at 001. TotalAmount equals the sum of item totals at creation.
type Bill struct {
	ID           string          `json:"id"`
	BillNumber   string          `json:"billNumber"`
	CustomerName string          `json:"customerName"`
	FlatNumber   string          `json:"flatNumber,omitempty"`
	Items        []BillItem      `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CreatedAt    time.Time       `json:"createdAt"`
	Paid         bool            `json:"paid"`
}
