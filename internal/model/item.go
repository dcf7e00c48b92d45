package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingType describes how an item's price is quoted.
type PricingType string

const (
	PerWeight PricingType = "per_weight" // price per kilogram
	PerUnit   PricingType = "per_unit"
	PerPiece  PricingType = "per_piece"
	PerDozen  PricingType = "per_dozen"
)

// ValidPricingTypes lists the accepted pricing types in display order.
var ValidPricingTypes = []PricingType{PerWeight, PerUnit, PerPiece, PerDozen}

// UnitLabel returns the short unit suffix used in price lists and bills,
// e.g. "₹20 / kg".
func (p PricingType) UnitLabel() string {
	switch p {
	case PerWeight:
		return "kg"
	case PerUnit:
		return "unit"
	case PerPiece:
		return "piece"
	case PerDozen:
		return "dozen"
	default:
		return string(p)
	}
}

// Valid reports whether p is one of the known pricing types.
func (p PricingType) Valid() bool {
	for _, v := range ValidPricingTypes {
		if p == v {
			return true
		}
	}
	return false
}

// Item is a catalog entry. Price may be overwritten while a flash sale is
// active; the flash-sale record keeps the original for reversion.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	PricingType PricingType     `json:"pricingType"`
	Quantity    string          `json:"quantity,omitempty"` // optional label, e.g. "500g pack"
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
