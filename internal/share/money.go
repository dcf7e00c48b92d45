// Package share builds the outward-facing text the shop sends out: WhatsApp
// price-list and bill messages, UPI payment links, and payment-page URLs.
// Everything here is pure formatting over store entities.
package share

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// inr formats numbers with Indian digit grouping (1,00,000 not 100,000).
var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount as a rupee string, e.g. "₹1,250" or "₹99.50".
// Whole amounts drop the paise digits; fractional amounts always show two.
func FormatINR(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	if amount.IsInteger() {
		return inr.Sprintf("₹%v", number.Decimal(f, number.MaxFractionDigits(0)))
	}
	return inr.Sprintf("₹%v", number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
