package share

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// UPILink builds a upi://pay deep link that any UPI app (PhonePe, GPay,
// Paytm) can open. Amount is omitted when zero so the payer can enter one.
func UPILink(upiID, payeeName string, amount decimal.Decimal, note string) string {
	v := url.Values{}
	v.Set("pa", upiID)
	if payeeName != "" {
		v.Set("pn", payeeName)
	}
	if amount.IsPositive() {
		v.Set("am", amount.StringFixed(2))
	}
	v.Set("cu", "INR")
	if note != "" {
		v.Set("tn", note)
	}
	return "upi://pay?" + v.Encode()
}

// PaymentPageURL joins the configured payment-page base URL with a bill id.
// Returns empty when no base is configured.
func PaymentPageURL(base, billID string) string {
	if base == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/pay/" + url.PathEscape(billID)
}
