package share

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "₹0"},
		{"100", "₹100"},
		{"1250", "₹1,250"},
		{"99.5", "₹99.50"},
		{"28.50", "₹28.50"},
		// Indian grouping: lakh, not hundred-thousand.
		{"100000", "₹1,00,000"},
		{"1234567", "₹12,34,567"},
	}
	for _, c := range cases {
		if got := FormatINR(decimal.RequireFromString(c.in)); got != c.want {
			t.Errorf("FormatINR(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}
