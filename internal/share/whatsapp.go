package share

import (
	"fmt"
	"strings"
	"time"

	"github.com/apnidukan/dukan/internal/model"
)

const divider = "━━━━━━━━━━━━━━━"

// PriceListMessage renders the shop's current price list as a WhatsApp-ready
// text block. When a sale is running, a banner with the remaining time is
// added above the items.
func PriceListMessage(settings model.Settings, items []model.Item, sale *model.FlashSale, now time.Time) string {
	var b strings.Builder

	writeHeader(&b, settings)

	if sale != nil && sale.Remaining(now) > 0 {
		fmt.Fprintf(&b, "⚡ *FLASH SALE* — ends in %s\n", formatRemaining(sale.Remaining(now)))
		b.WriteString(divider + "\n")
	}

	b.WriteString("🛒 *Today's Price List*\n")
	for _, item := range items {
		fmt.Fprintf(&b, "• %s — %s / %s", item.Name, FormatINR(item.Price), item.PricingType.UnitLabel())
		if item.Quantity != "" {
			fmt.Fprintf(&b, " (%s)", item.Quantity)
		}
		b.WriteByte('\n')
	}
	b.WriteString(divider + "\n")

	writeUPIFooter(&b, settings)
	return b.String()
}

// BillMessage renders one bill as a WhatsApp-ready receipt, including a UPI
// payment link when the shop has a UPI id configured.
func BillMessage(settings model.Settings, bill model.Bill) string {
	var b strings.Builder

	writeHeader(&b, settings)

	fmt.Fprintf(&b, "🧾 *Bill %s*\n", bill.BillNumber)
	fmt.Fprintf(&b, "Customer: %s\n", bill.CustomerName)
	if bill.FlatNumber != "" {
		fmt.Fprintf(&b, "Flat: %s\n", bill.FlatNumber)
	}
	b.WriteString(divider + "\n")
	for _, line := range bill.Items {
		fmt.Fprintf(&b, "%s  %s %s × %s = %s\n",
			line.Name,
			line.Quantity.String(),
			line.PricingType.UnitLabel(),
			FormatINR(line.Price),
			FormatINR(line.Total),
		)
	}
	b.WriteString(divider + "\n")
	fmt.Fprintf(&b, "*Total: %s*\n", FormatINR(bill.TotalAmount))
	if bill.Paid {
		b.WriteString("✅ Paid\n")
	} else {
		b.WriteString("🕐 Payment pending\n")
		if settings.UPIID != "" {
			fmt.Fprintf(&b, "Pay via UPI: %s\n",
				UPILink(settings.UPIID, settings.BusinessName, bill.TotalAmount, "Bill "+bill.BillNumber))
		}
	}
	return b.String()
}

func writeHeader(b *strings.Builder, settings model.Settings) {
	if settings.BusinessName != "" {
		fmt.Fprintf(b, "🏪 *%s*\n", settings.BusinessName)
	}
	if settings.Address != "" {
		fmt.Fprintf(b, "📍 %s\n", settings.Address)
	}
	if settings.Phone != "" {
		fmt.Fprintf(b, "📞 %s\n", settings.Phone)
	}
	b.WriteByte('\n')
}

func writeUPIFooter(b *strings.Builder, settings model.Settings) {
	if settings.UPIID == "" {
		return
	}
	fmt.Fprintf(b, "💳 UPI: %s\n", settings.UPIID)
}

// formatRemaining renders a countdown like "2h 05m" or "45m".
func formatRemaining(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
