package model

import "github.com/shopspring/decimal"

// DateLayout is the calendar-date key format for daily accounts.
const DateLayout = "2006-01-02"

// ExpenseEntry is a single expense line within a day.
type ExpenseEntry struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// DailyAccount aggregates one calendar date's expenses and sales.
// Date is the natural key: the store keeps at most one record per date and
// preserves the record's ID across repeated saves.
type DailyAccount struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"` // DateLayout
	Expenses     []ExpenseEntry  `json:"expenses"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	TotalSale    decimal.Decimal `json:"totalSale"`
	Profit       decimal.Decimal `json:"profit"` // TotalSale - TotalExpense
}

// Recompute derives TotalExpense and Profit from the expense list and
// TotalSale. The store calls this on every save so persisted records can
// never hold a stale aggregate.
func (a *DailyAccount) Recompute() {
	total := decimal.Zero
	for _, e := range a.Expenses {
		total = total.Add(e.Amount)
	}
	a.TotalExpense = total
	a.Profit = a.TotalSale.Sub(total)
}
