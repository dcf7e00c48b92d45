package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/apnidukan/dukan/internal/model"
)

func TestWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dukan.xlsx")
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	items := []model.Item{
		{ID: "a", Name: "Aloo", Price: decimal.RequireFromString("20"), PricingType: model.PerWeight, UpdatedAt: now},
	}
	bills := []model.Bill{
		{ID: "b1", BillNumber: "20250101-001", CustomerName: "Sharma ji",
			Items:       []model.BillItem{{ItemID: "a", Name: "Aloo"}},
			TotalAmount: decimal.RequireFromString("40"), CreatedAt: now, Paid: true},
	}
	accounts := []model.DailyAccount{
		{ID: "d1", Date: "2025-01-01",
			TotalSale:    decimal.RequireFromString("900"),
			TotalExpense: decimal.RequireFromString("80"),
			Profit:       decimal.RequireFromString("820")},
	}

	require.NoError(t, Workbook(path, items, bills, accounts))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	require.ElementsMatch(t, []string{"Price List", "Bills", "Daily Accounts"}, f.GetSheetList())

	name, err := f.GetCellValue("Price List", "A2")
	require.NoError(t, err)
	require.Equal(t, "Aloo", name)

	billNo, err := f.GetCellValue("Bills", "A2")
	require.NoError(t, err)
	require.Equal(t, "20250101-001", billNo)

	profit, err := f.GetCellValue("Daily Accounts", "D2")
	require.NoError(t, err)
	require.Equal(t, "820", profit)
}

func TestWorkbook_EmptyData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, Workbook(path, nil, nil, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Price List", "A1")
	require.NoError(t, err)
	require.Equal(t, "Name", header)
}
