// Package export writes shop data to spreadsheet files the shopkeeper can
// open or send onward.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/apnidukan/dukan/internal/model"
)

// Workbook writes a three-sheet .xlsx: price list, surviving bills, and
// daily accounts. Money cells hold float values so spreadsheet sums work.
func Workbook(path string, items []model.Item, bills []model.Bill, accounts []model.DailyAccount) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writePriceList(f, items); err != nil {
		return err
	}
	if err := writeBills(f, bills); err != nil {
		return err
	}
	if err := writeAccounts(f, accounts); err != nil {
		return err
	}

	// Drop the default sheet created by NewFile.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writePriceList(f *excelize.File, items []model.Item) error {
	const sheet = "Price List"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, "Name", "Price", "Unit", "Quantity", "Updated"); err != nil {
		return err
	}
	for i, item := range items {
		price, _ := item.Price.Float64()
		if err := setRow(f, sheet, i+2,
			item.Name, price, item.PricingType.UnitLabel(), item.Quantity,
			item.UpdatedAt.Format("2006-01-02 15:04"),
		); err != nil {
			return err
		}
	}
	return nil
}

func writeBills(f *excelize.File, bills []model.Bill) error {
	const sheet = "Bills"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, "Bill No", "Customer", "Flat", "Items", "Total", "Paid", "Created"); err != nil {
		return err
	}
	for i, b := range bills {
		total, _ := b.TotalAmount.Float64()
		if err := setRow(f, sheet, i+2,
			b.BillNumber, b.CustomerName, b.FlatNumber, len(b.Items), total, b.Paid,
			b.CreatedAt.Format("2006-01-02 15:04"),
		); err != nil {
			return err
		}
	}
	return nil
}

func writeAccounts(f *excelize.File, accounts []model.DailyAccount) error {
	const sheet = "Daily Accounts"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}
	if err := setRow(f, sheet, 1, "Date", "Total Sale", "Total Expense", "Profit"); err != nil {
		return err
	}
	for i, a := range accounts {
		sale, _ := a.TotalSale.Float64()
		expense, _ := a.TotalExpense.Float64()
		profit, _ := a.Profit.Float64()
		if err := setRow(f, sheet, i+2, a.Date, sale, expense, profit); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d on %s: %w", row, sheet, err)
	}
	return nil
}
