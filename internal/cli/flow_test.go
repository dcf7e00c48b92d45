package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apnidukan/dukan/internal/model"
)

func TestItemAddListDelete(t *testing.T) {
	data := dataDir(t)

	out, err := runCLI(t, "--data", data, "--format", "json",
		"item", "add", "Aloo", "20", "--type", "per_weight")
	require.NoError(t, err)

	var added model.Item
	decodeResponse(t, out, &added)
	require.Equal(t, "Aloo", added.Name)
	require.NotEmpty(t, added.ID)

	out, err = runCLI(t, "--data", data, "--format", "json", "item", "list")
	require.NoError(t, err)
	var items []model.Item
	decodeResponse(t, out, &items)
	require.Len(t, items, 1)

	_, err = runCLI(t, "--data", data, "item", "delete", added.ID)
	require.NoError(t, err)

	out, err = runCLI(t, "--data", data, "--format", "json", "item", "list")
	require.NoError(t, err)
	items = nil
	decodeResponse(t, out, &items)
	require.Empty(t, items)
}

func TestItemAdd_InvalidInputs(t *testing.T) {
	data := dataDir(t)

	_, err := runCLI(t, "--data", data, "item", "add", "Aloo", "twenty")
	require.Error(t, err)
	require.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runCLI(t, "--data", data, "item", "add", "Aloo", "20", "--type", "per_gram")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid pricing type")
}

func TestBillFlow(t *testing.T) {
	data := dataDir(t)

	out, err := runCLI(t, "--data", data, "--format", "json",
		"item", "add", "Aloo", "20")
	require.NoError(t, err)
	var item model.Item
	decodeResponse(t, out, &item)

	out, err = runCLI(t, "--data", data, "--format", "json",
		"bill", "create", "Sharma ji", "--flat", "B-204", "--line", item.ID+":2")
	require.NoError(t, err)
	var bill model.Bill
	decodeResponse(t, out, &bill)
	require.Regexp(t, `^\d{8}-001$`, bill.BillNumber)
	require.True(t, bill.TotalAmount.IntPart() == 40)

	out, err = runCLI(t, "--data", data, "--format", "json", "bill", "pay", bill.ID)
	require.NoError(t, err)
	var paid model.Bill
	decodeResponse(t, out, &paid)
	require.True(t, paid.Paid)

	out, err = runCLI(t, "--data", data, "--format", "json", "bill", "list")
	require.NoError(t, err)
	var bills []model.Bill
	decodeResponse(t, out, &bills)
	require.Len(t, bills, 1)
}

func TestSaleLifecycle(t *testing.T) {
	data := dataDir(t)

	out, err := runCLI(t, "--data", data, "--format", "json",
		"item", "add", "Aloo", "100")
	require.NoError(t, err)
	var item model.Item
	decodeResponse(t, out, &item)

	_, err = runCLI(t, "--data", data, "sale", "start", "--hours", "2")
	require.NoError(t, err)

	// A second start is rejected while the sale runs.
	_, err = runCLI(t, "--data", data, "sale", "start", "--hours", "1")
	require.Error(t, err)
	require.Equal(t, ExitFailure, GetExitCode(err))

	_, err = runCLI(t, "--data", data, "sale", "price", item.ID, "50")
	require.NoError(t, err)

	out, err = runCLI(t, "--data", data, "--format", "json", "item", "list")
	require.NoError(t, err)
	var items []model.Item
	decodeResponse(t, out, &items)
	require.True(t, items[0].Price.IntPart() == 50)

	_, err = runCLI(t, "--data", data, "sale", "end")
	require.NoError(t, err)

	out, err = runCLI(t, "--data", data, "--format", "json", "item", "list")
	require.NoError(t, err)
	items = nil
	decodeResponse(t, out, &items)
	require.True(t, items[0].Price.IntPart() == 100, "price must revert when the sale ends")

	out, err = runCLI(t, "--data", data, "sale", "status")
	require.NoError(t, err)
	require.Contains(t, out, "No active flash sale")
}

func TestAccountFlow(t *testing.T) {
	data := dataDir(t)

	_, err := runCLI(t, "--data", data, "account", "expense", "transport", "50", "--date", "2025-01-01")
	require.NoError(t, err)
	_, err = runCLI(t, "--data", data, "account", "sale", "900", "--date", "2025-01-01")
	require.NoError(t, err)

	out, err := runCLI(t, "--data", data, "--format", "json", "account", "list")
	require.NoError(t, err)
	var accounts []model.DailyAccount
	decodeResponse(t, out, &accounts)
	require.Len(t, accounts, 1)
	require.True(t, accounts[0].Profit.IntPart() == 850)
}

func TestSettingsAndShare(t *testing.T) {
	data := dataDir(t)

	_, err := runCLI(t, "--data", data, "settings", "set",
		"--business", "Apni Dukan", "--upi", "apnidukan@upi")
	require.NoError(t, err)

	_, err = runCLI(t, "--data", data, "item", "add", "Aloo", "20")
	require.NoError(t, err)

	out, err := runCLI(t, "--data", data, "share", "pricelist")
	require.NoError(t, err)
	require.Contains(t, out, "Apni Dukan")
	require.Contains(t, out, "Aloo")
	require.Contains(t, out, "apnidukan@upi")
}
