package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apnidukan/dukan/internal/share"
	"github.com/apnidukan/dukan/internal/store"
)

// NewBillCommand creates the bill command group.
func NewBillCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Create and manage bills",
	}
	cmd.AddCommand(newBillCreateCommand(rootOpts))
	cmd.AddCommand(newBillListCommand(rootOpts))
	cmd.AddCommand(newBillPayCommand(rootOpts))
	cmd.AddCommand(newBillDeleteCommand(rootOpts))
	return cmd
}

func newBillCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		flat  string
		lines []string
	)

	cmd := &cobra.Command{
		Use:   "create <customer>",
		Short: "Create a bill from item lines",
		Long: `Create a bill for a customer. Each --line is "<item-id>:<quantity>";
the item's current name and price are snapshotted into the bill.

Example:
  dukan bill create "Sharma ji" --flat B-204 --line 0190f9e0...:2 --line 0190fa11...:1.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(lines) == 0 {
				return NewExitError(ExitCommandError, "at least one --line is required")
			}
			billLines := make([]store.BillLine, 0, len(lines))
			for _, raw := range lines {
				itemID, qtyStr, ok := strings.Cut(raw, ":")
				if !ok {
					return NewExitError(ExitCommandError,
						fmt.Sprintf("invalid line %q: expected <item-id>:<quantity>", raw))
				}
				qty, err := parseAmount(qtyStr)
				if err != nil {
					return err
				}
				billLines = append(billLines, store.BillLine{ItemID: itemID, Quantity: qty})
			}

			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			bill, err := st.CreateBill(cmd.Context(), args[0], flat, billLines)
			if err != nil {
				return storeError("failed to create bill", err)
			}
			return formatter(rootOpts, cmd).Print(bill,
				fmt.Sprintf("Bill %s for %s: %s (id %s)",
					bill.BillNumber, bill.CustomerName, share.FormatINR(bill.TotalAmount), bill.ID))
		},
	}

	cmd.Flags().StringVar(&flat, "flat", "", "flat number / address")
	cmd.Flags().StringArrayVar(&lines, "line", nil, "bill line <item-id>:<quantity> (repeatable)")
	return cmd
}

func newBillListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bills from the last 7 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			bills, err := st.ListBills(cmd.Context())
			if err != nil {
				return storeError("failed to list bills", err)
			}

			var b strings.Builder
			for _, bill := range bills {
				status := "pending"
				if bill.Paid {
					status = "paid"
				}
				fmt.Fprintf(&b, "%s  %s  %s  %s  [%s]  %s\n",
					bill.BillNumber, bill.CreatedAt.Format("02 Jan 15:04"),
					bill.CustomerName, share.FormatINR(bill.TotalAmount), status, bill.ID)
			}
			if len(bills) == 0 {
				b.WriteString("No bills in the last 7 days.\n")
			}
			return formatter(rootOpts, cmd).Print(bills, b.String())
		},
	}
}

func newBillPayCommand(rootOpts *RootOptions) *cobra.Command {
	var unpaid bool

	cmd := &cobra.Command{
		Use:   "pay <id>",
		Short: "Mark a bill paid (or pending with --undo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			bill, err := st.SetBillPaid(cmd.Context(), args[0], !unpaid)
			if err != nil {
				return storeError("failed to update bill", err)
			}
			status := "paid"
			if !bill.Paid {
				status = "pending"
			}
			return formatter(rootOpts, cmd).Print(bill,
				fmt.Sprintf("Bill %s marked %s", bill.BillNumber, status))
		},
	}

	cmd.Flags().BoolVar(&unpaid, "undo", false, "mark as pending instead of paid")
	return cmd
}

func newBillDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteBill(cmd.Context(), args[0]); err != nil {
				return storeError("failed to delete bill", err)
			}
			return formatter(rootOpts, cmd).Print(map[string]string{"deleted": args[0]},
				"Deleted "+args[0])
		},
	}
}
