package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/apnidukan/dukan/internal/model"
	"github.com/apnidukan/dukan/internal/share"
)

// NewAccountCommand creates the account command group (daily income/expense).
func NewAccountCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Record daily expenses and sales",
	}
	cmd.AddCommand(newAccountExpenseCommand(rootOpts))
	cmd.AddCommand(newAccountSaleCommand(rootOpts))
	cmd.AddCommand(newAccountListCommand(rootOpts))
	return cmd
}

// accountDate validates the --date flag. Empty means today; the caller
// resolves that against the store's clock.
func accountDate(date string) (string, error) {
	if date == "" {
		return "", nil
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return "", NewExitError(ExitCommandError,
			fmt.Sprintf("invalid date %q: expected %s", date, model.DateLayout))
	}
	return date, nil
}

func newAccountExpenseCommand(rootOpts *RootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "expense <description> <amount>",
		Short: "Add an expense entry for a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			day, err := accountDate(date)
			if err != nil {
				return err
			}

			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			if day == "" {
				day = st.Today()
			}
			account, err := st.AddExpense(cmd.Context(), day, args[0], amount)
			if err != nil {
				return storeError("failed to record expense", err)
			}
			return formatter(rootOpts, cmd).Print(account,
				fmt.Sprintf("%s: expense %s (%s), day total %s",
					account.Date, share.FormatINR(amount), args[0], share.FormatINR(account.TotalExpense)))
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD), defaults to today")
	return cmd
}

func newAccountSaleCommand(rootOpts *RootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "sale <amount>",
		Short: "Set the day's total sale figure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			day, err := accountDate(date)
			if err != nil {
				return err
			}

			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			if day == "" {
				day = st.Today()
			}
			account, err := st.SetDailySale(cmd.Context(), day, amount)
			if err != nil {
				return storeError("failed to record sale", err)
			}
			return formatter(rootOpts, cmd).Print(account,
				fmt.Sprintf("%s: sale %s, profit %s",
					account.Date, share.FormatINR(account.TotalSale), share.FormatINR(account.Profit)))
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD), defaults to today")
	return cmd
}

func newAccountListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List daily accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			accounts := st.ListDailyAccounts(cmd.Context())
			var b strings.Builder
			for _, a := range accounts {
				fmt.Fprintf(&b, "%s  sale %s  expense %s  profit %s\n",
					a.Date, share.FormatINR(a.TotalSale),
					share.FormatINR(a.TotalExpense), share.FormatINR(a.Profit))
			}
			if len(accounts) == 0 {
				b.WriteString("No daily accounts yet.\n")
			}
			return formatter(rootOpts, cmd).Print(accounts, b.String())
		},
	}
}
