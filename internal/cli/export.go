package cli

import (
	"github.com/spf13/cobra"

	"github.com/apnidukan/dukan/internal/export"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export price list, bills, and accounts to a spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			items := st.ListItems(ctx)
			bills, err := st.ListBills(ctx)
			if err != nil {
				return storeError("failed to list bills", err)
			}
			accounts := st.ListDailyAccounts(ctx)

			if err := export.Workbook(out, items, bills, accounts); err != nil {
				return WrapExitError(ExitCommandError, "failed to write workbook", err)
			}
			return formatter(rootOpts, cmd).Print(map[string]string{"file": out},
				"Wrote "+out)
		},
	}

	cmd.Flags().StringVar(&out, "out", "dukan.xlsx", "output file")
	return cmd
}
