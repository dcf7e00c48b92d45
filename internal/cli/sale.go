package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/apnidukan/dukan/internal/share"
)

// NewSaleCommand creates the flash-sale command group.
func NewSaleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Run time-boxed flash sales",
		Long: `Start a flash sale, discount items while it runs, and end it.

Starting a sale snapshots every current price. Ending the sale (or letting it
expire) restores every snapshotted price exactly. Only one sale can be active
at a time.`,
	}
	cmd.AddCommand(newSaleStartCommand(rootOpts))
	cmd.AddCommand(newSalePriceCommand(rootOpts))
	cmd.AddCommand(newSaleStatusCommand(rootOpts))
	cmd.AddCommand(newSaleEndCommand(rootOpts))
	return cmd
}

func newSaleStartCommand(rootOpts *RootOptions) *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a flash sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			sale, err := st.StartSale(cmd.Context(), time.Duration(hours*float64(time.Hour)))
			if err != nil {
				return storeError("failed to start sale", err)
			}
			return formatter(rootOpts, cmd).Print(sale,
				fmt.Sprintf("Flash sale started, ends at %s (%d snapshotted prices)",
					sale.EndTime.Format("15:04"), len(sale.OriginalPrices)))
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 2, "sale duration in hours")
	return cmd
}

func newSalePriceCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "price <item-id> <price>",
		Short: "Set an item's sale price (reverts when the sale ends)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			item, err := st.SetSalePrice(cmd.Context(), args[0], price)
			if err != nil {
				return storeError("failed to set sale price", err)
			}
			return formatter(rootOpts, cmd).Print(item,
				fmt.Sprintf("%s now %s for the sale", item.Name, share.FormatINR(item.Price)))
		},
	}
}

func newSaleStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active sale and remaining time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			// ActiveSale performs lazy expiry: an overdue sale is reverted
			// and removed right here.
			sale, err := st.ActiveSale(cmd.Context())
			if err != nil {
				return storeError("failed to read sale state", err)
			}
			if sale == nil {
				return formatter(rootOpts, cmd).Print(nil, "No active flash sale.")
			}
			remaining := st.SaleRemaining(cmd.Context())
			return formatter(rootOpts, cmd).Print(sale,
				fmt.Sprintf("Flash sale active, %s remaining (ends %s)",
					remaining.Round(time.Second), sale.EndTime.Format("15:04")))
		},
	}
}

func newSaleEndCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the sale and restore prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.EndSale(cmd.Context()); err != nil {
				return storeError("failed to end sale", err)
			}
			return formatter(rootOpts, cmd).Print(map[string]bool{"ended": true},
				"Flash sale ended, prices restored.")
		},
	}
}
