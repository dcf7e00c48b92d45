package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apnidukan/dukan/internal/share"
)

// paymentPageEnv configures the base URL for hosted payment pages. It is the
// only environment-driven value in the tool.
const paymentPageEnv = "DUKAN_PAYMENT_PAGE_URL"

// NewShareCommand creates the share command group (WhatsApp-ready text).
func NewShareCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Build WhatsApp-ready messages and payment links",
	}
	cmd.AddCommand(newSharePriceListCommand(rootOpts))
	cmd.AddCommand(newShareBillCommand(rootOpts))
	return cmd
}

func newSharePriceListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pricelist",
		Short: "Print the price-list message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			settings := st.Settings(ctx)
			items := st.ListItems(ctx)
			sale, err := st.ActiveSale(ctx)
			if err != nil {
				return storeError("failed to read sale state", err)
			}

			msg := share.PriceListMessage(settings, items, sale, st.Now())
			return formatter(rootOpts, cmd).Print(map[string]string{"message": msg}, msg)
		},
	}
}

func newShareBillCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bill <id>",
		Short: "Print a bill message with payment links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			settings := st.Settings(ctx)
			bill, err := st.GetBill(ctx, args[0])
			if err != nil {
				return storeError("failed to load bill", err)
			}

			msg := share.BillMessage(settings, bill)
			if page := share.PaymentPageURL(os.Getenv(paymentPageEnv), bill.ID); page != "" {
				msg += fmt.Sprintf("Pay online: %s\n", page)
			}
			return formatter(rootOpts, cmd).Print(map[string]string{"message": msg}, msg)
		},
	}
}
