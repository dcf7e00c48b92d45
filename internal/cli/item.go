package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/apnidukan/dukan/internal/model"
	"github.com/apnidukan/dukan/internal/share"
	"github.com/apnidukan/dukan/internal/store"
)

// NewItemCommand creates the item command group (price-list CRUD).
func NewItemCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage the price list",
	}
	cmd.AddCommand(newItemAddCommand(rootOpts))
	cmd.AddCommand(newItemListCommand(rootOpts))
	cmd.AddCommand(newItemUpdateCommand(rootOpts))
	cmd.AddCommand(newItemDeleteCommand(rootOpts))
	return cmd
}

func newItemAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		pricingType string
		quantity    string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <price>",
		Short: "Add an item to the price list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			pt := model.PricingType(pricingType)
			if !pt.Valid() {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid pricing type %q: must be one of %v", pricingType, model.ValidPricingTypes))
			}

			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			item, err := st.AddItem(cmd.Context(), args[0], price, pt, quantity)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to add item", err)
			}
			return formatter(rootOpts, cmd).Print(item,
				fmt.Sprintf("Added %s at %s / %s (id %s)",
					item.Name, share.FormatINR(item.Price), item.PricingType.UnitLabel(), item.ID))
		},
	}

	cmd.Flags().StringVar(&pricingType, "type", string(model.PerWeight), "pricing type (per_weight|per_unit|per_piece|per_dozen)")
	cmd.Flags().StringVar(&quantity, "qty", "", "optional quantity label, e.g. \"500g pack\"")
	return cmd
}

func newItemListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			items := st.ListItems(cmd.Context())
			var b strings.Builder
			for _, item := range items {
				fmt.Fprintf(&b, "%s  %s  %s / %s", item.ID, item.Name,
					share.FormatINR(item.Price), item.PricingType.UnitLabel())
				if item.Quantity != "" {
					fmt.Fprintf(&b, "  (%s)", item.Quantity)
				}
				b.WriteByte('\n')
			}
			if len(items) == 0 {
				b.WriteString("No items yet. Add one with: dukan item add\n")
			}
			return formatter(rootOpts, cmd).Print(items, b.String())
		},
	}
}

func newItemUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		name        string
		priceStr    string
		pricingType string
		quantity    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update item fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch store.ItemPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("price") {
				price, err := parseAmount(priceStr)
				if err != nil {
					return err
				}
				patch.Price = &price
			}
			if cmd.Flags().Changed("type") {
				pt := model.PricingType(pricingType)
				if !pt.Valid() {
					return NewExitError(ExitCommandError,
						fmt.Sprintf("invalid pricing type %q: must be one of %v", pricingType, model.ValidPricingTypes))
				}
				patch.PricingType = &pt
			}
			if cmd.Flags().Changed("qty") {
				patch.Quantity = &quantity
			}

			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			item, err := st.UpdateItem(cmd.Context(), args[0], patch)
			if err != nil {
				return storeError("failed to update item", err)
			}
			return formatter(rootOpts, cmd).Print(item,
				fmt.Sprintf("Updated %s: %s / %s", item.Name,
					share.FormatINR(item.Price), item.PricingType.UnitLabel()))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&priceStr, "price", "", "new price")
	cmd.Flags().StringVar(&pricingType, "type", "", "new pricing type")
	cmd.Flags().StringVar(&quantity, "qty", "", "new quantity label")
	return cmd
}

func newItemDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.DeleteItem(cmd.Context(), args[0]); err != nil {
				return storeError("failed to delete item", err)
			}
			return formatter(rootOpts, cmd).Print(map[string]string{"deleted": args[0]},
				"Deleted "+args[0])
		},
	}
}

// parseAmount parses a decimal money argument.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewExitError(ExitCommandError, fmt.Sprintf("invalid amount %q", s))
	}
	return d, nil
}

// storeError maps store sentinel errors to exit-coded CLI errors.
func storeError(message string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrSaleActive),
		errors.Is(err, store.ErrNoActiveSale):
		return WrapExitError(ExitFailure, message, err)
	default:
		return WrapExitError(ExitCommandError, message, err)
	}
}
