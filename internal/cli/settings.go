package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/apnidukan/dukan/internal/model"
)

// NewSettingsCommand creates the settings command group.
func NewSettingsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Shop configuration",
	}
	cmd.AddCommand(newSettingsShowCommand(rootOpts))
	cmd.AddCommand(newSettingsSetCommand(rootOpts))
	cmd.AddCommand(newSettingsImportCommand(rootOpts))
	return cmd
}

func newSettingsShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			settings := st.Settings(cmd.Context())
			var b strings.Builder
			fmt.Fprintf(&b, "Business: %s\n", settings.BusinessName)
			fmt.Fprintf(&b, "Phone:    %s\n", settings.Phone)
			fmt.Fprintf(&b, "Address:  %s\n", settings.Address)
			fmt.Fprintf(&b, "UPI:      %s\n", settings.UPIID)
			if settings.PhonePeUPI != "" {
				fmt.Fprintf(&b, "PhonePe:  %s\n", settings.PhonePeUPI)
			}
			if settings.GPayUPI != "" {
				fmt.Fprintf(&b, "GPay:     %s\n", settings.GPayUPI)
			}
			for _, g := range settings.Groups {
				fmt.Fprintf(&b, "Group:    %s (%s)\n", g.Name, g.ID)
			}
			return formatter(rootOpts, cmd).Print(settings, b.String())
		},
	}
}

func newSettingsSetCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		business string
		phone    string
		address  string
		upiID    string
		phonePe  string
		gpay     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			settings := st.Settings(cmd.Context())
			if cmd.Flags().Changed("business") {
				settings.BusinessName = business
			}
			if cmd.Flags().Changed("phone") {
				settings.Phone = phone
			}
			if cmd.Flags().Changed("address") {
				settings.Address = address
			}
			if cmd.Flags().Changed("upi") {
				settings.UPIID = upiID
			}
			if cmd.Flags().Changed("phonepe") {
				settings.PhonePeUPI = phonePe
			}
			if cmd.Flags().Changed("gpay") {
				settings.GPayUPI = gpay
			}

			if err := st.SaveSettings(cmd.Context(), settings); err != nil {
				return storeError("failed to save settings", err)
			}
			return formatter(rootOpts, cmd).Print(settings, "Settings saved.")
		},
	}

	cmd.Flags().StringVar(&business, "business", "", "business name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&address, "address", "", "shop address")
	cmd.Flags().StringVar(&upiID, "upi", "", "general UPI id")
	cmd.Flags().StringVar(&phonePe, "phonepe", "", "PhonePe UPI id")
	cmd.Flags().StringVar(&gpay, "gpay", "", "GPay UPI id")
	return cmd
}

func newSettingsImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Replace settings from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to read settings file", err)
			}
			var settings model.Settings
			if err := yaml.Unmarshal(data, &settings); err != nil {
				return WrapExitError(ExitCommandError, "failed to parse settings file", err)
			}

			st, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.SaveSettings(cmd.Context(), settings); err != nil {
				return storeError("failed to save settings", err)
			}
			return formatter(rootOpts, cmd).Print(settings.WithDefaults(),
				"Settings imported from "+args[0])
		},
	}
}
