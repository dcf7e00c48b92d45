// Package cli implements the dukan command line front end over the shop
// data store.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/apnidukan/dukan/internal/kv"
	"github.com/apnidukan/dukan/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Data    string // data path: *.db opens SQLite, anything else a JSON dir
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the dukan CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dukan",
		Short: "Apni Dukan - digital shop toolkit",
		Long: "Maintain a price list, generate bills, track daily accounts, run\n" +
			"flash sales, and share WhatsApp-ready messages and UPI links.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			logLevel := slog.LevelWarn
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})))

			// Optional .env for DUKAN_PAYMENT_PAGE_URL; absence is fine.
			_ = godotenv.Load()
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Data, "data", "dukan.db", "data path (*.db for SQLite, directory for JSON files)")

	// Add subcommands
	cmd.AddCommand(NewItemCommand(opts))
	cmd.AddCommand(NewBillCommand(opts))
	cmd.AddCommand(NewAccountCommand(opts))
	cmd.AddCommand(NewSaleCommand(opts))
	cmd.AddCommand(NewSettingsCommand(opts))
	cmd.AddCommand(NewShareCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// openStore opens the backend selected by --data and wraps it in a Store.
func openStore(opts *RootOptions) (*store.Store, error) {
	var (
		backend kv.Store
		err     error
	)
	if strings.HasSuffix(opts.Data, ".db") {
		backend, err = kv.OpenSQLite(opts.Data)
	} else {
		backend, err = kv.OpenDir(opts.Data)
	}
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("failed to open data path %s", opts.Data), err)
	}
	return store.New(backend, store.WithLogger(slog.Default())), nil
}

// formatter builds the output formatter for a command.
func formatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}
