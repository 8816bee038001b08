// Package cmd provides the CLI commands for expense-split.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"expense-split/core/output"
	"expense-split/core/types"
	"expense-split/internal/config"
	"expense-split/internal/errors"
	"expense-split/internal/logging"
)

// Version is stamped at build time with -ldflags "-X ...cmd.Version=...".
var Version = "0.1.0"

// Exit codes returned by ExitCode
const (
	ExitOK         = 0
	ExitError      = 1
	ExitValidation = 2
)

// rootOptions holds the persistent flags shared by every subcommand. The
// loaded configuration lives in config.Get.
type rootOptions struct {
	cfgFile  string
	verbose  bool
	format   string
	currency string
}

// outputFormat prefers --format over output.default_format.
func (o *rootOptions) outputFormat() (output.Format, error) {
	if o.format != "" {
		return output.ParseFormat(o.format)
	}
	return output.ParseFormat(config.Get().Output.DefaultFormat)
}

// outputCurrency prefers --currency over output.currency.
func (o *rootOptions) outputCurrency() types.Currency {
	if o.currency != "" {
		return types.ParseCurrency(o.currency)
	}
	return config.Get().Output.Currency
}

// Execute runs the CLI with os.Args
func Execute() error {
	return newRootCmd().Execute()
}

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsValidation(err):
		return ExitValidation
	default:
		return ExitError
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "expense-split",
		Short: "Split travel expenses between company and employee",
		Long: `expense-split applies the travel reimbursement policy to lodging and
flight expenses and reports what the company and the employee each pay.

Examples:
  expense-split hotel --standard 400 --nights 2 --total 1600
  expense-split hotel --standard 400 --nights 3 --price-per-night 520 --format json
  expense-split flight split --total 1234.56 --percent 60
  expense-split flight upgrade --economy 1000 --upgrade 2000
  expense-split serve --config expense-split.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (JSON, YAML or TOML)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format (cli, json, yaml, markdown)")
	root.PersistentFlags().StringVar(&opts.currency, "currency", "", "display currency (CNY, USD)")

	root.AddCommand(newHotelCmd(opts))
	root.AddCommand(newFlightCmd(opts))
	root.AddCommand(newRulesCmd(opts))
	root.AddCommand(newServeCmd())
	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd())

	return root
}

func initConfig(opts *rootOptions) error {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return err
	}
	config.Set(cfg)

	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	logging.Debug("configuration loaded")
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "expense-split version %s\n", Version)
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(config.Get())
			if err != nil {
				return errors.Output("encode config", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})

	return configCmd
}
