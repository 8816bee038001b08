package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"expense-split/core/flight"
	"expense-split/core/output"
	"expense-split/internal/config"
	"expense-split/internal/errors"
	"expense-split/internal/logging"
)

func newFlightCmd(root *rootOptions) *cobra.Command {
	flightCmd := &cobra.Command{
		Use:   "flight",
		Short: "Split flight costs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flightCmd.AddCommand(newFlightSplitCmd(root))
	flightCmd.AddCommand(newFlightUpgradeCmd(root))
	return flightCmd
}

func newFlightSplitCmd(root *rootOptions) *cobra.Command {
	var (
		total   float64
		percent float64
		preset  string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a fare by a flat company percentage",
		Long: `Split a fare by a flat company percentage.

Presets: economy100 (company pays 100%), upgrade75 (75%), custom (--percent).
Giving --percent alone implies custom; with neither flag the configured
flight.default_preset applies.

Examples:
  expense-split flight split --total 1234.56 --percent 60
  expense-split flight split --total 800 --preset economy100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := root.outputFormat()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("total") {
				return errors.Validation("total", errors.MsgInvalidInput)
			}

			p := flight.Preset(preset)
			if p == "" {
				if cmd.Flags().Changed("percent") {
					p = flight.PresetCustom
				} else {
					p = flight.Preset(config.Get().Flight.DefaultPreset)
				}
			}
			if p == flight.PresetCustom && !cmd.Flags().Changed("percent") {
				return errors.Validation("company_percent", errors.MsgPercentRange)
			}

			pct, err := flight.PresetPercent(p, percent)
			if err != nil {
				return err
			}
			result, err := flight.SplitFlat(total, pct)
			if err != nil {
				logging.Warn("flight split rejected", zap.Error(err))
				return err
			}

			return output.RenderFlight(cmd.OutOrStdout(), format, output.FlightReport{
				Mode:     "split",
				Currency: root.outputCurrency(),
				Result:   result,
			})
		},
	}

	cmd.Flags().Float64Var(&total, "total", 0, "total fare")
	cmd.Flags().Float64VarP(&percent, "percent", "p", 0, "company percentage (0-100)")
	cmd.Flags().StringVar(&preset, "preset", "", "economy100, upgrade75 or custom")

	return cmd
}

func newFlightUpgradeCmd(root *rootOptions) *cobra.Command {
	var (
		economy float64
		upgrade float64
		percent float64
	)

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Cover economy in full and split the upgrade",
		Long: `Cover the economy fare in full and split only the upgrade cost.

--percent is the company share of the upgrade; it defaults to
flight.upgrade_company_percent (75).

Examples:
  expense-split flight upgrade --economy 1000 --upgrade 2000
  expense-split flight upgrade --economy 1000 --upgrade 2000 --percent 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := root.outputFormat()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("economy") && !cmd.Flags().Changed("upgrade") {
				return errors.Validation("amounts", errors.MsgInvalidInput)
			}

			pct := config.Get().Flight.UpgradeCompanyPercent
			if cmd.Flags().Changed("percent") {
				pct = percent
			}

			result, err := flight.SplitUpgrade(economy, upgrade, pct)
			if err != nil {
				logging.Warn("flight upgrade rejected", zap.Error(err))
				return err
			}

			return output.RenderFlight(cmd.OutOrStdout(), format, output.FlightReport{
				Mode:     "upgrade",
				Currency: root.outputCurrency(),
				Result:   result,
			})
		},
	}

	cmd.Flags().Float64Var(&economy, "economy", 0, "economy fare")
	cmd.Flags().Float64Var(&upgrade, "upgrade", 0, "upgrade cost above economy")
	cmd.Flags().Float64VarP(&percent, "percent", "p", 0, "company percentage of the upgrade (0-100)")

	return cmd
}
