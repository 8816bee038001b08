package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"expense-split/core/output"
	"expense-split/core/reimbursement"
	"expense-split/internal/config"
	"expense-split/internal/errors"
	"expense-split/internal/logging"
)

type hotelOptions struct {
	standard      float64
	nights        int
	mode          string
	total         float64
	pricePerNight float64
	approved      bool
	showZeroBands bool
	xlsxPath      string
}

func newHotelCmd(root *rootOptions) *cobra.Command {
	opts := &hotelOptions{}

	cmd := &cobra.Command{
		Use:   "hotel",
		Short: "Split a lodging expense across the reimbursement bands",
		Long: `Split a lodging expense between company and employee.

The standard amount is the nightly cap times the number of nights. Spend
up to it is covered in full, the next quarter of it is shared 75/25, spend
up to three times the standard is shared 50/50 and anything beyond is paid
by the employee. --approved skips the bands and covers everything.

Examples:
  expense-split hotel --standard 400 --nights 2 --total 1600
  expense-split hotel --standard 400 --nights 3 --price-per-night 520
  expense-split hotel --standard 400 --nights 2 --total 3000 --xlsx stay.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHotel(cmd, root, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.standard, "standard", 0, "nightly standard (cap) amount")
	cmd.Flags().IntVarP(&opts.nights, "nights", "n", 0, "number of nights")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "input mode: total or pernight (inferred from the amount flag when empty)")
	cmd.Flags().Float64Var(&opts.total, "total", 0, "total spend for the stay")
	cmd.Flags().Float64Var(&opts.pricePerNight, "price-per-night", 0, "actual price per night")
	cmd.Flags().BoolVar(&opts.approved, "approved", false, "special approval: the company pays everything")
	cmd.Flags().BoolVar(&opts.showZeroBands, "show-zero-bands", false, "list bands the spend never reached")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "also export the breakdown to this .xlsx file")

	return cmd
}

func runHotel(cmd *cobra.Command, root *rootOptions, opts *hotelOptions) error {
	format, err := root.outputFormat()
	if err != nil {
		return err
	}

	in, err := opts.input(cmd)
	if err != nil {
		return err
	}
	in.Currency = root.outputCurrency()

	result, err := reimbursement.Calculate(in)
	if err != nil {
		logging.Warn("hotel calculation rejected", zap.Error(err))
		return err
	}
	logging.Debug("hotel calculated",
		zap.String("kind", string(result.Kind)),
		zap.String("company", result.CompanyAmount.String()),
		zap.String("employee", result.EmployeeAmount.String()),
	)

	renderOpts := output.Options{ShowZeroBands: opts.showZeroBands || config.Get().Output.ShowZeroBands}
	if err := output.RenderHotel(cmd.OutOrStdout(), format, result, renderOpts); err != nil {
		return err
	}

	if opts.xlsxPath != "" {
		return writeXLSX(opts.xlsxPath, result)
	}
	return nil
}

// input builds the calculator input. Only flags the user actually set are
// passed as amounts, so a missing amount is reported by the calculator.
func (o *hotelOptions) input(cmd *cobra.Command) (reimbursement.Input, error) {
	in := reimbursement.Input{
		StandardPerNight:   o.standard,
		Nights:             o.nights,
		Mode:               reimbursement.InputMode(o.mode),
		HasSpecialApproval: o.approved,
	}

	totalSet := cmd.Flags().Changed("total")
	perNightSet := cmd.Flags().Changed("price-per-night")

	if in.Mode == "" {
		switch {
		case totalSet && perNightSet:
			return in, errors.Input("give either --total or --price-per-night, not both", nil)
		case perNightSet:
			in.Mode = reimbursement.ModePerNight
		default:
			in.Mode = reimbursement.ModeTotal
		}
	}

	if totalSet {
		total := o.total
		in.TotalAmount = &total
	}
	if perNightSet {
		price := o.pricePerNight
		in.PricePerNight = &price
	}
	return in, nil
}

func writeXLSX(path string, result reimbursement.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Output("create "+path, err)
	}
	if err := output.WriteHotelXLSX(f, result); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Output("close "+path, err)
	}
	logging.Info("breakdown exported", zap.String("path", path))
	return nil
}
