package output

import (
	"io"

	"github.com/xuri/excelize/v2"

	"expense-split/core/reimbursement"
	"expense-split/internal/errors"
)

// BreakdownSheet is the worksheet name used by WriteHotelXLSX
const BreakdownSheet = "Breakdown"

// WriteHotelXLSX exports a lodging result as a spreadsheet: one row per
// band (all four, zero bands included) followed by the totals. Amounts are
// written as numbers rounded to cents so the sheet can be summed.
func WriteHotelXLSX(w io.Writer, r reimbursement.Result) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), BreakdownSheet); err != nil {
		return errors.Output("name sheet", err)
	}

	rows := [][]interface{}{
		{"band", "range", "amount", "company_ratio", "employee_ratio", "company_amount", "employee_amount"},
	}
	for _, s := range r.Segments {
		rows = append(rows, []interface{}{
			int(s.Band) + 1,
			s.Range,
			s.Amount.Round(2).InexactFloat64(),
			s.CompanyRatio.InexactFloat64(),
			s.EmployeeRatio.InexactFloat64(),
			s.CompanyAmount.Round(2).InexactFloat64(),
			s.EmployeeAmount.Round(2).InexactFloat64(),
		})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"standard_amount", "", r.StandardAmount.Round(2).InexactFloat64()},
		[]interface{}{"total_amount", "", r.TotalAmount.Round(2).InexactFloat64()},
		[]interface{}{"company_amount", "", r.CompanyAmount.Round(2).InexactFloat64()},
		[]interface{}{"employee_amount", "", r.EmployeeAmount.Round(2).InexactFloat64()},
		[]interface{}{"approved", "", r.Approved},
		[]interface{}{"currency", "", string(currencyOf(r.Currency))},
	)

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.Output("cell name", err)
		}
		if err := f.SetSheetRow(BreakdownSheet, cell, &row); err != nil {
			return errors.Output("write row", err)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Output("write xlsx", err)
	}
	return nil
}
