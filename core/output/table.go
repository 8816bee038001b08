package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"expense-split/core/reimbursement"
	"expense-split/core/types"
)

const (
	ruleTop    = "┌─────────────────────────────────────────────────────────────────────────┐"
	ruleMiddle = "├─────────────────────────────────────────────────────────────────────────┤"
	ruleBottom = "└─────────────────────────────────────────────────────────────────────────┘"
)

// tableWriter accumulates the first write error so rendering code can stay
// linear.
type tableWriter struct {
	w   io.Writer
	err error
}

func (t *tableWriter) line(s string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, s)
}

func (t *tableWriter) title(s string) {
	t.line(fmt.Sprintf("│ %-71s │", s))
}

func (t *tableWriter) row(label, value string) {
	t.line(fmt.Sprintf("│ %-50s %20s │", truncate(label, 50), value))
}

func (t *tableWriter) detail(label, value string) {
	t.line(fmt.Sprintf("│   └─ %-45s %20s │", truncate(label, 45), value))
}

func hotelTable(w io.Writer, r reimbursement.Result, opts Options) error {
	c := currencyOf(r.Currency)
	t := &tableWriter{w: w}

	t.line(ruleTop)
	t.title("LODGING REIMBURSEMENT")
	t.line(ruleMiddle)
	t.row("Standard amount", c.Format(r.StandardAmount))
	t.row("Total amount", c.Format(r.TotalAmount))

	if r.IsApproved() {
		t.line(ruleMiddle)
		t.title("Special approval: the company covers the full cost.")
	} else {
		segments := r.Segments
		if !opts.ShowZeroBands {
			segments = r.NonZeroSegments()
		}
		if len(segments) > 0 {
			t.line(ruleMiddle)
		}
		for _, s := range segments {
			// range labels outgrow the row label column, so they get a full line
			t.title(fmt.Sprintf("Band %d: %s", int(s.Band)+1, s.Range))
			t.row("  amount in band", c.Format(s.Amount))
			t.detail("company "+ratio(s.CompanyRatio), c.Format(s.CompanyAmount))
			t.detail("employee "+ratio(s.EmployeeRatio), c.Format(s.EmployeeAmount))
		}
	}

	t.line(ruleMiddle)
	t.row(fmt.Sprintf("COMPANY PAYS (%s%%)", share(r.CompanyShare())), c.Format(r.CompanyAmount))
	t.row(fmt.Sprintf("EMPLOYEE PAYS (%s%%)", share(r.EmployeeShare())), c.Format(r.EmployeeAmount))
	t.line(ruleBottom)

	return t.err
}

func flightTable(w io.Writer, report FlightReport) error {
	c := currencyOf(report.Currency)
	r := report.Result
	t := &tableWriter{w: w}

	t.line(ruleTop)
	t.title("FLIGHT COST SPLIT (" + report.Mode + ")")
	t.line(ruleMiddle)
	t.row("Total amount", c.Format(r.TotalAmount))
	t.row(fmt.Sprintf("COMPANY PAYS (%s%%)", r.CompanyPercent.StringFixed(2)), c.Format(r.CompanyAmount))
	t.row(fmt.Sprintf("EMPLOYEE PAYS (%s%%)", r.EmployeePercent.StringFixed(2)), c.Format(r.EmployeeAmount))
	t.line(ruleBottom)

	return t.err
}

// ratio renders 0.75 as "75%".
func ratio(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
}

// share renders a percentage with one decimal.
func share(d decimal.Decimal) string {
	return d.StringFixed(1)
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// currencyOf falls back to CNY for results built without one.
func currencyOf(c types.Currency) types.Currency {
	if c.Valid() {
		return c
	}
	return types.CurrencyCNY
}
