package output

import (
	"fmt"
	"io"
	"strings"

	"expense-split/core/policy"
	"expense-split/core/reimbursement"
)

func hotelMarkdown(w io.Writer, r reimbursement.Result, opts Options) error {
	c := currencyOf(r.Currency)
	var b strings.Builder

	b.WriteString("## Lodging reimbursement\n\n")
	fmt.Fprintf(&b, "- Standard amount: %s\n", c.Format(r.StandardAmount))
	fmt.Fprintf(&b, "- Total amount: %s\n", c.Format(r.TotalAmount))
	fmt.Fprintf(&b, "- Company pays: **%s** (%s%%)\n", c.Format(r.CompanyAmount), share(r.CompanyShare()))
	fmt.Fprintf(&b, "- Employee pays: **%s** (%s%%)\n", c.Format(r.EmployeeAmount), share(r.EmployeeShare()))

	if r.IsApproved() {
		b.WriteString("\n> Special approval: the company covers the full cost.\n")
	} else {
		segments := r.Segments
		if !opts.ShowZeroBands {
			segments = r.NonZeroSegments()
		}
		if len(segments) > 0 {
			b.WriteString("\n| Band | Range | Amount | Company | Employee |\n")
			b.WriteString("|---|---|---:|---:|---:|\n")
			for _, s := range segments {
				fmt.Fprintf(&b, "| %d | %s | %s | %s (%s) | %s (%s) |\n",
					int(s.Band)+1, s.Range, c.Format(s.Amount),
					c.Format(s.CompanyAmount), ratio(s.CompanyRatio),
					c.Format(s.EmployeeAmount), ratio(s.EmployeeRatio))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func flightMarkdown(w io.Writer, report FlightReport) error {
	c := currencyOf(report.Currency)
	r := report.Result
	var b strings.Builder

	fmt.Fprintf(&b, "## Flight cost split (%s)\n\n", report.Mode)
	b.WriteString("| | Amount | Share |\n|---|---:|---:|\n")
	fmt.Fprintf(&b, "| Company | %s | %s%% |\n", c.Format(r.CompanyAmount), r.CompanyPercent.StringFixed(2))
	fmt.Fprintf(&b, "| Employee | %s | %s%% |\n", c.Format(r.EmployeeAmount), r.EmployeePercent.StringFixed(2))
	fmt.Fprintf(&b, "| Total | %s | |\n", c.Format(r.TotalAmount))

	_, err := io.WriteString(w, b.String())
	return err
}

func rulesMarkdown(w io.Writer, doc policy.Document) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n%s\n\n", doc.Title, doc.Summary)

	b.WriteString("## Lodging\n\n| Band | Range | Company | Employee | Rule |\n|---|---|---:|---:|---|\n")
	for _, band := range doc.Lodging {
		fmt.Fprintf(&b, "| %d. %s | %s | %d%% | %d%% | %s |\n",
			band.Band+1, band.Title, band.Range, band.CompanyPercent, band.EmployeePercent, band.Description)
	}
	fmt.Fprintf(&b, "\n%s\n", doc.Approval)

	b.WriteString("\n## Flights\n\n")
	for _, rule := range doc.Flight {
		fmt.Fprintf(&b, "- `%s`: %s\n", rule.Preset, rule.Description)
	}

	b.WriteString("\n## How to use\n\n")
	for _, line := range doc.Instructions {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
