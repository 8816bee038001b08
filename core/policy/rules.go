// Package policy describes the reimbursement rules as data so they can be
// printed or served next to the calculators that enforce them.
package policy

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"expense-split/core/flight"
	"expense-split/core/reimbursement"
)

// BandDescription is one lodging band as shown to employees.
type BandDescription struct {
	Band            int    `json:"band" yaml:"band"`
	Title           string `json:"title" yaml:"title"`
	Range           string `json:"range" yaml:"range"`
	Description     string `json:"description" yaml:"description"`
	CompanyPercent  int64  `json:"company_percent" yaml:"company_percent"`
	EmployeePercent int64  `json:"employee_percent" yaml:"employee_percent"`
}

// FlightRule is one flight preset as shown to employees.
type FlightRule struct {
	Preset         string  `json:"preset" yaml:"preset"`
	Description    string  `json:"description" yaml:"description"`
	CompanyPercent float64 `json:"company_percent,omitempty" yaml:"company_percent,omitempty"`
}

// Document is the full published policy.
type Document struct {
	Title        string            `json:"title" yaml:"title"`
	Summary      string            `json:"summary" yaml:"summary"`
	Lodging      []BandDescription `json:"lodging" yaml:"lodging"`
	Approval     string            `json:"special_approval" yaml:"special_approval"`
	Flight       []FlightRule      `json:"flight" yaml:"flight"`
	Instructions []string          `json:"instructions" yaml:"instructions"`
}

var bandText = map[reimbursement.Band]struct {
	title, rng, desc string
}{
	reimbursement.BandWithinStandard: {
		"Within standard",
		"[0, S]",
		"Spend up to the standard amount is covered by the company in full.",
	},
	reimbursement.BandModerate: {
		"Above standard up to 1.25× standard",
		"(S, 1.25S]",
		"The part above the standard and up to 1.25 times the standard is shared 75% company, 25% employee.",
	},
	reimbursement.BandHigh: {
		"Above 1.25× up to 3× standard",
		"(1.25S, 3S]",
		"The part above 1.25 times and up to 3 times the standard is shared equally.",
	},
	reimbursement.BandExcess: {
		"Above 3× standard",
		"(3S, ∞)",
		"The part above 3 times the standard is borne by the employee.",
	},
}

var hundred = decimal.NewFromInt(100)

// Rules builds the published policy from the calculators' own constants.
func Rules() Document {
	lodging := lo.Map(reimbursement.Rules, func(r reimbursement.BandRule, _ int) BandDescription {
		text := bandText[r.Band]
		return BandDescription{
			Band:            int(r.Band),
			Title:           text.title,
			Range:           text.rng,
			Description:     text.desc,
			CompanyPercent:  r.CompanyRatio.Mul(hundred).IntPart(),
			EmployeePercent: r.EmployeeRatio.Mul(hundred).IntPart(),
		}
	})

	return Document{
		Title: "Travel expense reimbursement policy",
		Summary: "Lodging is reimbursed progressively against a standard amount S, " +
			"the nightly standard multiplied by the number of nights. Each band of " +
			"the actual spend is shared at its own ratio and the shares are added up.",
		Lodging:  lodging,
		Approval: "With special approval the company covers the full lodging cost regardless of the standard.",
		Flight: []FlightRule{
			{
				Preset:         string(flight.PresetEconomy),
				Description:    "Economy fare, covered by the company in full.",
				CompanyPercent: 100,
			},
			{
				Preset:         string(flight.PresetUpgrade),
				Description:    "Upgraded cabin: the economy fare is covered in full and the company pays 75% of the upgrade.",
				CompanyPercent: flight.DefaultUpgradeCompanyPercent,
			},
			{
				Preset:      string(flight.PresetCustom),
				Description: "A percentage agreed case by case, between 0 and 100.",
			},
		},
		Instructions: []string{
			"Enter the nightly standard and the number of nights; both are required.",
			"Enter either the total booking price or the price per night.",
			"Tick special approval only when an approval has been granted.",
			"Amounts are shown with two decimals; shares are exact before display rounding.",
		},
	}
}
