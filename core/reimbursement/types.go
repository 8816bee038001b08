// Package reimbursement computes how a lodging expense is split between the
// company and the employee under the four-band progressive policy.
//
// Spend up to the standard amount (nightly cap × nights) is fully covered.
// Spend above it is shared at decreasing company ratios, and anything above
// three times the standard is borne by the employee. A special approval
// bypasses the bands and the company covers everything.
package reimbursement

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"expense-split/core/primitives"
	"expense-split/core/types"
)

// InputMode selects how the actual spend is supplied.
type InputMode string

const (
	// ModeTotal means TotalAmount carries the whole stay's cost
	ModeTotal InputMode = "total"
	// ModePerNight means PricePerNight is multiplied by Nights
	ModePerNight InputMode = "pernight"
)

// Input is one lodging calculation request. Numbers are already parsed by
// the caller; Calculate re-validates them regardless.
type Input struct {
	StandardPerNight   float64        `json:"standard_per_night" yaml:"standard_per_night"`
	Nights             int            `json:"nights" yaml:"nights"`
	Mode               InputMode      `json:"input_mode" yaml:"input_mode"`
	TotalAmount        *float64       `json:"total_amount,omitempty" yaml:"total_amount,omitempty"`
	PricePerNight      *float64       `json:"price_per_night,omitempty" yaml:"price_per_night,omitempty"`
	HasSpecialApproval bool           `json:"has_special_approval" yaml:"has_special_approval"`
	Currency           types.Currency `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// Kind tags which variant a Result holds.
type Kind string

const (
	// KindTiered results carry exactly four segments
	KindTiered Kind = "tiered"
	// KindApproved results carry no segments; the company pays the total
	KindApproved Kind = "approved"
)

// Segment is the part of the total spend that falls inside one band.
type Segment struct {
	Band           Band            `json:"segment" yaml:"segment"`
	Amount         decimal.Decimal `json:"amount" yaml:"amount"`
	CompanyRatio   decimal.Decimal `json:"company_ratio" yaml:"company_ratio"`
	EmployeeRatio  decimal.Decimal `json:"employee_ratio" yaml:"employee_ratio"`
	CompanyAmount  decimal.Decimal `json:"company_amount" yaml:"company_amount"`
	EmployeeAmount decimal.Decimal `json:"employee_amount" yaml:"employee_amount"`
	Lower          decimal.Decimal `json:"lower" yaml:"lower"`
	Upper          decimal.Decimal `json:"upper" yaml:"upper"`
	Unbounded      bool            `json:"unbounded,omitempty" yaml:"unbounded,omitempty"`
	Range          string          `json:"range" yaml:"range"`
}

// Result is the outcome of a lodging calculation. Amounts are exact; callers
// round for display.
type Result struct {
	Kind           Kind            `json:"kind" yaml:"kind"`
	CompanyAmount  decimal.Decimal `json:"company_amount" yaml:"company_amount"`
	EmployeeAmount decimal.Decimal `json:"employee_amount" yaml:"employee_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount" yaml:"total_amount"`
	StandardAmount decimal.Decimal `json:"standard_amount" yaml:"standard_amount"`
	Segments       []Segment       `json:"segments" yaml:"segments"`
	Approved       bool            `json:"approved" yaml:"approved"`
	Currency       types.Currency  `json:"currency" yaml:"currency"`
}

// IsApproved reports whether the special-approval path produced r
func (r Result) IsApproved() bool {
	return r.Kind == KindApproved
}

// NonZeroSegments drops bands the spend never reached.
func (r Result) NonZeroSegments() []Segment {
	return lo.Filter(r.Segments, func(s Segment, _ int) bool {
		return !s.Amount.IsZero()
	})
}

// CompanyShare is the company amount as a percentage of the total.
func (r Result) CompanyShare() decimal.Decimal {
	return primitives.ShareOf(r.CompanyAmount, r.TotalAmount)
}

// EmployeeShare is the employee amount as a percentage of the total.
func (r Result) EmployeeShare() decimal.Decimal {
	return primitives.ShareOf(r.EmployeeAmount, r.TotalAmount)
}
