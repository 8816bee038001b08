package reimbursement

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"expense-split/core/primitives"
	"expense-split/core/types"
)

// Band identifies one cost-sharing band. The ordinal is stable and is what
// callers persist or display as "band N".
type Band int

const (
	// BandWithinStandard covers spend up to the standard amount
	BandWithinStandard Band = iota
	// BandModerate covers spend above the standard up to 1.25× standard
	BandModerate
	// BandHigh covers spend above 1.25× up to 3× standard
	BandHigh
	// BandExcess covers everything above 3× standard
	BandExcess
)

// String returns a short name for the band
func (b Band) String() string {
	switch b {
	case BandWithinStandard:
		return "within_standard"
	case BandModerate:
		return "moderate"
	case BandHigh:
		return "high"
	case BandExcess:
		return "excess"
	}
	return fmt.Sprintf("band_%d", int(b))
}

// BandRule is the fixed policy for one band.
type BandRule struct {
	Band Band

	// UpperMultiple is the band's upper bound as a multiple of the standard
	// amount. Zero means the band is open-ended.
	UpperMultiple decimal.Decimal

	CompanyRatio  decimal.Decimal
	EmployeeRatio decimal.Decimal
}

// Rules is the lodging policy in band order.
var Rules = []BandRule{
	{
		Band:          BandWithinStandard,
		UpperMultiple: decimal.NewFromInt(1),
		CompanyRatio:  decimal.NewFromInt(1),
		EmployeeRatio: decimal.Zero,
	},
	{
		Band:          BandModerate,
		UpperMultiple: decimal.RequireFromString("1.25"),
		CompanyRatio:  decimal.RequireFromString("0.75"),
		EmployeeRatio: decimal.RequireFromString("0.25"),
	},
	{
		Band:          BandHigh,
		UpperMultiple: decimal.NewFromInt(3),
		CompanyRatio:  decimal.RequireFromString("0.5"),
		EmployeeRatio: decimal.RequireFromString("0.5"),
	},
	{
		Band:          BandExcess,
		UpperMultiple: decimal.Zero,
		CompanyRatio:  decimal.Zero,
		EmployeeRatio: decimal.NewFromInt(1),
	},
}

// Per-band rates in band order, as taken by primitives.CalculateTieredCost.
var (
	companyRatios = lo.Map(Rules, func(r BandRule, _ int) decimal.Decimal {
		return r.CompanyRatio
	})
	employeeRatios = lo.Map(Rules, func(r BandRule, _ int) decimal.Decimal {
		return r.EmployeeRatio
	})
)

// tiersFor turns the band multiples into absolute limits for a standard amount.
func tiersFor(standard decimal.Decimal) []primitives.Tier {
	tiers := make([]primitives.Tier, len(Rules))
	for i, rule := range Rules {
		if rule.UpperMultiple.IsZero() {
			continue
		}
		tiers[i] = primitives.Tier{UpTo: standard.Mul(rule.UpperMultiple)}
	}
	return tiers
}

// rangeLabel describes a band's bounds for display.
func rangeLabel(b Band, lower, upper decimal.Decimal, c types.Currency) string {
	switch b {
	case BandWithinStandard:
		return fmt.Sprintf("≤ standard (%s)", c.Format(upper))
	case BandModerate:
		return fmt.Sprintf("%s ~ 1.25× standard (%s)", c.Format(lower), c.Format(upper))
	case BandHigh:
		return fmt.Sprintf("1.25× standard (%s) ~ 3× standard (%s)", c.Format(lower), c.Format(upper))
	default:
		return fmt.Sprintf("> 3× standard (%s)", c.Format(lower))
	}
}
