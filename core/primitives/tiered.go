// Package primitives - Centralized money math
// Calculators declare bands and ratios; the arithmetic lives here.
package primitives

import (
	"github.com/shopspring/decimal"
)

// Tier is one contiguous slice of a tiered range.
// UpTo is the inclusive upper limit; a zero UpTo marks the open-ended tier.
type Tier struct {
	UpTo decimal.Decimal
}

// Unbounded reports whether the tier has no upper limit
func (t Tier) Unbounded() bool {
	return t.UpTo.IsZero()
}

// Slice is the portion of a quantity that falls inside one tier.
type Slice struct {
	Lower  decimal.Decimal
	Upper  decimal.Decimal // zero for the open-ended tier
	Amount decimal.Decimal
}

// PartitionTiered splits quantity across tiers in order. Every tier gets a
// slice, including tiers the quantity never reaches (Amount zero), so the
// result always has len(tiers) entries and the amounts sum to quantity
// exactly whenever the last tier is unbounded.
//
// Tier limits must be non-decreasing; a negative quantity is treated as zero.
func PartitionTiered(quantity decimal.Decimal, tiers []Tier) []Slice {
	slices := make([]Slice, 0, len(tiers))
	if quantity.IsNegative() {
		quantity = decimal.Zero
	}

	lower := decimal.Zero
	for _, tier := range tiers {
		reach := quantity
		if !tier.Unbounded() {
			reach = decimal.Min(quantity, tier.UpTo)
		}
		amount := decimal.Max(decimal.Zero, reach.Sub(lower))

		slices = append(slices, Slice{
			Lower:  lower,
			Upper:  tier.UpTo,
			Amount: amount,
		})

		if !tier.Unbounded() {
			lower = tier.UpTo
		}
	}

	return slices
}

// CalculateTieredCost applies a per-tier rate to a partitioned quantity and
// returns the summed cost. rates[i] applies to tiers[i].
func CalculateTieredCost(quantity decimal.Decimal, tiers []Tier, rates []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for i, s := range PartitionTiered(quantity, tiers) {
		if i >= len(rates) {
			break
		}
		total = total.Add(s.Amount.Mul(rates[i]))
	}
	return total
}
