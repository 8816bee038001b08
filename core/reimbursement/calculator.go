package reimbursement

import (
	"github.com/shopspring/decimal"

	"expense-split/core/primitives"
	"expense-split/core/types"
	"expense-split/internal/errors"
)

// Validate checks input without computing anything. Calculate calls it first.
func Validate(in Input) error {
	if !primitives.Finite(in.StandardPerNight) || in.StandardPerNight <= 0 {
		return errors.Validation("standard_per_night", errors.MsgStandardPerNight)
	}
	if in.Nights <= 0 {
		return errors.Validation("nights", errors.MsgNights)
	}

	switch in.Mode {
	case ModeTotal:
		if in.TotalAmount == nil || !primitives.Finite(*in.TotalAmount) || *in.TotalAmount < 0 {
			return errors.Validation("total_amount", errors.MsgTotalAmount)
		}
	case ModePerNight:
		if in.PricePerNight == nil || !primitives.Finite(*in.PricePerNight) || *in.PricePerNight < 0 {
			return errors.Validation("price_per_night", errors.MsgPricePerNight)
		}
	default:
		return errors.Validation("input_mode", errors.MsgInputMode).WithContext("value", string(in.Mode))
	}

	return nil
}

// Calculate splits a lodging expense between company and employee.
func Calculate(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	currency := types.ParseCurrency(string(in.Currency))
	nights := decimal.NewFromInt(int64(in.Nights))
	standard := primitives.FromFloat(in.StandardPerNight).Mul(nights)

	var total decimal.Decimal
	if in.Mode == ModeTotal {
		total = primitives.FromFloat(*in.TotalAmount)
	} else {
		total = primitives.FromFloat(*in.PricePerNight).Mul(nights)
	}

	if in.HasSpecialApproval {
		return Result{
			Kind:           KindApproved,
			CompanyAmount:  total,
			EmployeeAmount: decimal.Zero,
			TotalAmount:    total,
			StandardAmount: standard,
			Segments:       []Segment{},
			Approved:       true,
			Currency:       currency,
		}, nil
	}

	tiers := tiersFor(standard)
	segments := segmentsFor(total, tiers, currency)

	return Result{
		Kind:           KindTiered,
		CompanyAmount:  primitives.CalculateTieredCost(total, tiers, companyRatios),
		EmployeeAmount: primitives.CalculateTieredCost(total, tiers, employeeRatios),
		TotalAmount:    total,
		StandardAmount: standard,
		Segments:       segments,
		Approved:       false,
		Currency:       currency,
	}, nil
}

func segmentsFor(total decimal.Decimal, tiers []primitives.Tier, currency types.Currency) []Segment {
	slices := primitives.PartitionTiered(total, tiers)

	segments := make([]Segment, len(Rules))
	for i, rule := range Rules {
		s := slices[i]
		segments[i] = Segment{
			Band:           rule.Band,
			Amount:         s.Amount,
			CompanyRatio:   rule.CompanyRatio,
			EmployeeRatio:  rule.EmployeeRatio,
			CompanyAmount:  s.Amount.Mul(rule.CompanyRatio),
			EmployeeAmount: s.Amount.Mul(rule.EmployeeRatio),
			Lower:          s.Lower,
			Upper:          s.Upper,
			Unbounded:      rule.UpperMultiple.IsZero(),
			Range:          rangeLabel(rule.Band, s.Lower, s.Upper, currency),
		}
	}
	return segments
}
