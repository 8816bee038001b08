package reimbursement

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-split/core/types"
	"expense-split/internal/errors"
)

func amount(v float64) *float64 { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, label ...string) {
	t.Helper()
	assert.Truef(t, actual.Equal(dec(expected)), "%s: expected %s, got %s", strings.Join(label, " "), expected, actual.String())
}

func TestCalculateWithinStandard(t *testing.T) {
	r, err := Calculate(Input{
		StandardPerNight: 200,
		Nights:           2,
		Mode:             ModeTotal,
		TotalAmount:      amount(400),
		Currency:         types.CurrencyCNY,
	})
	require.NoError(t, err)

	assertDecimal(t, "400", r.CompanyAmount)
	assertDecimal(t, "0", r.EmployeeAmount)
	assert.False(t, r.Approved)
	assert.Equal(t, KindTiered, r.Kind)
	require.Len(t, r.Segments, 4)
	assert.Len(t, r.NonZeroSegments(), 1)
}

func TestCalculateTieredAboveStandard(t *testing.T) {
	r, err := Calculate(Input{
		StandardPerNight: 200,
		Nights:           2,
		Mode:             ModeTotal,
		TotalAmount:      amount(800),
	})
	require.NoError(t, err)

	assertDecimal(t, "800", r.TotalAmount)
	assertDecimal(t, "400", r.StandardAmount)
	assertDecimal(t, "625", r.CompanyAmount)
	assertDecimal(t, "175", r.EmployeeAmount)
	assertDecimal(t, "800", r.CompanyAmount.Add(r.EmployeeAmount))

	expected := []struct {
		amount, company, employee, lower, upper string
	}{
		{"400", "400", "0", "0", "400"},
		{"100", "75", "25", "400", "500"},
		{"300", "150", "150", "500", "1200"},
		{"0", "0", "0", "1200", "0"},
	}
	require.Len(t, r.Segments, len(expected))
	for i, e := range expected {
		s := r.Segments[i]
		assert.Equal(t, Band(i), s.Band)
		assertDecimal(t, e.amount, s.Amount, fmt.Sprintf("segment %d amount", i))
		assertDecimal(t, e.company, s.CompanyAmount, fmt.Sprintf("segment %d company", i))
		assertDecimal(t, e.employee, s.EmployeeAmount, fmt.Sprintf("segment %d employee", i))
		assertDecimal(t, e.lower, s.Lower, fmt.Sprintf("segment %d lower", i))
		assertDecimal(t, e.upper, s.Upper, fmt.Sprintf("segment %d upper", i))
	}
	assert.True(t, r.Segments[3].Unbounded)
}

func TestCalculateRangeLabels(t *testing.T) {
	r, err := Calculate(Input{
		StandardPerNight: 200,
		Nights:           2,
		Mode:             ModeTotal,
		TotalAmount:      amount(800),
		Currency:         types.CurrencyUSD,
	})
	require.NoError(t, err)

	assert.Equal(t, "≤ standard ($400.00)", r.Segments[0].Range)
	assert.Equal(t, "$400.00 ~ 1.25× standard ($500.00)", r.Segments[1].Range)
	assert.Equal(t, "1.25× standard ($500.00) ~ 3× standard ($1200.00)", r.Segments[2].Range)
	assert.Equal(t, "> 3× standard ($1200.00)", r.Segments[3].Range)
}

func TestCalculateSpecialApproval(t *testing.T) {
	r, err := Calculate(Input{
		StandardPerNight:   300,
		Nights:             3,
		Mode:               ModePerNight,
		PricePerNight:      amount(500),
		HasSpecialApproval: true,
		Currency:           types.CurrencyUSD,
	})
	require.NoError(t, err)

	assert.True(t, r.Approved)
	assert.True(t, r.IsApproved())
	assertDecimal(t, "1500", r.TotalAmount)
	assertDecimal(t, "1500", r.CompanyAmount)
	assertDecimal(t, "0", r.EmployeeAmount)
	assertDecimal(t, "900", r.StandardAmount)
	assert.NotNil(t, r.Segments)
	assert.Empty(t, r.Segments)
}

func TestCalculatePerNightMode(t *testing.T) {
	r, err := Calculate(Input{
		StandardPerNight: 100,
		Nights:           4,
		Mode:             ModePerNight,
		PricePerNight:    amount(350),
	})
	require.NoError(t, err)

	// total 1400, standard 400: 400 + 100×0.75 + 700×0.5 + 200×0
	assertDecimal(t, "1400", r.TotalAmount)
	assertDecimal(t, "825", r.CompanyAmount)
	assertDecimal(t, "575", r.EmployeeAmount)
	assertDecimal(t, "200", r.Segments[3].Amount)
}

func TestCalculateZeroSpend(t *testing.T) {
	r, err := Calculate(Input{StandardPerNight: 150, Nights: 1, Mode: ModeTotal, TotalAmount: amount(0)})
	require.NoError(t, err)

	assert.True(t, r.CompanyAmount.IsZero())
	assert.True(t, r.EmployeeAmount.IsZero())
	assert.True(t, r.CompanyShare().IsZero())
	assert.Len(t, r.Segments, 4)
	assert.Empty(t, r.NonZeroSegments())
}

func TestCalculateShares(t *testing.T) {
	r, err := Calculate(Input{StandardPerNight: 200, Nights: 2, Mode: ModeTotal, TotalAmount: amount(800)})
	require.NoError(t, err)

	assertDecimal(t, "78.125", r.CompanyShare())
	assertDecimal(t, "21.875", r.EmployeeShare())
}

// Segment amounts must tile [0, total] exactly and shares must add back up.
func TestCalculatePartitionIsExact(t *testing.T) {
	standards := []float64{0.01, 99.99, 200, 333.33, 1234.5}
	nights := []int{1, 2, 7}
	totals := []float64{0, 0.01, 12.34, 250, 399.99, 400, 500.01, 1199.99, 1200, 3333.33, 98765.43}

	for _, std := range standards {
		for _, n := range nights {
			for _, total := range totals {
				r, err := Calculate(Input{StandardPerNight: std, Nights: n, Mode: ModeTotal, TotalAmount: amount(total)})
				require.NoError(t, err)
				require.Len(t, r.Segments, 4)

				segSum := decimal.Zero
				shareSum := decimal.Zero
				companySum := decimal.Zero
				prevUpper := decimal.Zero
				for i, s := range r.Segments {
					assert.False(t, s.Amount.IsNegative(), "std=%v n=%d total=%v band=%d", std, n, total, i)
					assert.True(t, s.Lower.Equal(prevUpper), "band %d lower %s != previous upper %s", i, s.Lower, prevUpper)
					if !s.Unbounded {
						assert.True(t, s.Upper.GreaterThanOrEqual(s.Lower))
						prevUpper = s.Upper
					}
					assert.True(t, s.CompanyRatio.Add(s.EmployeeRatio).Equal(decimal.NewFromInt(1)))
					segSum = segSum.Add(s.Amount)
					shareSum = shareSum.Add(s.CompanyAmount).Add(s.EmployeeAmount)
					companySum = companySum.Add(s.CompanyAmount)
				}

				assert.True(t, segSum.Equal(r.TotalAmount), "segments %s != total %s", segSum, r.TotalAmount)
				assert.True(t, shareSum.Equal(r.TotalAmount), "shares %s != total %s", shareSum, r.TotalAmount)
				assert.True(t, r.CompanyAmount.Add(r.EmployeeAmount).Equal(r.TotalAmount))
				assert.True(t, r.CompanyAmount.Equal(companySum), "company %s != segment sum %s", r.CompanyAmount, companySum)
			}
		}
	}
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		field   string
		message string
	}{
		{
			name:    "zero standard",
			input:   Input{StandardPerNight: 0, Nights: 1, Mode: ModeTotal, TotalAmount: amount(100)},
			field:   "standard_per_night",
			message: errors.MsgStandardPerNight,
		},
		{
			name:    "negative standard",
			input:   Input{StandardPerNight: -5, Nights: 1, Mode: ModeTotal, TotalAmount: amount(100)},
			field:   "standard_per_night",
			message: errors.MsgStandardPerNight,
		},
		{
			name:    "infinite standard",
			input:   Input{StandardPerNight: math.Inf(1), Nights: 1, Mode: ModeTotal, TotalAmount: amount(100)},
			field:   "standard_per_night",
			message: errors.MsgStandardPerNight,
		},
		{
			name:    "zero nights",
			input:   Input{StandardPerNight: 100, Nights: 0, Mode: ModePerNight, PricePerNight: amount(100)},
			field:   "nights",
			message: errors.MsgNights,
		},
		{
			name:    "negative nights",
			input:   Input{StandardPerNight: 100, Nights: -2, Mode: ModeTotal, TotalAmount: amount(100)},
			field:   "nights",
			message: errors.MsgNights,
		},
		{
			name:    "missing total",
			input:   Input{StandardPerNight: 100, Nights: 1, Mode: ModeTotal, PricePerNight: amount(100)},
			field:   "total_amount",
			message: errors.MsgTotalAmount,
		},
		{
			name:    "negative total",
			input:   Input{StandardPerNight: 100, Nights: 1, Mode: ModeTotal, TotalAmount: amount(-1)},
			field:   "total_amount",
			message: errors.MsgTotalAmount,
		},
		{
			name:    "NaN total",
			input:   Input{StandardPerNight: 100, Nights: 1, Mode: ModeTotal, TotalAmount: amount(math.NaN())},
			field:   "total_amount",
			message: errors.MsgTotalAmount,
		},
		{
			name:    "missing price per night",
			input:   Input{StandardPerNight: 100, Nights: 1, Mode: ModePerNight, TotalAmount: amount(100)},
			field:   "price_per_night",
			message: errors.MsgPricePerNight,
		},
		{
			name:    "negative price per night",
			input:   Input{StandardPerNight: 100, Nights: 1, Mode: ModePerNight, PricePerNight: amount(-0.01)},
			field:   "price_per_night",
			message: errors.MsgPricePerNight,
		},
		{
			name:    "unknown mode",
			input:   Input{StandardPerNight: 100, Nights: 1, Mode: "weekly", TotalAmount: amount(100)},
			field:   "input_mode",
			message: errors.MsgInputMode,
		},
		{
			name: "approval does not skip validation",
			input: Input{
				StandardPerNight: 0, Nights: 1, Mode: ModeTotal, TotalAmount: amount(100), HasSpecialApproval: true,
			},
			field:   "standard_per_night",
			message: errors.MsgStandardPerNight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Calculate(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
			assert.Equal(t, Result{}, r)

			e, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, e.Field())
			assert.Equal(t, tt.message, e.Message)
		})
	}
}
