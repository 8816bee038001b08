package primitives

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds half away from zero at two decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns part × pct / 100.
func Percent(part, pct decimal.Decimal) decimal.Decimal {
	return part.Mul(pct).Div(hundred)
}

// ShareOf returns part / whole × 100, or zero when whole is zero.
func ShareOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// Complement returns 100 − pct.
func Complement(pct decimal.Decimal) decimal.Decimal {
	return hundred.Sub(pct)
}

// Finite reports whether every value is neither NaN nor ±Inf.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// FromFloat converts an already-validated finite float to a decimal using
// its shortest decimal representation, so 0.1 becomes exactly 0.1.
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}
