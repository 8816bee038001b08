// Package types holds value types shared by the calculators and renderers.
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code. It only affects display.
type Currency string

const (
	CurrencyCNY Currency = "CNY"
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Valid reports whether c is a supported currency
func (c Currency) Valid() bool {
	switch c {
	case CurrencyCNY, CurrencyUSD:
		return true
	}
	return false
}

// Symbol returns the display symbol for the currency
func (c Currency) Symbol() string {
	if c == CurrencyUSD {
		return "$"
	}
	return "¥"
}

// Format renders an amount with the currency symbol and two decimals
func (c Currency) Format(amount decimal.Decimal) string {
	return c.Symbol() + amount.StringFixed(2)
}

// ParseCurrency normalizes a user-supplied currency code. Unknown or empty
// codes fall back to CNY.
func ParseCurrency(s string) Currency {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if c.Valid() {
		return c
	}
	return CurrencyCNY
}
