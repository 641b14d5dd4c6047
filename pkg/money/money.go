package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Symbol is the currency symbol used when formatting.
const Symbol = "₹"

// Money represents a rupee amount with decimal precision.
type Money struct {
	decimal.Decimal
}

// FromDecimal wraps a decimal.Decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Format renders whole rupees with thousands separators, e.g. ₹1,200,000.
func (m Money) Format() string {
	whole := m.Decimal.Round(0)
	if whole.IsNegative() {
		return "-" + Symbol + humanize.Comma(whole.Neg().IntPart())
	}
	return Symbol + humanize.Comma(whole.IntPart())
}
