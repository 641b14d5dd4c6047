package calculation

import (
	"github.com/shopspring/decimal"
)

// precision is the number of fractional digits kept by intermediate results.
const precision = 28

// Longest horizons the calculators accept.
const (
	MaxHorizonYears = 100
	MaxMonths       = MaxHorizonYears * 12
	MaxSIPYears     = 60
)

var (
	one           = decimal.NewFromInt(1)
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

// monthlyRate converts an annual percentage (12 means 12%) into a monthly fraction.
func monthlyRate(annualRatePct decimal.Decimal) decimal.Decimal {
	return annualRatePct.DivRound(hundred.Mul(monthsPerYear), precision)
}

// compound returns (1+rate)^periods by binary exponentiation.
func compound(rate decimal.Decimal, periods int) decimal.Decimal {
	result := one
	base := one.Add(rate)
	for n := periods; n > 0; n >>= 1 {
		if n&1 == 1 {
			result = result.Mul(base).Round(precision)
		}
		base = base.Mul(base).Round(precision)
	}
	return result
}
