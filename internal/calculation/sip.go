package calculation

import (
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// SimulateSIP accumulates a systematic investment plan month by month.
// The contribution made in month i compounds for months-i+1 periods, so the
// first contribution grows the longest.
func SimulateSIP(monthlyContribution, annualRatePct decimal.Decimal, years int) (domain.SimulationResult, error) {
	if !monthlyContribution.IsPositive() {
		return domain.SimulationResult{}, invalidArgf("monthly contribution must be positive, got %s", monthlyContribution)
	}
	if annualRatePct.IsNegative() {
		return domain.SimulationResult{}, invalidArgf("annual rate must not be negative, got %s", annualRatePct)
	}
	if years <= 0 || years > MaxSIPYears {
		return domain.SimulationResult{}, invalidArgf("years must be between 1 and %d, got %d", MaxSIPYears, years)
	}

	months := years * 12
	growth := one.Add(monthlyRate(annualRatePct))

	// Walk from the last contribution (one period) back to the first (months periods).
	futureValue := decimal.Zero
	factor := one
	for i := months; i >= 1; i-- {
		factor = factor.Mul(growth).Round(precision)
		futureValue = futureValue.Add(monthlyContribution.Mul(factor))
	}

	return domain.SimulationResult{
		TotalInvested: monthlyContribution.Mul(monthsPerYear).Mul(decimal.NewFromInt(int64(years))),
		FutureValue:   futureValue,
	}, nil
}
