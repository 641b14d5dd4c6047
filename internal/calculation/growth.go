package calculation

import (
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// TotalContribution is the sum of equal monthly contributions.
func TotalContribution(monthlyContribution decimal.Decimal, months int) (decimal.Decimal, error) {
	if monthlyContribution.IsNegative() {
		return decimal.Zero, invalidArgf("monthly contribution must not be negative, got %s", monthlyContribution)
	}
	if months < 0 || months > MaxMonths {
		return decimal.Zero, invalidArgf("months must be between 0 and %d, got %d", MaxMonths, months)
	}
	return monthlyContribution.Mul(decimal.NewFromInt(int64(months))), nil
}

// ProjectFutureValue returns the future value of an ordinary annuity with monthly
// compounding: m * ((1+r)^n - 1) / r where r is the monthly rate.
// A zero rate degenerates to m * n.
func ProjectFutureValue(monthlyContribution, annualRatePct decimal.Decimal, months int) (decimal.Decimal, error) {
	if err := validateProjection(monthlyContribution, annualRatePct, months); err != nil {
		return decimal.Zero, err
	}
	r := monthlyRate(annualRatePct)
	if r.IsZero() {
		return monthlyContribution.Mul(decimal.NewFromInt(int64(months))), nil
	}
	factor := compound(r, months).Sub(one)
	return monthlyContribution.Mul(factor).DivRound(r, precision), nil
}

// ProjectFutureValueDue is the annuity-due variant, where each contribution is
// made at the start of the month and earns interest for that month too.
func ProjectFutureValueDue(monthlyContribution, annualRatePct decimal.Decimal, months int) (decimal.Decimal, error) {
	fv, err := ProjectFutureValue(monthlyContribution, annualRatePct, months)
	if err != nil {
		return decimal.Zero, err
	}
	return fv.Mul(one.Add(monthlyRate(annualRatePct))).Round(precision), nil
}

// BuildGrowthSeries projects the accumulated value at every age from startAge
// to endAge inclusive under both an equity and a traditional return rate.
// An inverted age range yields an empty series. Ages must not be negative and
// the span may not exceed MaxHorizonYears.
func BuildGrowthSeries(monthlyContribution, equityRatePct, traditionalRatePct decimal.Decimal, startAge, endAge int) (domain.GrowthSeries, error) {
	if endAge < startAge {
		return domain.GrowthSeries{}, nil
	}
	if startAge < 0 {
		return nil, invalidArgf("start age must not be negative, got %d", startAge)
	}
	// startAge >= 0 and endAge >= startAge, so the difference cannot overflow.
	if endAge-startAge > MaxHorizonYears {
		return nil, invalidArgf("age span must be at most %d years, got %d to %d", MaxHorizonYears, startAge, endAge)
	}
	series := make(domain.GrowthSeries, 0, endAge-startAge+1)
	for i := 0; i <= endAge-startAge; i++ {
		months := i * 12
		equity, err := ProjectFutureValue(monthlyContribution, equityRatePct, months)
		if err != nil {
			return nil, err
		}
		traditional, err := ProjectFutureValue(monthlyContribution, traditionalRatePct, months)
		if err != nil {
			return nil, err
		}
		series = append(series, domain.GrowthPoint{
			Year:        startAge + i,
			Equity:      equity,
			Traditional: traditional,
		})
	}
	return series, nil
}

func validateProjection(monthlyContribution, annualRatePct decimal.Decimal, months int) error {
	if monthlyContribution.IsNegative() {
		return invalidArgf("monthly contribution must not be negative, got %s", monthlyContribution)
	}
	if annualRatePct.IsNegative() {
		return invalidArgf("annual rate must not be negative, got %s", annualRatePct)
	}
	if months < 0 || months > MaxMonths {
		return invalidArgf("months must be between 0 and %d, got %d", MaxMonths, months)
	}
	return nil
}
