package calculation

import (
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// Section80CLimit is the annual deduction cap under Sec 80C.
	Section80CLimit = decimal.NewFromInt(150000)
	// TaxSavingRate is the flat marginal rate applied to the eligible amount.
	TaxSavingRate = decimal.NewFromFloat(0.3)
)

// EstimateTaxBenefit caps an annual investment at the Sec 80C limit and applies the flat rate.
func EstimateTaxBenefit(annualInvestment decimal.Decimal) (domain.TaxResult, error) {
	if annualInvestment.IsNegative() {
		return domain.TaxResult{}, invalidArgf("annual investment must not be negative, got %s", annualInvestment)
	}
	eligible := decimal.Min(annualInvestment, Section80CLimit)
	return domain.TaxResult{
		EligibleAmount: eligible,
		TaxSaved:       eligible.Mul(TaxSavingRate),
	}, nil
}
