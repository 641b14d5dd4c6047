package output

import (
	"fmt"

	"github.com/rpgo/portfolio-planner/internal/calculation"
	"github.com/rpgo/portfolio-planner/internal/domain"
)

// GenerateAssumptions lists the modelling assumptions behind a plan's figures.
func GenerateAssumptions(plan *domain.Plan) []string {
	return []string{
		fmt.Sprintf("Equity-based growth: %s p.a., compounded monthly", FormatPercentage(plan.Contribution.EquityReturnRate)),
		fmt.Sprintf("Traditional growth: %s p.a., compounded monthly", FormatPercentage(plan.Contribution.TraditionalReturnRate)),
		"Contributions are made at the end of each month; SIP contributions at the start",
		fmt.Sprintf("Sec 80C limit %s, tax saved at a flat %s", FormatCurrency(calculation.Section80CLimit), FormatPercentage(calculation.TaxSavingRate.Mul(decimalHundred))),
		"Annuity and SWP figures ignore returns earned during withdrawal",
		"Historical returns and comparison figures are illustrative",
	}
}
