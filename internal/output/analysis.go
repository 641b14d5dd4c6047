package output

import (
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// Insight condenses the investment summary into comparable figures.
type Insight struct {
	EquityAdvantage     decimal.Decimal
	EquityMultiple      decimal.Decimal
	TraditionalMultiple decimal.Decimal
	// AdvantagePercent is the equity advantage relative to the traditional value.
	AdvantagePercent decimal.Decimal
}

// AnalyzeSummary compares the equity and traditional outcomes.
func AnalyzeSummary(s domain.InvestmentSummary) Insight {
	in := Insight{EquityAdvantage: s.EquityFutureValue.Sub(s.TraditionalFutureValue)}
	if !s.TotalInvestment.IsZero() {
		in.EquityMultiple = s.EquityFutureValue.Div(s.TotalInvestment)
		in.TraditionalMultiple = s.TraditionalFutureValue.Div(s.TotalInvestment)
	}
	if !s.TraditionalFutureValue.IsZero() {
		in.AdvantagePercent = in.EquityAdvantage.Div(s.TraditionalFutureValue).Mul(decimalHundred)
	}
	return in
}
