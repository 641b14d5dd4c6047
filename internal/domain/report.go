package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary labels, in export order.
const (
	labelTotalInvestment = "Total Investment"
	labelEquityFV        = "Equity FV"
	labelTraditionalFV   = "Traditional FV"
)

// InvestmentSummary compares the same contributions under equity and traditional returns.
type InvestmentSummary struct {
	TotalInvestment        decimal.Decimal `json:"total_investment"`
	EquityFutureValue      decimal.Decimal `json:"equity_future_value"`
	TraditionalFutureValue decimal.Decimal `json:"traditional_future_value"`
}

// SummaryRow is a labelled amount.
type SummaryRow struct {
	Label  string
	Amount decimal.Decimal
}

// Rows returns the summary as labelled pairs.
func (s InvestmentSummary) Rows() []SummaryRow {
	return []SummaryRow{
		{labelTotalInvestment, s.TotalInvestment},
		{labelEquityFV, s.EquityFutureValue},
		{labelTraditionalFV, s.TraditionalFutureValue},
	}
}

// PlanReport is everything computed for one Plan.
type PlanReport struct {
	GeneratedAt time.Time `json:"generated_at"`
	Plan        Plan      `json:"plan"`

	RiskProfile RiskProfile       `json:"risk_profile"`
	Allocation  AllocationTable   `json:"allocation"`
	Summary     InvestmentSummary `json:"summary"`
	// Growth is nil when the plan did not ask for a year-by-year series.
	Growth     GrowthSeries    `json:"growth,omitempty"`
	Comparison []ComparisonRow `json:"comparison"`

	Historical    []HistoricalReturn `json:"historical"`
	EquityHistory ReturnStatistics   `json:"equity_history"`
	DebtHistory   ReturnStatistics   `json:"debt_history"`
	SIP           SimulationResult   `json:"sip"`
	Tax           TaxResult          `json:"tax"`
	Income        IncomeResult       `json:"income"`
}

// HasGrowth reports whether a growth series was computed.
func (pr *PlanReport) HasGrowth() bool {
	return len(pr.Growth) > 0
}
