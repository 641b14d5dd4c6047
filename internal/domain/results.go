package domain

import (
	"github.com/shopspring/decimal"
)

// Allocation is one instrument's share of the retirement corpus, in percent.
type Allocation struct {
	Instrument string          `json:"instrument" yaml:"instrument"`
	Percent    decimal.Decimal `json:"percent" yaml:"percent"`
}

// AllocationTable is an ordered allocation across instruments.
type AllocationTable []Allocation

// Total sums the percentages of every instrument.
func (at AllocationTable) Total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range at {
		total = total.Add(a.Percent)
	}
	return total
}

// GrowthPoint is the accumulated value at a given age under both return assumptions.
type GrowthPoint struct {
	Year        int             `json:"year"`
	Equity      decimal.Decimal `json:"equity"`
	Traditional decimal.Decimal `json:"traditional"`
}

// GrowthSeries is chronological, one point per elapsed year.
type GrowthSeries []GrowthPoint

// ComparisonRow describes one reference investment option.
type ComparisonRow struct {
	Option         string          `json:"option"`
	ExpectedReturn decimal.Decimal `json:"expected_return"`
	Risk           RiskLevel       `json:"risk"`
	Liquidity      string          `json:"liquidity"`
}

// SimulationResult is the outcome of a contribution plan.
type SimulationResult struct {
	TotalInvested decimal.Decimal `json:"total_invested"`
	FutureValue   decimal.Decimal `json:"future_value"`
}

// Gain is the growth earned on top of the invested amount.
func (sr SimulationResult) Gain() decimal.Decimal {
	return sr.FutureValue.Sub(sr.TotalInvested)
}

// IncomeResult describes post-retirement income from a corpus.
type IncomeResult struct {
	AnnualAnnuityIncome     decimal.Decimal `json:"annual_annuity_income"`
	WithdrawalDurationYears decimal.Decimal `json:"withdrawal_duration_years"`
}

// TaxResult is the Sec 80C deduction outcome for an annual investment.
type TaxResult struct {
	EligibleAmount decimal.Decimal `json:"eligible_amount"`
	TaxSaved       decimal.Decimal `json:"tax_saved"`
}

// HistoricalReturn holds one calendar year's illustrative asset-class returns, in percent.
type HistoricalReturn struct {
	Year   int             `json:"year"`
	Equity decimal.Decimal `json:"equity"`
	Debt   decimal.Decimal `json:"debt"`
}

// ReturnStatistics summarises a series of annual returns.
type ReturnStatistics struct {
	Mean   decimal.Decimal `json:"mean"`
	Median decimal.Decimal `json:"median"`
	StdDev decimal.Decimal `json:"std_dev"`
	Min    decimal.Decimal `json:"min"`
	Max    decimal.Decimal `json:"max"`
	Count  int             `json:"count"`
}
