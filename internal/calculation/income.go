package calculation

import (
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// EstimateIncome compares two drawdown models for a retirement corpus: a level
// annuity paying annuityRatePct of the corpus each year, and a systematic
// withdrawal plan lasting corpus / (monthlyWithdrawal * 12) years. Neither
// model accrues returns during withdrawal.
func EstimateIncome(corpus, annuityRatePct, monthlyWithdrawal decimal.Decimal) (domain.IncomeResult, error) {
	if !corpus.IsPositive() {
		return domain.IncomeResult{}, invalidArgf("corpus must be positive, got %s", corpus)
	}
	if annuityRatePct.IsNegative() || annuityRatePct.GreaterThan(hundred) {
		return domain.IncomeResult{}, invalidArgf("annuity rate must be between 0 and 100, got %s", annuityRatePct)
	}
	if !monthlyWithdrawal.IsPositive() {
		return domain.IncomeResult{}, invalidArgf("monthly withdrawal must be positive, got %s", monthlyWithdrawal)
	}
	return domain.IncomeResult{
		AnnualAnnuityIncome:     corpus.Mul(annuityRatePct).Div(hundred),
		WithdrawalDurationYears: corpus.DivRound(monthlyWithdrawal.Mul(monthsPerYear), precision),
	}, nil
}
