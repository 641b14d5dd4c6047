package calculation

import (
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonTable returns the reference table of common retirement options.
func ComparisonTable() []domain.ComparisonRow {
	return []domain.ComparisonRow{
		{Option: "Equity Mutual Fund", ExpectedReturn: decimal.NewFromInt(12), Risk: domain.RiskHigh, Liquidity: "High (after 1 year)"},
		{Option: "Public Provident Fund (PPF)", ExpectedReturn: decimal.RequireFromString("7.1"), Risk: domain.RiskLow, Liquidity: "Low"},
		{Option: "Employees Provident Fund (EPF)", ExpectedReturn: decimal.RequireFromString("8.1"), Risk: domain.RiskLow, Liquidity: "Low"},
		{Option: "National Pension Scheme (NPS)", ExpectedReturn: decimal.NewFromInt(9), Risk: domain.RiskModerate, Liquidity: "Moderate"},
	}
}
