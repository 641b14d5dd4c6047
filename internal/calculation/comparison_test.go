package calculation

import (
	"testing"

	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisonTable(t *testing.T) {
	rows := ComparisonTable()
	require.Len(t, rows, 4)

	wantOptions := []string{
		"Equity Mutual Fund",
		"Public Provident Fund (PPF)",
		"Employees Provident Fund (EPF)",
		"National Pension Scheme (NPS)",
	}
	wantReturns := []string{"12", "7.1", "8.1", "9"}
	wantRisk := []domain.RiskLevel{domain.RiskHigh, domain.RiskLow, domain.RiskLow, domain.RiskModerate}
	wantLiquidity := []string{"High (after 1 year)", "Low", "Low", "Moderate"}

	for i, row := range rows {
		assert.Equal(t, wantOptions[i], row.Option)
		assert.Equal(t, wantReturns[i], row.ExpectedReturn.String())
		assert.Equal(t, wantRisk[i], row.Risk)
		assert.Equal(t, wantLiquidity[i], row.Liquidity)
	}
}

func TestComparisonTable_Stable(t *testing.T) {
	first := ComparisonTable()
	first[0].Option = "changed"
	assert.Equal(t, "Equity Mutual Fund", ComparisonTable()[0].Option)
}
