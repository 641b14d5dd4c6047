package calculation

import (
	"math"
	"sort"

	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Illustrative annual returns (percent) for Indian equity and debt, 2014-2023.
var (
	historicalFirstYear = 2014
	historicalEquity    = []string{"12", "10", "15", "18", "11", "-3", "8", "20", "13", "16"}
	historicalDebt      = []string{"7", "6.5", "6.8", "7.2", "6.9", "6.5", "6.7", "7", "6.8", "6.6"}
)

// HistoricalReturns returns the ten-year equity vs debt return table.
func HistoricalReturns() []domain.HistoricalReturn {
	out := make([]domain.HistoricalReturn, len(historicalEquity))
	for i := range historicalEquity {
		out[i] = domain.HistoricalReturn{
			Year:   historicalFirstYear + i,
			Equity: decimal.RequireFromString(historicalEquity[i]),
			Debt:   decimal.RequireFromString(historicalDebt[i]),
		}
	}
	return out
}

// EquityReturns extracts the equity column of a historical table.
func EquityReturns(rows []domain.HistoricalReturn) []decimal.Decimal {
	out := make([]decimal.Decimal, len(rows))
	for i, r := range rows {
		out[i] = r.Equity
	}
	return out
}

// DebtReturns extracts the debt column of a historical table.
func DebtReturns(rows []domain.HistoricalReturn) []decimal.Decimal {
	out := make([]decimal.Decimal, len(rows))
	for i, r := range rows {
		out[i] = r.Debt
	}
	return out
}

// SummarizeReturns computes mean, median, population standard deviation and range.
func SummarizeReturns(values []decimal.Decimal) domain.ReturnStatistics {
	if len(values) == 0 {
		return domain.ReturnStatistics{}
	}
	count := decimal.NewFromInt(int64(len(values)))

	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	mean := sum.DivRound(count, precision)

	sorted := append([]decimal.Decimal(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
	}

	var varianceSum decimal.Decimal
	for _, v := range values {
		diff := v.Sub(mean)
		varianceSum = varianceSum.Add(diff.Mul(diff))
	}
	// sqrt has no decimal implementation; float64 is ample for a display statistic
	variance := varianceSum.DivRound(count, precision).InexactFloat64()
	stdDev := decimal.NewFromFloat(math.Sqrt(variance))

	return domain.ReturnStatistics{
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Count:  len(values),
	}
}
