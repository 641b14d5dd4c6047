package output

import (
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Column headers shared by the console, CSV and workbook exporters.
var (
	summaryHeader    = []string{"Summary", "Amount"}
	growthHeader     = []string{"Year", "Equity-Based", "Traditional"}
	comparisonHeader = []string{"Option", "Expected Returns (p.a.)", "Risk Level", "Liquidity"}
	allocationHeader = []string{"Instrument", "Allocation (%)"}
)

func allocationRows(table domain.AllocationTable, pct func(decimal.Decimal) string) [][]string {
	rows := make([][]string, 0, len(table))
	for _, a := range table {
		rows = append(rows, []string{a.Instrument, pct(a.Percent)})
	}
	return rows
}

func comparisonRows(cmp []domain.ComparisonRow, pct func(decimal.Decimal) string) [][]string {
	rows := make([][]string, 0, len(cmp))
	for _, c := range cmp {
		rows = append(rows, []string{c.Option, pct(c.ExpectedReturn), string(c.Risk), c.Liquidity})
	}
	return rows
}
