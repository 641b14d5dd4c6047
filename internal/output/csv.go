package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/portfolio-planner/internal/domain"
)

// CSVSummarizer exports every headline figure of a report as Metric,Amount rows.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Metric", "Amount"}); err != nil {
		return nil, err
	}
	rows := [][]string{}
	for _, r := range report.Summary.Rows() {
		rows = append(rows, []string{r.Label, r.Amount.StringFixed(2)})
	}
	rows = append(rows,
		[]string{"SIP Total Invested", report.SIP.TotalInvested.StringFixed(2)},
		[]string{"SIP Future Value", report.SIP.FutureValue.StringFixed(2)},
		[]string{"Eligible under Sec 80C", report.Tax.EligibleAmount.StringFixed(2)},
		[]string{"Tax Saved", report.Tax.TaxSaved.StringFixed(2)},
		[]string{"Annual Annuity Income", report.Income.AnnualAnnuityIncome.StringFixed(2)},
		[]string{"SWP Duration (years)", report.Income.WithdrawalDurationYears.StringFixed(2)},
	)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSVGrowthExporter exports the year-by-year growth series.
type CSVGrowthExporter struct{}

func (c CSVGrowthExporter) Name() string { return "growth-csv" }

func (c CSVGrowthExporter) Format(report *domain.PlanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(growthHeader); err != nil {
		return nil, err
	}
	for _, p := range report.Growth {
		row := []string{strconv.Itoa(p.Year), p.Equity.StringFixed(2), p.Traditional.StringFixed(2)}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
