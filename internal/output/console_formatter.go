package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rpgo/portfolio-planner/internal/domain"
)

var (
	colorAccent = lipgloss.Color("#3AA99F")
	colorBorder = lipgloss.Color("#575653")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// ConsoleFormatter renders the report as styled terminal tables.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	p := report.Plan.Profile

	fmt.Fprintln(&buf, titleStyle.Render("OPTIMAL RETIREMENT PORTFOLIO PLAN"))
	fmt.Fprintf(&buf, "Age %d → %d (%d years), %s risk profile\n\n", p.CurrentAge, p.RetirementAge, p.InvestmentYears(), report.RiskProfile)

	section(&buf, "1. Asset Allocation")
	buf.WriteString(RenderTable(allocationHeader, allocationRows(report.Allocation, FormatPercentage)))

	section(&buf, "2. Retirement Portfolio Summary")
	rows := make([][]string, 0, 3)
	for _, r := range report.Summary.Rows() {
		rows = append(rows, []string{r.Label, FormatCurrency(r.Amount)})
	}
	buf.WriteString(RenderTable(summaryHeader, rows))
	in := AnalyzeSummary(report.Summary)
	fmt.Fprintf(&buf, "Equity advantage: %s (%s), growth multiple %sx vs %sx\n",
		FormatCurrency(in.EquityAdvantage), FormatPercentage(in.AdvantagePercent),
		in.EquityMultiple.StringFixed(2), in.TraditionalMultiple.StringFixed(2))

	if report.HasGrowth() {
		section(&buf, "Year-by-Year Growth")
		rows := make([][]string, 0, len(report.Growth))
		for _, g := range report.Growth {
			rows = append(rows, []string{strconv.Itoa(g.Year), FormatCurrency(g.Equity), FormatCurrency(g.Traditional)})
		}
		buf.WriteString(RenderTable(growthHeader, rows))
	}

	section(&buf, "3. Comparison of Investment Options")
	buf.WriteString(RenderTable(comparisonHeader, comparisonRows(report.Comparison, FormatPercentage)))

	section(&buf, "4. 10-Year Debt vs Equity Returns")
	rows = make([][]string, 0, len(report.Historical))
	for _, h := range report.Historical {
		rows = append(rows, []string{strconv.Itoa(h.Year), FormatPercentage(h.Equity), FormatPercentage(h.Debt)})
	}
	buf.WriteString(RenderTable([]string{"Year", "Equity Returns (%)", "Debt Returns (%)"}, rows))
	fmt.Fprintf(&buf, "Equity mean %s (σ %s), debt mean %s (σ %s)\n",
		FormatPercentage(report.EquityHistory.Mean), FormatPercentage(report.EquityHistory.StdDev),
		FormatPercentage(report.DebtHistory.Mean), FormatPercentage(report.DebtHistory.StdDev))

	section(&buf, "5. SIP-Based Investment Simulation")
	fmt.Fprintf(&buf, "Total Invested: %s, Future Value: %s, Gain: %s\n",
		FormatCurrency(report.SIP.TotalInvested), FormatCurrency(report.SIP.FutureValue), FormatCurrency(report.SIP.Gain()))

	section(&buf, "6. Tax Benefit Estimation")
	fmt.Fprintf(&buf, "Eligible under Sec 80C: %s\nPotential Tax Saved: %s\n", FormatCurrency(report.Tax.EligibleAmount), FormatCurrency(report.Tax.TaxSaved))

	section(&buf, "7. Post-Retirement Income Simulation")
	fmt.Fprintf(&buf, "Annual Annuity Income: %s\nSWP Duration: %s\n", FormatCurrency(report.Income.AnnualAnnuityIncome), FormatYears(report.Income.WithdrawalDurationYears))

	section(&buf, "Key Assumptions")
	for _, a := range GenerateAssumptions(&report.Plan) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func section(buf *bytes.Buffer, title string) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, sectionStyle.Render(title))
}

// RenderTable draws a bordered table with a bold header row.
func RenderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.String() + "\n"
}
