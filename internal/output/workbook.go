package output

import (
	"fmt"

	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names, in the order they are written.
const (
	SheetSummary    = "Summary"
	SheetGrowth     = "Growth Over Time"
	SheetComparison = "Option Comparison"
	SheetAllocation = "Risk Allocation"
)

// WorkbookExporter writes the report as an .xlsx workbook with one sheet per
// table. The growth sheet is omitted when no series was computed.
type WorkbookExporter struct{}

func (w WorkbookExporter) Name() string { return "xlsx" }

func (w WorkbookExporter) Format(report *domain.PlanReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// a new workbook starts with one default sheet; reuse it for the summary
	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		return nil, fmt.Errorf("rename default sheet: %w", err)
	}

	summary := make([][]any, 0, 3)
	for _, r := range report.Summary.Rows() {
		summary = append(summary, []any{r.Label, r.Amount.InexactFloat64()})
	}
	if err := writeSheet(f, SheetSummary, summaryHeader, summary); err != nil {
		return nil, err
	}

	if report.HasGrowth() {
		growth := make([][]any, 0, len(report.Growth))
		for _, g := range report.Growth {
			growth = append(growth, []any{g.Year, g.Equity.InexactFloat64(), g.Traditional.InexactFloat64()})
		}
		if err := addSheet(f, SheetGrowth, growthHeader, growth); err != nil {
			return nil, err
		}
	}

	comparison := make([][]any, 0, len(report.Comparison))
	for _, c := range report.Comparison {
		comparison = append(comparison, []any{c.Option, c.ExpectedReturn.InexactFloat64(), string(c.Risk), c.Liquidity})
	}
	if err := addSheet(f, SheetComparison, comparisonHeader, comparison); err != nil {
		return nil, err
	}

	allocation := make([][]any, 0, len(report.Allocation))
	for _, a := range report.Allocation {
		allocation = append(allocation, []any{a.Instrument, a.Percent.InexactFloat64()})
	}
	if err := addSheet(f, SheetAllocation, allocationHeader, allocation); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func addSheet(f *excelize.File, name string, header []string, rows [][]any) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	return writeSheet(f, name, header, rows)
}

func writeSheet(f *excelize.File, name string, header []string, rows [][]any) error {
	head := make([]any, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &head); err != nil {
		return fmt.Errorf("%s header: %w", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", name, i+1, err)
		}
	}
	return nil
}
