package main

import (
	"fmt"
	"strconv"

	"github.com/rpgo/portfolio-planner/internal/calculation"
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/rpgo/portfolio-planner/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) allocationCmd() *cobra.Command {
	var profile string
	cmd := &cobra.Command{
		Use:   "allocation",
		Short: "Show the asset allocation for a risk profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rp, err := domain.ParseRiskProfile(profile)
			if err != nil {
				return err
			}
			table, err := calculation.Allocation(rp)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(table))
			for _, al := range table {
				rows = append(rows, []string{al.Instrument, output.FormatPercentage(al.Percent)})
			}
			fmt.Fprint(cmd.OutOrStdout(), output.RenderTable([]string{"Instrument", "Allocation (%)"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVarP(&profile, "profile", "p", string(domain.Balanced), "Risk profile: Conservative, Balanced or Aggressive")
	return cmd
}

func (a *app) projectCmd() *cobra.Command {
	var monthly, rate float64
	var months int
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Future value of a monthly contribution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			total, err := calculation.TotalContribution(dec(monthly), months)
			if err != nil {
				return err
			}
			fv, err := calculation.ProjectFutureValue(dec(monthly), dec(rate), months)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total Investment: %s\nFuture Value: %s\n", output.FormatCurrency(total), output.FormatCurrency(fv))
			return nil
		},
	}
	cmd.Flags().Float64Var(&monthly, "monthly", 5000, "Monthly contribution")
	cmd.Flags().Float64Var(&rate, "rate", 12, "Annual return rate (%)")
	cmd.Flags().IntVar(&months, "months", 360, "Number of monthly contributions")
	return cmd
}

func (a *app) growthCmd() *cobra.Command {
	var monthly, equityRate, traditionalRate float64
	var startAge, endAge int
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Year-by-year growth under equity and traditional returns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			series, err := calculation.BuildGrowthSeries(dec(monthly), dec(equityRate), dec(traditionalRate), startAge, endAge)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(series))
			for _, p := range series {
				rows = append(rows, []string{strconv.Itoa(p.Year), output.FormatCurrency(p.Equity), output.FormatCurrency(p.Traditional)})
			}
			fmt.Fprint(cmd.OutOrStdout(), output.RenderTable([]string{"Year", "Equity-Based", "Traditional"}, rows))
			return nil
		},
	}
	cmd.Flags().Float64Var(&monthly, "monthly", 5000, "Monthly contribution")
	cmd.Flags().Float64Var(&equityRate, "equity-rate", 12, "Equity annual return (%)")
	cmd.Flags().Float64Var(&traditionalRate, "traditional-rate", 7, "Traditional annual return (%)")
	cmd.Flags().IntVar(&startAge, "start-age", 30, "Current age")
	cmd.Flags().IntVar(&endAge, "end-age", 60, "Retirement age")
	return cmd
}

func (a *app) sipCmd() *cobra.Command {
	var monthly, rate float64
	var years int
	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Simulate a systematic investment plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := calculation.SimulateSIP(dec(monthly), dec(rate), years)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total Invested: %s, Future Value: %s\n", output.FormatCurrency(res.TotalInvested), output.FormatCurrency(res.FutureValue))
			return nil
		},
	}
	cmd.Flags().Float64Var(&monthly, "monthly", 5000, "SIP monthly investment")
	cmd.Flags().Float64Var(&rate, "rate", 12, "Expected annual return (%)")
	cmd.Flags().IntVar(&years, "years", 20, "Investment duration in years")
	return cmd
}

func (a *app) incomeCmd() *cobra.Command {
	var corpus, annuityRate, withdrawal float64
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Annuity income and SWP duration for a corpus",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := calculation.EstimateIncome(dec(corpus), dec(annuityRate), dec(withdrawal))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Annual Annuity Income: %s\nSWP Duration: %s\n", output.FormatCurrency(res.AnnualAnnuityIncome), output.FormatYears(res.WithdrawalDurationYears))
			return nil
		},
	}
	cmd.Flags().Float64Var(&corpus, "corpus", 1000000, "Total corpus at retirement")
	cmd.Flags().Float64Var(&annuityRate, "annuity-rate", 6, "Annuity rate (%)")
	cmd.Flags().Float64Var(&withdrawal, "withdrawal", 10000, "SWP monthly amount")
	return cmd
}

func (a *app) taxCmd() *cobra.Command {
	var amount float64
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Estimate the Sec 80C tax benefit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := calculation.EstimateTaxBenefit(dec(amount))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Eligible under Sec 80C: %s\nPotential Tax Saved: %s\n", output.FormatCurrency(res.EligibleAmount), output.FormatCurrency(res.TaxSaved))
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 100000, "Annual investment for tax saving")
	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare common retirement investment options",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := [][]string{}
			for _, c := range calculation.ComparisonTable() {
				rows = append(rows, []string{c.Option, output.FormatPercentage(c.ExpectedReturn), string(c.Risk), c.Liquidity})
			}
			fmt.Fprint(cmd.OutOrStdout(), output.RenderTable([]string{"Option", "Expected Returns (p.a.)", "Risk Level", "Liquidity"}, rows))
			return nil
		},
	}
}

func (a *app) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Ten years of illustrative equity vs debt returns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			hist := calculation.HistoricalReturns()
			rows := make([][]string, 0, len(hist))
			for _, h := range hist {
				rows = append(rows, []string{strconv.Itoa(h.Year), output.FormatPercentage(h.Equity), output.FormatPercentage(h.Debt)})
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, output.RenderTable([]string{"Year", "Equity Returns (%)", "Debt Returns (%)"}, rows))
			eq := calculation.SummarizeReturns(calculation.EquityReturns(hist))
			debt := calculation.SummarizeReturns(calculation.DebtReturns(hist))
			fmt.Fprintf(out, "Equity: mean %s, σ %s, range %s to %s\n", output.FormatPercentage(eq.Mean), output.FormatPercentage(eq.StdDev), output.FormatPercentage(eq.Min), output.FormatPercentage(eq.Max))
			fmt.Fprintf(out, "Debt:   mean %s, σ %s, range %s to %s\n", output.FormatPercentage(debt.Mean), output.FormatPercentage(debt.StdDev), output.FormatPercentage(debt.Min), output.FormatPercentage(debt.Max))
			return nil
		},
	}
}
