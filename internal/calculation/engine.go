package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/portfolio-planner/internal/domain"
)

// PlanEngine runs every planner calculation for a Plan.
type PlanEngine struct {
	Logger Logger
}

// NewPlanEngine creates a plan engine with a no-op logger.
func NewPlanEngine() *PlanEngine {
	return &PlanEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the plan engine. If nil is provided, a no-op logger is used.
func (pe *PlanEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunPlan computes a complete report. Any failing section aborts the run.
func (pe *PlanEngine) RunPlan(ctx context.Context, plan *domain.Plan) (*domain.PlanReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, invalidArgf("plan is required")
	}

	profile := plan.Profile
	if profile.CurrentAge <= 0 {
		return nil, invalidArgf("current age must be positive, got %d", profile.CurrentAge)
	}
	if profile.RetirementAge < profile.CurrentAge {
		return nil, invalidArgf("retirement age %d is before current age %d", profile.RetirementAge, profile.CurrentAge)
	}

	report := &domain.PlanReport{
		GeneratedAt: nowFunc(),
		Plan:        *plan,
		RiskProfile: profile.RiskProfile,
	}

	allocation, err := Allocation(profile.RiskProfile)
	if err != nil {
		return nil, fmt.Errorf("allocation: %w", err)
	}
	report.Allocation = allocation
	pe.Logger.Debugf("allocation for %s: %d instruments", profile.RiskProfile, len(allocation))

	summary, err := pe.summarize(profile, plan.Contribution)
	if err != nil {
		return nil, fmt.Errorf("investment summary: %w", err)
	}
	report.Summary = summary

	if plan.Contribution.IncludeGrowth {
		growth, err := BuildGrowthSeries(plan.Contribution.MonthlyInvestment,
			plan.Contribution.EquityReturnRate, plan.Contribution.TraditionalReturnRate,
			profile.CurrentAge, profile.RetirementAge)
		if err != nil {
			return nil, fmt.Errorf("growth series: %w", err)
		}
		report.Growth = growth
		pe.Logger.Debugf("growth series: %d points", len(growth))
	}

	report.Comparison = ComparisonTable()
	report.Historical = HistoricalReturns()
	report.EquityHistory = SummarizeReturns(EquityReturns(report.Historical))
	report.DebtHistory = SummarizeReturns(DebtReturns(report.Historical))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sip, err := SimulateSIP(plan.SIP.MonthlyInvestment, plan.SIP.AnnualReturnRate, plan.SIP.Years)
	if err != nil {
		return nil, fmt.Errorf("sip simulation: %w", err)
	}
	report.SIP = sip
	pe.Logger.Debugf("sip: invested=%s fv=%s", sip.TotalInvested.StringFixed(2), sip.FutureValue.StringFixed(2))

	tax, err := EstimateTaxBenefit(plan.Tax.AnnualInvestment)
	if err != nil {
		return nil, fmt.Errorf("tax benefit: %w", err)
	}
	report.Tax = tax

	income, err := EstimateIncome(plan.Income.Corpus, plan.Income.AnnuityRate, plan.Income.MonthlyWithdrawal)
	if err != nil {
		return nil, fmt.Errorf("retirement income: %w", err)
	}
	report.Income = income

	pe.Logger.Infof("plan computed: profile=%s horizon=%dy", profile.RiskProfile, profile.InvestmentYears())
	return report, nil
}

func (pe *PlanEngine) summarize(profile domain.InvestorProfile, c domain.ContributionPlan) (domain.InvestmentSummary, error) {
	months := profile.InvestmentYears() * 12
	total, err := TotalContribution(c.MonthlyInvestment, months)
	if err != nil {
		return domain.InvestmentSummary{}, err
	}
	equity, err := ProjectFutureValue(c.MonthlyInvestment, c.EquityReturnRate, months)
	if err != nil {
		return domain.InvestmentSummary{}, fmt.Errorf("equity: %w", err)
	}
	traditional, err := ProjectFutureValue(c.MonthlyInvestment, c.TraditionalReturnRate, months)
	if err != nil {
		return domain.InvestmentSummary{}, fmt.Errorf("traditional: %w", err)
	}
	return domain.InvestmentSummary{
		TotalInvestment:        total,
		EquityFutureValue:      equity,
		TraditionalFutureValue: traditional,
	}, nil
}
