package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	NopLogger
	infos  int
	debugs int
}

func (r *recordingLogger) Debugf(string, ...any) { r.debugs++ }
func (r *recordingLogger) Infof(string, ...any)  { r.infos++ }

func TestRunPlan_DefaultPlan(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	SetNowFunc(func() time.Time { return fixed })
	defer SetNowFunc(time.Now)

	engine := NewPlanEngine()
	report, err := engine.RunPlan(context.Background(), domain.DefaultPlan())
	require.NoError(t, err)

	assert.Equal(t, fixed, report.GeneratedAt)
	assert.Equal(t, domain.Balanced, report.RiskProfile)
	assert.True(t, report.Allocation.Total().Equal(decimal.NewFromInt(100)))

	assert.True(t, report.Summary.TotalInvestment.Equal(decimal.NewFromInt(1800000)))
	assertRelClose(t, decimal.NewFromFloat(6099854.978879724), report.Summary.TraditionalFutureValue, 1e-9)
	assert.True(t, report.Summary.EquityFutureValue.GreaterThan(report.Summary.TraditionalFutureValue))

	assert.Nil(t, report.Growth, "growth is opt-in")
	assert.False(t, report.HasGrowth())
	assert.Len(t, report.Comparison, 4)
	assert.Len(t, report.Historical, 10)
	assert.Equal(t, 10, report.EquityHistory.Count)

	assert.True(t, report.SIP.TotalInvested.Equal(decimal.NewFromInt(1200000)))
	assert.True(t, report.Tax.TaxSaved.Equal(decimal.NewFromInt(30000)))
	assert.True(t, report.Income.AnnualAnnuityIncome.Equal(decimal.NewFromInt(60000)))
}

func TestRunPlan_WithGrowth(t *testing.T) {
	plan := domain.DefaultPlan()
	plan.Contribution.IncludeGrowth = true

	report, err := NewPlanEngine().RunPlan(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, report.Growth, 31)
	assert.True(t, report.Growth[30].Equity.Equal(report.Summary.EquityFutureValue))
}

func TestRunPlan_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.Plan)
	}{
		{"retirement before current age", func(p *domain.Plan) { p.Profile.RetirementAge = 25 }},
		{"unknown risk profile", func(p *domain.Plan) { p.Profile.RiskProfile = "YOLO" }},
		{"zero sip years", func(p *domain.Plan) { p.SIP.Years = 0 }},
		{"zero withdrawal", func(p *domain.Plan) { p.Income.MonthlyWithdrawal = decimal.Zero }},
		{"negative tax investment", func(p *domain.Plan) { p.Tax.AnnualInvestment = decimal.NewFromInt(-5) }},
		{"negative equity rate", func(p *domain.Plan) { p.Contribution.EquityReturnRate = decimal.NewFromInt(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := domain.DefaultPlan()
			tt.mutate(plan)
			report, err := NewPlanEngine().RunPlan(context.Background(), plan)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestRunPlan_NilPlan(t *testing.T) {
	_, err := NewPlanEngine().RunPlan(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRunPlan_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewPlanEngine().RunPlan(ctx, domain.DefaultPlan())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlanEngine_SetLogger(t *testing.T) {
	engine := NewPlanEngine()
	rec := &recordingLogger{}
	engine.SetLogger(rec)

	_, err := engine.RunPlan(context.Background(), domain.DefaultPlan())
	require.NoError(t, err)
	assert.Equal(t, 1, rec.infos)
	assert.Positive(t, rec.debugs)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
