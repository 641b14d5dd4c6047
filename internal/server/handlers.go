package server

import (
	"fmt"

	"github.com/rpgo/portfolio-planner/internal/calculation"
	"github.com/rpgo/portfolio-planner/internal/config"
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
)

type projectRequest struct {
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	AnnualRate          decimal.Decimal `json:"annual_rate"`
	Months              int             `json:"months"`
}

type projectResponse struct {
	TotalContribution decimal.Decimal `json:"total_contribution"`
	FutureValue       decimal.Decimal `json:"future_value"`
}

type growthRequest struct {
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	EquityRate          decimal.Decimal `json:"equity_rate"`
	TraditionalRate     decimal.Decimal `json:"traditional_rate"`
	StartAge            int             `json:"start_age"`
	EndAge              int             `json:"end_age"`
}

type sipRequest struct {
	MonthlyContribution decimal.Decimal `json:"monthly_contribution"`
	AnnualRate          decimal.Decimal `json:"annual_rate"`
	Years               int             `json:"years"`
}

type incomeRequest struct {
	Corpus            decimal.Decimal `json:"corpus"`
	AnnuityRate       decimal.Decimal `json:"annuity_rate"`
	MonthlyWithdrawal decimal.Decimal `json:"monthly_withdrawal"`
}

type taxRequest struct {
	AnnualInvestment decimal.Decimal `json:"annual_investment"`
}

type historyResponse struct {
	Returns []domain.HistoricalReturn `json:"returns"`
	Equity  domain.ReturnStatistics   `json:"equity"`
	Debt    domain.ReturnStatistics   `json:"debt"`
}

func (s *Server) handleHealth(*fasthttp.RequestCtx) (any, error) {
	return map[string]string{"status": "ok"}, nil
}

func (s *Server) handleAllocation(ctx *fasthttp.RequestCtx) (any, error) {
	raw := string(ctx.QueryArgs().Peek("profile"))
	if raw == "" {
		return nil, fmt.Errorf("%w: profile query parameter is required", errBadRequest)
	}
	profile, err := domain.ParseRiskProfile(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", calculation.ErrInvalidArgument, err)
	}
	return calculation.Allocation(profile)
}

func (s *Server) handleComparison(*fasthttp.RequestCtx) (any, error) {
	return calculation.ComparisonTable(), nil
}

func (s *Server) handleHistory(*fasthttp.RequestCtx) (any, error) {
	rows := calculation.HistoricalReturns()
	return historyResponse{
		Returns: rows,
		Equity:  calculation.SummarizeReturns(calculation.EquityReturns(rows)),
		Debt:    calculation.SummarizeReturns(calculation.DebtReturns(rows)),
	}, nil
}

func (s *Server) handleProject(ctx *fasthttp.RequestCtx) (any, error) {
	var req projectRequest
	if err := decodeBody(ctx, &req); err != nil {
		return nil, err
	}
	fv, err := calculation.ProjectFutureValue(req.MonthlyContribution, req.AnnualRate, req.Months)
	if err != nil {
		return nil, err
	}
	total, err := calculation.TotalContribution(req.MonthlyContribution, req.Months)
	if err != nil {
		return nil, err
	}
	return projectResponse{TotalContribution: total, FutureValue: fv}, nil
}

func (s *Server) handleGrowth(ctx *fasthttp.RequestCtx) (any, error) {
	var req growthRequest
	if err := decodeBody(ctx, &req); err != nil {
		return nil, err
	}
	for _, age := range []int{req.StartAge, req.EndAge} {
		if age < config.MinAge || age > config.MaxAge {
			return nil, fmt.Errorf("%w: ages must be between %d and %d, got %d", errBadRequest, config.MinAge, config.MaxAge, age)
		}
	}
	return calculation.BuildGrowthSeries(req.MonthlyContribution, req.EquityRate, req.TraditionalRate, req.StartAge, req.EndAge)
}

func (s *Server) handleSIP(ctx *fasthttp.RequestCtx) (any, error) {
	var req sipRequest
	if err := decodeBody(ctx, &req); err != nil {
		return nil, err
	}
	return calculation.SimulateSIP(req.MonthlyContribution, req.AnnualRate, req.Years)
}

func (s *Server) handleIncome(ctx *fasthttp.RequestCtx) (any, error) {
	var req incomeRequest
	if err := decodeBody(ctx, &req); err != nil {
		return nil, err
	}
	return calculation.EstimateIncome(req.Corpus, req.AnnuityRate, req.MonthlyWithdrawal)
}

func (s *Server) handleTax(ctx *fasthttp.RequestCtx) (any, error) {
	var req taxRequest
	if err := decodeBody(ctx, &req); err != nil {
		return nil, err
	}
	return calculation.EstimateTaxBenefit(req.AnnualInvestment)
}

// handlePlan overlays the request body on the default plan and runs it.
func (s *Server) handlePlan(ctx *fasthttp.RequestCtx) (any, error) {
	plan := domain.DefaultPlan()
	if len(ctx.PostBody()) > 0 {
		if err := decodeBody(ctx, plan); err != nil {
			return nil, err
		}
	}
	if err := s.parser.Normalize(plan); err != nil {
		return nil, err
	}
	if err := s.parser.ValidatePlan(plan); err != nil {
		return nil, err
	}
	return s.engine.RunPlan(ctx, plan)
}
