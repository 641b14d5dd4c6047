package domain

import (
	"github.com/shopspring/decimal"
)

// Plan collects every input of a retirement planning session.
type Plan struct {
	Profile      InvestorProfile  `yaml:"profile" json:"profile"`
	Contribution ContributionPlan `yaml:"contribution" json:"contribution"`
	SIP          SIPPlan          `yaml:"sip" json:"sip"`
	Tax          TaxPlan          `yaml:"tax" json:"tax"`
	Income       IncomePlan       `yaml:"income" json:"income"`
}

// InvestorProfile holds the investor's ages and risk appetite.
type InvestorProfile struct {
	CurrentAge    int         `yaml:"current_age" json:"current_age"`
	RetirementAge int         `yaml:"retirement_age" json:"retirement_age"`
	RiskProfile   RiskProfile `yaml:"risk_profile" json:"risk_profile"`
}

// InvestmentYears is the accumulation horizon in whole years.
func (ip InvestorProfile) InvestmentYears() int {
	return ip.RetirementAge - ip.CurrentAge
}

// ContributionPlan drives the equity vs traditional projection.
// Rates are annual percentages (12 means 12%).
type ContributionPlan struct {
	MonthlyInvestment     decimal.Decimal `yaml:"monthly_investment" json:"monthly_investment"`
	EquityReturnRate      decimal.Decimal `yaml:"equity_return_rate" json:"equity_return_rate"`
	TraditionalReturnRate decimal.Decimal `yaml:"traditional_return_rate" json:"traditional_return_rate"`
	IncludeGrowth         bool            `yaml:"include_growth" json:"include_growth"`
}

// SIPPlan is a standalone systematic investment plan simulation.
type SIPPlan struct {
	MonthlyInvestment decimal.Decimal `yaml:"monthly_investment" json:"monthly_investment"`
	AnnualReturnRate  decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
	Years             int             `yaml:"years" json:"years"`
}

// TaxPlan is the yearly amount invested in tax-saving instruments.
type TaxPlan struct {
	AnnualInvestment decimal.Decimal `yaml:"annual_investment" json:"annual_investment"`
}

// IncomePlan describes the post-retirement drawdown.
type IncomePlan struct {
	Corpus            decimal.Decimal `yaml:"corpus" json:"corpus"`
	AnnuityRate       decimal.Decimal `yaml:"annuity_rate" json:"annuity_rate"`
	MonthlyWithdrawal decimal.Decimal `yaml:"monthly_withdrawal" json:"monthly_withdrawal"`
}

// DefaultPlan returns the planner's out-of-the-box inputs.
func DefaultPlan() *Plan {
	return &Plan{
		Profile: InvestorProfile{
			CurrentAge:    30,
			RetirementAge: 60,
			RiskProfile:   Balanced,
		},
		Contribution: ContributionPlan{
			MonthlyInvestment:     decimal.NewFromInt(5000),
			EquityReturnRate:      decimal.NewFromInt(12),
			TraditionalReturnRate: decimal.NewFromInt(7),
		},
		SIP: SIPPlan{
			MonthlyInvestment: decimal.NewFromInt(5000),
			AnnualReturnRate:  decimal.NewFromInt(12),
			Years:             20,
		},
		Tax: TaxPlan{
			AnnualInvestment: decimal.NewFromInt(100000),
		},
		Income: IncomePlan{
			Corpus:            decimal.NewFromInt(1000000),
			AnnuityRate:       decimal.NewFromInt(6),
			MonthlyWithdrawal: decimal.NewFromInt(10000),
		},
	}
}
