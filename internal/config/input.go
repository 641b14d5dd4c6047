package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rpgo/portfolio-planner/internal/calculation"
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidPlan is wrapped by every plan validation failure.
var ErrInvalidPlan = errors.New("invalid plan")

// Accepted input ranges.
const (
	MinAge      = 18
	MaxAge      = 100
	MaxSIPYears = calculation.MaxSIPYears
)

var hundred = decimal.NewFromInt(100)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML (or JSON) file. Fields missing from
// the file keep their DefaultPlan values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates plan YAML. An empty document yields DefaultPlan.
func (ip *InputParser) Parse(data []byte) (*domain.Plan, error) {
	plan := domain.DefaultPlan()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(plan); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Normalize(plan); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := ip.ValidatePlan(plan); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return plan, nil
}

// Normalize canonicalises free-form fields, currently the risk profile's case.
func (ip *InputParser) Normalize(plan *domain.Plan) error {
	if plan == nil || plan.Profile.RiskProfile == "" {
		return nil
	}
	rp, err := domain.ParseRiskProfile(string(plan.Profile.RiskProfile))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlan, err)
	}
	plan.Profile.RiskProfile = rp
	return nil
}

// ValidatePlan checks every section of a plan
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if plan == nil {
		return fmt.Errorf("%w: no plan provided", ErrInvalidPlan)
	}
	if err := ip.validateProfile(&plan.Profile); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if err := ip.validateContribution(&plan.Contribution); err != nil {
		return fmt.Errorf("contribution: %w", err)
	}
	if err := ip.validateSIP(&plan.SIP); err != nil {
		return fmt.Errorf("sip: %w", err)
	}
	if plan.Tax.AnnualInvestment.IsNegative() {
		return fmt.Errorf("tax: %w: annual investment cannot be negative", ErrInvalidPlan)
	}
	if err := ip.validateIncome(&plan.Income); err != nil {
		return fmt.Errorf("income: %w", err)
	}
	return nil
}

func (ip *InputParser) validateProfile(p *domain.InvestorProfile) error {
	if p.CurrentAge < MinAge || p.CurrentAge > MaxAge {
		return fmt.Errorf("%w: current age must be between %d and %d, got %d", ErrInvalidPlan, MinAge, MaxAge, p.CurrentAge)
	}
	if p.RetirementAge > MaxAge {
		return fmt.Errorf("%w: retirement age must be at most %d, got %d", ErrInvalidPlan, MaxAge, p.RetirementAge)
	}
	if p.RetirementAge < p.CurrentAge {
		return fmt.Errorf("%w: retirement age %d cannot be before current age %d", ErrInvalidPlan, p.RetirementAge, p.CurrentAge)
	}
	if !p.RiskProfile.Valid() {
		return fmt.Errorf("%w: unknown risk profile %q", ErrInvalidPlan, p.RiskProfile)
	}
	return nil
}

func (ip *InputParser) validateContribution(c *domain.ContributionPlan) error {
	if c.MonthlyInvestment.IsNegative() {
		return fmt.Errorf("%w: monthly investment cannot be negative", ErrInvalidPlan)
	}
	if err := validateRate("equity return rate", c.EquityReturnRate); err != nil {
		return err
	}
	return validateRate("traditional return rate", c.TraditionalReturnRate)
}

func (ip *InputParser) validateSIP(s *domain.SIPPlan) error {
	if !s.MonthlyInvestment.IsPositive() {
		return fmt.Errorf("%w: monthly investment must be positive", ErrInvalidPlan)
	}
	if err := validateRate("annual return rate", s.AnnualReturnRate); err != nil {
		return err
	}
	if s.Years < 1 || s.Years > MaxSIPYears {
		return fmt.Errorf("%w: years must be between 1 and %d, got %d", ErrInvalidPlan, MaxSIPYears, s.Years)
	}
	return nil
}

func (ip *InputParser) validateIncome(in *domain.IncomePlan) error {
	if !in.Corpus.IsPositive() {
		return fmt.Errorf("%w: corpus must be positive", ErrInvalidPlan)
	}
	if err := validateRate("annuity rate", in.AnnuityRate); err != nil {
		return err
	}
	if !in.MonthlyWithdrawal.IsPositive() {
		return fmt.Errorf("%w: monthly withdrawal must be positive", ErrInvalidPlan)
	}
	return nil
}

// validateRate accepts annual percentages in [0, 100].
func validateRate(field string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return fmt.Errorf("%w: %s must be between 0 and 100, got %s", ErrInvalidPlan, field, rate)
	}
	return nil
}

// SavePlan writes a plan as YAML.
func SavePlan(plan *domain.Plan, filename string) error {
	b, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
