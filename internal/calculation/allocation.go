package calculation

import (
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Instrument labels used by every allocation table.
const (
	InstrumentEquity = "Equity MFs"
	InstrumentDebt   = "Debt MFs"
	InstrumentPPF    = "PPF"
	InstrumentSCSS   = "SCSS"
	InstrumentNPS    = "NPS"
	InstrumentEPF    = "EPF"
)

var instrumentOrder = []string{InstrumentEquity, InstrumentDebt, InstrumentPPF, InstrumentSCSS, InstrumentNPS, InstrumentEPF}

// allocationPercents is indexed like instrumentOrder.
var allocationPercents = map[domain.RiskProfile][]int64{
	domain.Conservative: {10, 30, 30, 15, 10, 5},
	domain.Balanced:     {30, 25, 15, 10, 15, 5},
	domain.Aggressive:   {50, 20, 10, 5, 10, 5},
}

// Allocation returns the fixed corpus allocation for a risk profile.
func Allocation(profile domain.RiskProfile) (domain.AllocationTable, error) {
	percents, ok := allocationPercents[profile]
	if !ok {
		return nil, invalidArgf("unknown risk profile %q", profile)
	}
	table := make(domain.AllocationTable, len(instrumentOrder))
	for i, name := range instrumentOrder {
		table[i] = domain.Allocation{Instrument: name, Percent: decimal.NewFromInt(percents[i])}
	}
	return table, nil
}
