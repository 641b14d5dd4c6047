package calculation

import (
	"errors"
	"testing"

	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocation_SumsToHundred(t *testing.T) {
	for _, profile := range domain.RiskProfiles() {
		t.Run(string(profile), func(t *testing.T) {
			table, err := Allocation(profile)
			require.NoError(t, err)
			assert.Len(t, table, 6)
			assert.True(t, table.Total().Equal(decimal.NewFromInt(100)), "total was %s", table.Total())
		})
	}
}

func TestAllocation_FixedTables(t *testing.T) {
	tests := []struct {
		profile domain.RiskProfile
		want    []int64
	}{
		{domain.Conservative, []int64{10, 30, 30, 15, 10, 5}},
		{domain.Balanced, []int64{30, 25, 15, 10, 15, 5}},
		{domain.Aggressive, []int64{50, 20, 10, 5, 10, 5}},
	}
	for _, tt := range tests {
		t.Run(string(tt.profile), func(t *testing.T) {
			table, err := Allocation(tt.profile)
			require.NoError(t, err)
			for i, a := range table {
				assert.Equal(t, instrumentOrder[i], a.Instrument)
				assert.True(t, a.Percent.Equal(decimal.NewFromInt(tt.want[i])), "%s: got %s", a.Instrument, a.Percent)
			}
		})
	}
}

func TestAllocation_UnknownProfile(t *testing.T) {
	_, err := Allocation(domain.RiskProfile("Reckless"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestAllocation_ReturnsFreshCopy(t *testing.T) {
	first, err := Allocation(domain.Balanced)
	require.NoError(t, err)
	first[0].Percent = decimal.Zero

	second, err := Allocation(domain.Balanced)
	require.NoError(t, err)
	assert.True(t, second[0].Percent.Equal(decimal.NewFromInt(30)))
}
