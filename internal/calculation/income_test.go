package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateIncome(t *testing.T) {
	res, err := EstimateIncome(decimal.NewFromInt(1000000), decimal.NewFromInt(6), decimal.NewFromInt(10000))
	require.NoError(t, err)
	assert.True(t, res.AnnualAnnuityIncome.Equal(decimal.NewFromInt(60000)), "annuity %s", res.AnnualAnnuityIncome)
	assert.Equal(t, "8.33", res.WithdrawalDurationYears.StringFixed(2))
}

func TestEstimateIncome_Bounds(t *testing.T) {
	corpus := decimal.NewFromInt(500000)
	withdrawal := decimal.NewFromInt(5000)

	res, err := EstimateIncome(corpus, decimal.Zero, withdrawal)
	require.NoError(t, err)
	assert.True(t, res.AnnualAnnuityIncome.IsZero())

	res, err = EstimateIncome(corpus, decimal.NewFromInt(100), withdrawal)
	require.NoError(t, err)
	assert.True(t, res.AnnualAnnuityIncome.Equal(corpus))
}

func TestEstimateIncome_InvalidInputs(t *testing.T) {
	tests := []struct {
		name       string
		corpus     decimal.Decimal
		rate       decimal.Decimal
		withdrawal decimal.Decimal
	}{
		{"zero corpus", decimal.Zero, decimal.NewFromInt(6), decimal.NewFromInt(10000)},
		{"rate above 100", decimal.NewFromInt(1000000), decimal.NewFromInt(101), decimal.NewFromInt(10000)},
		{"negative rate", decimal.NewFromInt(1000000), decimal.NewFromInt(-1), decimal.NewFromInt(10000)},
		{"zero withdrawal", decimal.NewFromInt(1000000), decimal.NewFromInt(6), decimal.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EstimateIncome(tt.corpus, tt.rate, tt.withdrawal)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}
