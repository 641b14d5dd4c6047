package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTaxBenefit(t *testing.T) {
	tests := []struct {
		name     string
		invested int64
		eligible int64
		saved    int64
	}{
		{"above the cap", 200000, 150000, 45000},
		{"below the cap", 100000, 100000, 30000},
		{"exactly the cap", 150000, 150000, 45000},
		{"nothing invested", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := EstimateTaxBenefit(decimal.NewFromInt(tt.invested))
			require.NoError(t, err)
			assert.True(t, res.EligibleAmount.Equal(decimal.NewFromInt(tt.eligible)), "eligible %s", res.EligibleAmount)
			assert.True(t, res.TaxSaved.Equal(decimal.NewFromInt(tt.saved)), "saved %s", res.TaxSaved)
		})
	}
}

func TestEstimateTaxBenefit_Negative(t *testing.T) {
	_, err := EstimateTaxBenefit(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
