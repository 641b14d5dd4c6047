package calculation

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertRelClose checks |got-want| <= tol*|want| (absolute tol when want is zero).
func assertRelClose(t *testing.T, want, got decimal.Decimal, tol float64) {
	t.Helper()
	limit := want.Abs().Mul(decimal.NewFromFloat(tol))
	if want.IsZero() {
		limit = decimal.NewFromFloat(tol)
	}
	assert.Truef(t, got.Sub(want).Abs().LessThanOrEqual(limit), "want %s got %s", want.StringFixed(6), got.StringFixed(6))
}

func TestProjectFutureValue_ZeroMonths(t *testing.T) {
	for _, rate := range []int64{0, 7, 12} {
		fv, err := ProjectFutureValue(decimal.NewFromInt(5000), decimal.NewFromInt(rate), 0)
		require.NoError(t, err)
		assert.True(t, fv.IsZero(), "rate %d: got %s", rate, fv)
	}
}

func TestProjectFutureValue_ZeroRate(t *testing.T) {
	for _, months := range []int{0, 1, 12, 360} {
		fv, err := ProjectFutureValue(decimal.NewFromInt(2500), decimal.Zero, months)
		require.NoError(t, err)
		assert.True(t, fv.Equal(decimal.NewFromInt(int64(2500*months))), "months %d: got %s", months, fv)
	}
}

func TestProjectFutureValue_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		monthly int64
		rate    int64
		months  int
		want    float64
	}{
		{"one year at 12%", 5000, 12, 12, 63412.51506598488},
		{"twenty years at 12%", 5000, 12, 240, 4946276.826936811},
		{"thirty years at 7%", 5000, 7, 360, 6099854.978879724},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv, err := ProjectFutureValue(decimal.NewFromInt(tt.monthly), decimal.NewFromInt(tt.rate), tt.months)
			require.NoError(t, err)
			assertRelClose(t, decimal.NewFromFloat(tt.want), fv, 1e-9)
		})
	}
}

func TestProjectFutureValue_InvalidInputs(t *testing.T) {
	tests := []struct {
		name    string
		monthly decimal.Decimal
		rate    decimal.Decimal
		months  int
	}{
		{"negative contribution", decimal.NewFromInt(-1), decimal.NewFromInt(12), 12},
		{"negative rate", decimal.NewFromInt(100), decimal.NewFromInt(-1), 12},
		{"negative months", decimal.NewFromInt(100), decimal.NewFromInt(12), -1},
		{"months above limit", decimal.NewFromInt(100), decimal.NewFromInt(12), MaxMonths + 1},
		{"huge months", decimal.NewFromInt(100), decimal.NewFromInt(12), math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProjectFutureValue(tt.monthly, tt.rate, tt.months)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
		})
	}
}

func TestTotalContribution(t *testing.T) {
	total, err := TotalContribution(decimal.NewFromInt(5000), 360)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(1800000)))

	_, err = TotalContribution(decimal.NewFromInt(5000), -12)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = TotalContribution(decimal.NewFromInt(5000), MaxMonths+1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBuildGrowthSeries_SingleYear(t *testing.T) {
	series, err := BuildGrowthSeries(decimal.NewFromInt(5000), decimal.NewFromInt(12), decimal.NewFromInt(7), 30, 30)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 30, series[0].Year)
	assert.True(t, series[0].Equity.IsZero())
	assert.True(t, series[0].Traditional.IsZero())
}

func TestBuildGrowthSeries_Chronological(t *testing.T) {
	monthly := decimal.NewFromInt(5000)
	series, err := BuildGrowthSeries(monthly, decimal.NewFromInt(12), decimal.NewFromInt(7), 30, 60)
	require.NoError(t, err)
	require.Len(t, series, 31)

	for i, p := range series {
		assert.Equal(t, 30+i, p.Year)
		if i > 0 {
			assert.True(t, p.Equity.GreaterThan(series[i-1].Equity))
			assert.True(t, p.Equity.GreaterThan(p.Traditional), "equity should outgrow traditional at age %d", p.Year)
		}
	}

	last, err := ProjectFutureValue(monthly, decimal.NewFromInt(7), 360)
	require.NoError(t, err)
	assert.True(t, series[30].Traditional.Equal(last))
}

func TestBuildGrowthSeries_InvertedRange(t *testing.T) {
	series, err := BuildGrowthSeries(decimal.NewFromInt(5000), decimal.NewFromInt(12), decimal.NewFromInt(7), 60, 30)
	require.NoError(t, err)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestBuildGrowthSeries_InvalidRate(t *testing.T) {
	_, err := BuildGrowthSeries(decimal.NewFromInt(5000), decimal.NewFromInt(-3), decimal.NewFromInt(7), 30, 31)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBuildGrowthSeries_RejectsExtremeAges(t *testing.T) {
	tests := []struct {
		name     string
		startAge int
		endAge   int
	}{
		{"span overflows int", math.MinInt/2 - 10, math.MaxInt/2 + 10},
		{"negative start", -1, 30},
		{"span above horizon", 0, MaxHorizonYears + 1},
		{"max int end", 30, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = BuildGrowthSeries(decimal.NewFromInt(5000), decimal.NewFromInt(12), decimal.NewFromInt(7), tt.startAge, tt.endAge)
			})
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestBuildGrowthSeries_FullHorizon(t *testing.T) {
	series, err := BuildGrowthSeries(decimal.NewFromInt(5000), decimal.NewFromInt(12), decimal.NewFromInt(7), 0, MaxHorizonYears)
	require.NoError(t, err)
	assert.Len(t, series, MaxHorizonYears+1)
}
