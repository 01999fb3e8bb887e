package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvin-chang/neural-prophet/stats"
	"github.com/alvin-chang/neural-prophet/timeseries"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return ts
}

func dailyDates(t *testing.T, start string, n int) []time.Time {
	t.Helper()
	first := mustDate(t, start)
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = first.AddDate(0, 0, i)
	}
	return dates
}

func TestNewTrendGrowthCoercion(t *testing.T) {
	testData := map[string]struct {
		input    any
		expected Growth
	}{
		"legacy true":       {input: true, expected: GrowthLinear},
		"legacy false":      {input: false, expected: GrowthOff},
		"string mode":       {input: "discontinuous", expected: GrowthDiscontinuous},
		"typed constant":    {input: GrowthLogistic, expected: GrowthLogistic},
		"unset":             {input: nil, expected: GrowthLinear},
		"unknown string":    {input: "exponential", expected: GrowthLinear},
		"unsupported value": {input: 3.7, expected: GrowthLinear},
	}

	for name, tt := range testData {
		t.Run(name, func(t *testing.T) {
			trend := NewTrend(TrendOptions{Growth: tt.input}, nil)
			if trend.Growth != tt.expected {
				t.Errorf("Expected growth %q, got %q", tt.expected, trend.Growth)
			}
		})
	}
}

func TestNewTrendGrowthOffClearsChangepoints(t *testing.T) {
	trend := NewTrend(TrendOptions{
		Growth:        GrowthOff,
		Changepoints:  dailyDates(t, "2024-01-01", 3),
		NChangepoints: 5,
	}, nil)

	assert.Nil(t, trend.Changepoints)
	if trend.NChangepoints != 0 {
		t.Errorf("Expected 0 changepoints, got %d", trend.NChangepoints)
	}
}

func TestNewTrendLogisticDefaults(t *testing.T) {
	trend := NewTrend(TrendOptions{Growth: GrowthLogistic}, nil)

	assert.InDelta(t, 0.1, trend.Tau, 1e-12)
	assert.InDelta(t, 0.1, trend.FloorInitQuantile, 1e-12)
	assert.InDelta(t, 0.9, trend.CapInitQuantile, 1e-12)
	assert.InDelta(t, 0.0, trend.InitialSlope, 1e-12)
	assert.InDelta(t, 0.5, trend.Cap, 1e-12)
	assert.InDelta(t, -0.5, trend.Floor, 1e-12)
}

func TestNewTrendCustomChangepointsSorted(t *testing.T) {
	input := []time.Time{
		mustDate(t, "2024-06-01"),
		mustDate(t, "2024-01-01"),
		mustDate(t, "2024-03-01"),
	}
	trend := NewTrend(TrendOptions{Growth: GrowthLinear, Changepoints: input}, nil)

	if trend.NChangepoints != 3 {
		t.Errorf("Expected 3 changepoints, got %d", trend.NChangepoints)
	}
	for i := 1; i < len(trend.Changepoints); i++ {
		if trend.Changepoints[i].Before(trend.Changepoints[i-1]) {
			t.Errorf("Expected sorted changepoints, got %v", trend.Changepoints)
		}
	}
	// The caller's slice is left alone.
	if !input[0].Equal(mustDate(t, "2024-06-01")) {
		t.Error("Expected input slice unmodified")
	}
}

func TestNewTrendRegThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold any
		reg       float64
		nCp       int
		expected  *float64
	}{
		{name: "derived", threshold: true, reg: 0.5, nCp: 4, expected: floatPtr(0.5)},
		{name: "derived no changepoints", threshold: true, reg: 0, nCp: 0, expected: floatPtr(1.0)},
		{name: "disabled", threshold: false, reg: 0.5, nCp: 4, expected: nil},
		{name: "unset", threshold: nil, reg: 0.5, nCp: 4, expected: nil},
		{name: "negative", threshold: -0.5, reg: 0.5, nCp: 4, expected: nil},
		{name: "zero", threshold: 0.0, reg: 0.5, nCp: 4, expected: nil},
		{name: "explicit", threshold: 0.25, reg: 0.5, nCp: 4, expected: floatPtr(0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend := NewTrend(TrendOptions{
				Growth:        GrowthLinear,
				NChangepoints: tt.nCp,
				Reg:           tt.reg,
				RegThreshold:  tt.threshold,
			}, nil)

			if tt.expected == nil {
				assert.Nil(t, trend.RegThreshold)
			} else {
				require.NotNil(t, trend.RegThreshold)
				assert.InDelta(t, *tt.expected, *trend.RegThreshold, 1e-9)
			}
		})
	}
}

func TestNewTrendThresholdUsesUnscaledReg(t *testing.T) {
	// Threshold derivation must see reg 2, not the scaled 0.002.
	trend := NewTrend(TrendOptions{
		Growth:        GrowthLinear,
		NChangepoints: 4,
		Reg:           2,
		RegThreshold:  true,
	}, nil)

	require.NotNil(t, trend.RegThreshold)
	assert.InDelta(t, 1.0/3.0, *trend.RegThreshold, 1e-9)
	assert.InDelta(t, 0.002, trend.Reg, 1e-12)
}

func TestNewTrendDerivedThresholdNegativeReg(t *testing.T) {
	// The derivation sees the raw reg, so a reg below -1 drives the
	// denominator negative and the stored threshold with it: 3/(3-3*3) = -0.5.
	trend := NewTrend(TrendOptions{
		Growth:        GrowthLinear,
		NChangepoints: 9,
		Reg:           -4,
		RegThreshold:  true,
	}, nil)

	require.NotNil(t, trend.RegThreshold)
	assert.InDelta(t, -0.5, *trend.RegThreshold, 1e-9)
	// The clamp that follows resets reg itself but never revisits the
	// threshold.
	assert.InDelta(t, 0.0, trend.Reg, 1e-12)
}

func TestNewTrendNegativeRegClamped(t *testing.T) {
	trend := NewTrend(TrendOptions{Growth: GrowthLinear, Reg: -1}, nil)
	assert.InDelta(t, 0.0, trend.Reg, 1e-12)
}

func TestNewTrendRegIgnoredWithoutChangepoints(t *testing.T) {
	trend := NewTrend(TrendOptions{Growth: GrowthLinear, Reg: 2, NChangepoints: 0}, nil)
	assert.InDelta(t, 0.0, trend.Reg, 1e-12)
}

func TestNewTrendRegScaledWithChangepoints(t *testing.T) {
	trend := NewTrend(TrendOptions{Growth: GrowthLinear, Reg: 2, NChangepoints: 3}, nil)
	assert.InDelta(t, 0.002, trend.Reg, 1e-12)
}

func logisticDataset(t *testing.T, n int) *timeseries.Dataset {
	t.Helper()
	dates := dailyDates(t, "2024-01-01", n)
	targets := make([]float64, n)
	for i := range targets {
		targets[i] = 3 + 2*float64(i)
	}
	ds, err := timeseries.NewDataset(dates, targets)
	require.NoError(t, err)
	return ds
}

func TestInitLogisticGrowth(t *testing.T) {
	trend := NewTrend(TrendOptions{Growth: GrowthLogistic}, nil)
	ds := logisticDataset(t, 10)

	require.NoError(t, trend.InitLogisticGrowth(ds))

	// Targets follow 3 + 2*day exactly.
	assert.InDelta(t, 2.0, trend.InitialSlope, 1e-9)
	// k = int(10*0.9) = 9 picks the 9th smallest target.
	assert.InDelta(t, 19.0, trend.Cap, 1e-9)
	// k = int(10*0.1) = 1 picks the smallest target.
	assert.InDelta(t, 3.0, trend.Floor, 1e-9)
}

func TestInitLogisticGrowthWithUserCap(t *testing.T) {
	trend := NewTrend(TrendOptions{Growth: GrowthLogistic, CapUser: true}, nil)
	ds := logisticDataset(t, 10)

	require.NoError(t, trend.InitLogisticGrowth(ds))

	// The slope is still fitted, but both bounds keep their placeholders.
	assert.InDelta(t, 2.0, trend.InitialSlope, 1e-9)
	assert.InDelta(t, 0.5, trend.Cap, 1e-9)
	assert.InDelta(t, -0.5, trend.Floor, 1e-9)
}

func TestInitLogisticGrowthWithUserFloor(t *testing.T) {
	trend := NewTrend(TrendOptions{Growth: GrowthLogistic, FloorUser: true}, nil)
	ds := logisticDataset(t, 10)

	require.NoError(t, trend.InitLogisticGrowth(ds))

	// Bound initialization keys off the cap flag, so the floor is overwritten.
	assert.InDelta(t, 19.0, trend.Cap, 1e-9)
	assert.InDelta(t, 3.0, trend.Floor, 1e-9)
}

func TestInitLogisticGrowthRequiresLogistic(t *testing.T) {
	trend := NewTrend(TrendOptions{Growth: GrowthLinear}, nil)
	err := trend.InitLogisticGrowth(logisticDataset(t, 10))
	assert.ErrorIs(t, err, ErrNotLogistic)
}

func TestInitLogisticGrowthSinglePoint(t *testing.T) {
	trend := NewTrend(TrendOptions{Growth: GrowthLogistic}, nil)
	err := trend.InitLogisticGrowth(logisticDataset(t, 1))
	assert.ErrorIs(t, err, stats.ErrTooFewObservations)
}

func TestInitLogisticGrowthQuantileRankTooSmall(t *testing.T) {
	// With 5 points the floor rank int(5*0.1) is 0, outside the valid range.
	trend := NewTrend(TrendOptions{Growth: GrowthLogistic}, nil)
	err := trend.InitLogisticGrowth(logisticDataset(t, 5))
	assert.ErrorIs(t, err, stats.ErrRankOutOfRange)
}

func TestInitLogisticGrowthDegenerateTime(t *testing.T) {
	// Identical timestamps collapse the time column to a constant, which is
	// collinear with the intercept and leaves the slope fit undetermined.
	same := mustDate(t, "2024-01-01")
	ds, err := timeseries.NewDataset(
		[]time.Time{same, same, same, same},
		[]float64{1, 2, 3, 4},
	)
	require.NoError(t, err)

	trend := NewTrend(TrendOptions{Growth: GrowthLogistic}, nil)
	if err := trend.InitLogisticGrowth(ds); err == nil {
		t.Error("Expected error for a degenerate time column, got nil")
	}
}
