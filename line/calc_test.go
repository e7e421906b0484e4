package line

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLineThroughput_ReferenceExample verifies q / (2t) on the worked example.
func TestLineThroughput_ReferenceExample(t *testing.T) {
	// GIVEN 5 t/day over 8 h shifts
	got, err := LineThroughput(5, 8)

	// THEN the line runs at 5/16 t/h
	require.NoError(t, err)
	assert.InDelta(t, 0.3125, got, 1e-12)
}

func TestLineThroughput_PositiveOutput_PositiveThroughput(t *testing.T) {
	for _, tc := range []struct{ q, hours float64 }{
		{0.001, 24}, {1, 1}, {5, 8}, {120, 12}, {1e6, 0.5},
	} {
		got, err := LineThroughput(tc.q, tc.hours)
		require.NoError(t, err)
		assert.Greater(t, got, 0.0, "q=%v t=%v", tc.q, tc.hours)
		assert.InDelta(t, tc.q/(2*tc.hours), got, 1e-12)
	}
}

// TestLineThroughput_ZeroShift_DomainError verifies that a zero shift fails
// fast instead of producing +Inf.
func TestLineThroughput_ZeroShift_DomainError(t *testing.T) {
	got, err := LineThroughput(5, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "shift duration")
	assert.False(t, math.IsInf(got, 0))
}

func TestLineThroughput_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		q     float64
		hours float64
	}{
		{"negative output", -1, 8},
		{"negative shift", 5, -8},
		{"NaN output", math.NaN(), 8},
		{"infinite shift", 5, math.Inf(1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LineThroughput(tc.q, tc.hours)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestMachineCount(t *testing.T) {
	tests := []struct {
		name       string
		throughput float64
		rate       float64
		want       int
	}{
		{"reference dumpling machines", 0.3125, 0.2, 2},
		{"reference dough mixers", 0.1875, 0.15, 2},
		{"reference cutters", 0.125, 0.1, 2},
		{"throughput below rate", 0.05, 0.2, 1},
		{"throughput equal to rate", 0.2, 0.2, 1},
		{"exact multiple with float noise", 0.3, 0.1, 3},
		{"float noise above a multiple", 1.1, 0.1, 11},
		{"large quotient rounds up", 1e9 + 0.4, 1, 1000000001},
		{"large exact quotient", 1e12, 1, 1000000000000},
		{"just over a multiple", 0.30001, 0.1, 4},
		{"tiny throughput", 1e-12, 5, 1},
		{"zero throughput", 0, 0.2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MachineCount(tc.throughput, tc.rate)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestMachineCount_AlwaysRoundsUp verifies that the count never falls short of
// the required capacity.
func TestMachineCount_AlwaysRoundsUp(t *testing.T) {
	rate := 0.15
	for throughput := 0.01; throughput < 3; throughput += 0.037 {
		n, err := MachineCount(throughput, rate)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, float64(n)*rate, throughput-1e-6, "throughput=%v", throughput)
		assert.Less(t, float64(n-1)*rate, throughput, "throughput=%v", throughput)
	}
}

func TestMachineCount_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name       string
		throughput float64
		rate       float64
	}{
		{"zero rate", 0.3, 0},
		{"negative rate", 0.3, -0.1},
		{"negative throughput", -0.3, 0.1},
		{"NaN rate", 0.3, math.NaN()},
		{"count beyond float precision", 1e20 / 16, 1e-3},
		{"quotient overflows to infinity", math.MaxFloat64, 1e-3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MachineCount(tc.throughput, tc.rate)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDoughLineThroughput(t *testing.T) {
	got, err := DoughLineThroughput(0.3125, 60)
	require.NoError(t, err)
	assert.InDelta(t, 0.1875, got, 1e-12)

	_, err = DoughLineThroughput(0.3125, 101)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = DoughLineThroughput(0.3125, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFillingShare(t *testing.T) {
	got, err := FillingShare(30, 5, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 40.0, got)

	zero, err := FillingShare(0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, zero)

	full, err := FillingShare(100, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, full)
}

// TestFillingShare_OrderIndependent verifies the sum does not depend on which
// ingredient carries which value.
func TestFillingShare_OrderIndependent(t *testing.T) {
	a, b, c, d := 12.5, 7.25, 1.5, 0.75
	want, err := FillingShare(a, b, c, d)
	require.NoError(t, err)

	for _, perm := range [][4]float64{
		{b, a, c, d}, {d, c, b, a}, {c, d, a, b}, {a, c, d, b},
	} {
		got, err := FillingShare(perm[0], perm[1], perm[2], perm[3])
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestFillingShare_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name                     string
		meat, eggs, salt, spices float64
	}{
		{"sum over 100", 60, 30, 10, 5},
		{"ingredient over 100", 101, 0, 0, 0},
		{"negative ingredient", 30, -5, 2, 3},
		{"NaN ingredient", 30, 5, math.NaN(), 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FillingShare(tc.meat, tc.eggs, tc.salt, tc.spices)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestFillingLineThroughput(t *testing.T) {
	got, err := FillingLineThroughput(0.3125, 40)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, got, 1e-12)

	_, err = FillingLineThroughput(-0.3125, 40)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
