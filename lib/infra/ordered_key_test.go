package infra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedCompare(t *testing.T) {
	type testcase struct {
		name     string
		i, j     float64
		expected int
	}
	testcases := []testcase{
		{name: "less", i: 1.0, j: 1.1, expected: -1},
		{name: "equal", i: 2.5, j: 2.5, expected: 0},
		{name: "greater", i: -1.0, j: -3.0, expected: 1},
		{name: "nan first", i: math.NaN(), j: math.Inf(-1), expected: -1},
		{name: "nan equal", i: math.NaN(), j: math.NaN(), expected: 0},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.expected, OrderedCompare(tc.i, tc.j))
		})
	}

	require.Negative(t, OrderedCompare("abc", "abd"))
	require.Positive(t, OrderedCompare("b", "abc"))
	require.Zero(t, OrderedCompare("", ""))
}

func TestNumericCompare_NoOverflow(t *testing.T) {
	// The subtraction of these two would wrap around.
	require.Negative(t, NumericCompare[int64](math.MinInt64, math.MaxInt64))
	require.Positive(t, NumericCompare[int64](math.MaxInt64, math.MinInt64))
	require.Positive(t, NumericCompare[uint8](200, 1))
	require.Negative(t, NumericCompare[uint64](0, math.MaxUint64))
	require.Zero(t, NumericCompare[int8](-128, -128))
}

func TestReverseComparator(t *testing.T) {
	require.Nil(t, ReverseComparator[int](nil))

	desc := ReverseComparator[int](OrderedCompare[int])
	require.Positive(t, desc(1, 2))
	require.Negative(t, desc(2, 1))
	require.Zero(t, desc(3, 3))
}
