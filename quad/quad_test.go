package quad_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/numlib/quad"
)

var rules = map[string]quad.Rule{
	"midpoint":  quad.Midpoint,
	"trapezoid": quad.Trapezoid,
	"simpson":   quad.Simpson,
}

func TestRules_InvalidPartitionCount(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x }
	for name, rule := range rules {
		for _, n := range []int{0, -1, -512} {
			_, err := rule(f, 0, 1, n)
			require.ErrorIs(t, err, quad.ErrInvalidPartition, "%s n=%d", name, n)
		}
	}
}

func TestRules_ExactOnLinear(t *testing.T) {
	t.Parallel()

	// ∫₁⁵ (3x − 4) dx = 20
	f := func(x float64) float64 { return 3*x - 4 }
	const want = 20.0

	for name, rule := range rules {
		for _, n := range []int{1, 2, 7, 100} {
			got, err := rule(f, 1, 5, n)
			require.NoError(t, err)
			require.InDelta(t, want, got, 1e-12, "%s n=%d", name, n)
		}
	}
}

func TestSimpson_ExactOnCubic(t *testing.T) {
	t.Parallel()

	// ∫₀² (x³ − 2x² + x − 1) dx = 4 − 16/3 + 2 − 2 = −4/3
	f := func(x float64) float64 { return x*x*x - 2*x*x + x - 1 }
	want := -4.0 / 3.0

	for _, n := range []int{1, 2, 3, 50} {
		got, err := quad.Simpson(f, 0, 2, n)
		require.NoError(t, err)
		require.InDelta(t, want, got, 1e-12, "n=%d", n)
	}
}

func TestRules_GaussianBenchmark(t *testing.T) {
	t.Parallel()

	// ∫₀² exp(−x²) dx = (√π/2)·erf(2)
	f := func(x float64) float64 { return math.Exp(-x * x) }
	want := math.Sqrt(math.Pi) / 2 * math.Erf(2)
	require.InDelta(t, 0.882081, want, 5e-7)

	got := map[string]float64{}
	for name, rule := range rules {
		est, err := rule(f, 0, 2, 512)
		require.NoError(t, err)
		got[name] = est
	}

	expected := map[string]float64{
		"midpoint":  want,
		"trapezoid": want,
		"simpson":   want,
	}
	if diff := cmp.Diff(expected, got, cmpopts.EquateApprox(0, 5e-7)); diff != "" {
		t.Fatalf("estimates at n=512 (-want +got):\n%s", diff)
	}
}

func TestRules_ErrorShrinksUnderDoubling(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return math.Sin(x) }
	want := 1 - math.Cos(2) // ∫₀² sin

	for name, rule := range rules {
		prevErr := math.Inf(1)
		for n := 4; n <= 256; n *= 2 {
			est, err := rule(f, 0, 2, n)
			require.NoError(t, err)
			e := math.Abs(est - want)
			require.LessOrEqual(t, e, prevErr, "%s n=%d", name, n)
			prevErr = e
		}
	}
}

func TestEstimateOrder(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return math.Exp(-x * x) }
	want := math.Sqrt(math.Pi) / 2 * math.Erf(2)

	cases := []struct {
		name  string
		rule  quad.Rule
		order float64
	}{
		{"midpoint", quad.Midpoint, 2},
		{"trapezoid", quad.Trapezoid, 2},
		{"simpson", quad.Simpson, 4},
	}
	for _, tc := range cases {
		got, err := quad.EstimateOrder(tc.rule, f, 0, 2, want)
		require.NoError(t, err)
		require.InDelta(t, tc.order, got, 0.3, tc.name)
	}
}

func TestEstimateOrder_ExactRuleIndeterminate(t *testing.T) {
	t.Parallel()

	// Midpoint on the identity over [0, 2] is exact in floating point for
	// every power-of-two n: h and all sample points are dyadic, so every
	// rung of the ladder has zero error and no order can be fit.
	f := func(x float64) float64 { return x }

	_, err := quad.EstimateOrder(quad.Midpoint, f, 0, 2, 2)
	require.Error(t, err)
}
