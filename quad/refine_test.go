package quad_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/numlib/quad"
)

func TestRefine_Gaussian(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return math.Exp(-x * x) }
	want := math.Sqrt(math.Pi) / 2 * math.Erf(2)

	for name, rule := range rules {
		res, err := quad.Refine(rule, f, 0, 2, 1e-8)
		require.NoError(t, err, name)
		require.InDelta(t, want, res.Estimate, 1e-6, name)
		require.Equal(t, 4*int(math.Pow(2, float64(res.Refinements))), res.Partitions, name)
	}
}

func TestRefine_SimpsonNeedsFewerDoublings(t *testing.T) {
	t.Parallel()

	// O(h⁴) vs O(h²): Simpson stabilizes to the same tolerance with fewer
	// doublings than the trapezoid rule.
	f := func(x float64) float64 { return math.Exp(-x * x) }

	simpson, err := quad.Refine(quad.Simpson, f, 0, 2, 1e-10)
	require.NoError(t, err)

	trapezoid, err := quad.Refine(quad.Trapezoid, f, 0, 2, 1e-10)
	require.NoError(t, err)

	require.Less(t, simpson.Refinements, trapezoid.Refinements)
}

func TestRefine_InvalidRuleErrorPropagates(t *testing.T) {
	t.Parallel()

	broken := func(f quad.Func, a, b float64, n int) (float64, error) {
		return quad.Simpson(f, a, b, -1)
	}

	_, err := quad.Refine(broken, func(x float64) float64 { return x }, 0, 1, 1e-8)
	require.ErrorIs(t, err, quad.ErrInvalidPartition)
}

func TestRefine_PathologicalIntegrandTerminates(t *testing.T) {
	t.Parallel()

	// A stateful integrand whose estimates never stabilize: each evaluation
	// returns the running call count, so every refinement sees a larger
	// integrand than the last and successive estimates keep drifting apart.
	// The guard must convert this from an infinite loop into ErrNotConverged.
	calls := 0
	f := func(x float64) float64 {
		calls++
		return float64(calls)
	}

	res, err := quad.Refine(quad.Midpoint, f, 0, 1, 1e-12)
	require.ErrorIs(t, err, quad.ErrNotConverged)
	require.Greater(t, res.Refinements, 0)
}