package roots_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/numlib/roots"
)

func TestBisection_Quadratic(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x - 2 }

	res, err := roots.Bisection(f, 0, 2, 1e-10)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, res.Root, 1e-10)

	// The bracket halves every step, so the count is fixed by (a, b, tol).
	again, err := roots.Bisection(f, 0, 2, 1e-10)
	require.NoError(t, err)
	require.Equal(t, res.Iterations, again.Iterations)
}

func TestBisection_ExactEndpointHit(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x * (x - 3) }

	res, err := roots.Bisection(f, 0, 2, 1e-10)
	require.NoError(t, err)
	require.Equal(t, roots.Result{Root: 0, Iterations: 0}, res)

	res, err = roots.Bisection(f, -2, 0, 1e-10)
	require.NoError(t, err)
	require.Equal(t, roots.Result{Root: 0, Iterations: 0}, res)
}

func TestBisection_NoBracket(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x + 1 }

	_, err := roots.Bisection(f, -1, 1, 1e-10)
	require.ErrorIs(t, err, roots.ErrNoBracket)
}

func TestBisection_NaNIntegrandStalls(t *testing.T) {
	t.Parallel()

	// Sign change at the endpoints, NaN everywhere between: no bracket
	// update can fire, which must surface as a stall rather than a hang.
	f := func(x float64) float64 {
		switch x {
		case -1:
			return -1
		case 1:
			return 1
		}
		return math.NaN()
	}

	_, err := roots.Bisection(f, -1, 1, 1e-10)
	require.ErrorIs(t, err, roots.ErrStalled)
}

func TestBisection_QuarticWithLogisticTerm(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 {
		return math.Pow(x, 4) - 5*x*x + 4 - 1/(1+math.Exp(x*x*x))
	}

	res, err := roots.Bisection(f, -2, 3, 1e-9)
	require.NoError(t, err)
	require.InDelta(t, -0.889642, res.Root, 1e-6)
	// Width 5 bracket to half-width 1e-9 is exactly 32 halvings.
	require.Equal(t, 32, res.Iterations)
}

func TestBisection_BracketWidthBound(t *testing.T) {
	t.Parallel()

	f := math.Cos

	for _, tol := range []float64{1e-3, 1e-6, 1e-9} {
		res, err := roots.Bisection(f, 1, 2, tol)
		require.NoError(t, err)
		require.InDelta(t, math.Pi/2, res.Root, tol)
		// error halves each iteration: initial half-width / 2^iter ≤ tol
		require.LessOrEqual(t, 0.5/math.Pow(2, float64(res.Iterations)), tol)
	}
}

func TestNewton_SqrtTwo(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x - 2 }
	fPrime := func(x float64) float64 { return 2 * x }

	res, err := roots.Newton(f, fPrime, 1.5, 1e-12)
	require.NoError(t, err)
	require.InDelta(t, 1.41421356, res.Root, 1e-8)
	// Quadratic convergence from inside the basin: a handful of steps.
	require.LessOrEqual(t, res.Iterations, 6)
}

func TestNewton_ExactStart(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x - 4 }
	fPrime := func(x float64) float64 { return 2 * x }

	res, err := roots.Newton(f, fPrime, 2, 1e-12)
	require.NoError(t, err)
	require.Equal(t, roots.Result{Root: 2, Iterations: 0}, res)
}

func TestNewton_FlatDerivativeStalls(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x + 1 }
	fPrime := func(x float64) float64 { return 0 }

	_, err := roots.Newton(f, fPrime, 3, 1e-12)
	require.ErrorIs(t, err, roots.ErrStalled)
}

func TestNewton_CycleHitsCap(t *testing.T) {
	t.Parallel()

	// x³ − 2x + 2 from x0 = 0 is the classic 0 ↔ 1 Newton cycle.
	f := func(x float64) float64 { return x*x*x - 2*x + 2 }
	fPrime := func(x float64) float64 { return 3*x*x - 2 }

	_, err := roots.Newton(f, fPrime, 0, 1e-12)
	require.ErrorIs(t, err, roots.ErrNotConverged)
}

func TestSecant_SqrtTwo(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x - 2 }

	res, err := roots.Secant(f, 1, 1.5, 1e-12)
	require.NoError(t, err)
	require.InDelta(t, 1.41421356, res.Root, 1e-8)
}

func TestSecant_MatchesNewtonRoot(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return math.Exp(x) - 3 }
	fPrime := math.Exp

	newton, err := roots.Newton(f, fPrime, 1, 1e-12)
	require.NoError(t, err)

	secant, err := roots.Secant(f, 0.5, 1.5, 1e-12)
	require.NoError(t, err)

	require.InDelta(t, newton.Root, secant.Root, 1e-10)
	require.InDelta(t, math.Log(3), secant.Root, 1e-10)
}

func TestSecant_EqualValuesStall(t *testing.T) {
	t.Parallel()

	// Constant function: f(x0) == f(x1) on the very first step.
	f := func(x float64) float64 { return 1.0 }

	_, err := roots.Secant(f, 0, 1, 1e-12)
	require.ErrorIs(t, err, roots.ErrStalled)
}
