// Package roots provides scalar root-finding routines: bisection, Newton-Raphson,
// and the secant method.
//
// All three share the contract "find x such that f(x) ≈ 0" for a caller-supplied
// function, but differ in what they require (a sign-changing bracket, an analytic
// derivative, or two starting points) and in how fast they converge. The meaning
// of tol differs per method: for Bisection it bounds the half-width of the final
// bracket, for Newton and Secant it bounds |f(x)| at the returned point.
//
// f is assumed continuous (and, for Newton, differentiable) on the search
// domain; none of the routines check this.
package roots

import (
	"errors"
	"fmt"
	"math"
)

// Func is a caller-supplied scalar function. It must be side-effect-free:
// the solvers may evaluate it any number of times and in any order.
type Func func(float64) float64

// Result is the outcome of a successful root search.
type Result struct {
	// Root is the located zero of f, to within the method's tolerance.
	Root float64
	// Iterations is the number of solver steps taken. Zero means an exact
	// hit on a starting point or bracket endpoint.
	Iterations int
}

var (
	// ErrNoBracket is returned by Bisection when f(a) and f(b) share a sign,
	// so the interval is not guaranteed to contain a root.
	ErrNoBracket = errors.New("no sign change over bracket")

	// ErrStalled is returned when an iteration can make no further progress:
	// a vanishing derivative (Newton), equal consecutive function values
	// (Secant), or a bracket update that selects neither endpoint (Bisection
	// on a malformed function, e.g. one producing NaN).
	ErrStalled = errors.New("iteration stalled")

	// ErrNotConverged is returned when the iteration cap is reached before
	// the tolerance is met.
	ErrNotConverged = errors.New("did not converge")
)

const (
	// DefaultMaxIter bounds Newton and Secant iterations. Both methods are
	// superlinear near a simple root, so a well-posed problem converges in
	// far fewer steps; hitting the cap signals divergence or cycling.
	DefaultMaxIter = 100

	// bisectionMaxIter bounds bisection. The bracket halves every step, so
	// ~2000 halvings exceed the dynamic range of float64 by a wide margin;
	// the cap only matters for the degenerate-update failure path.
	bisectionMaxIter = 2000

	// derivFloor is the smallest |f'(x)| Newton will divide by.
	derivFloor = 1e-15
)

// Bisection locates a root of f inside [a, b] by repeated interval halving.
//
// f(a) and f(b) must differ in sign; otherwise ErrNoBracket is returned. The
// loop runs until half the bracket width is at most tol, so the returned
// midpoint is within tol of a true sign change and the final bracket width is
// at most 2·tol. Convergence is linear (one bit per step) and the iteration
// count is deterministic for a given (a, b, tol).
func Bisection(f Func, a, b, tol float64) (Result, error) {
	fa := f(a)
	if fa == 0 {
		return Result{Root: a}, nil
	}
	fb := f(b)
	if fb == 0 {
		return Result{Root: b}, nil
	}
	if fa*fb > 0 {
		return Result{}, fmt.Errorf("Bisection: f(%g) and f(%g) share a sign: %w", a, b, ErrNoBracket)
	}

	mid := (a + b) / 2
	iter := 0
	for math.Abs(b-a)/2 > tol {
		if iter >= bisectionMaxIter {
			return Result{Root: mid, Iterations: iter}, fmt.Errorf("Bisection: %w after %d iterations", ErrNotConverged, iter)
		}
		iter++

		fm := f(mid)
		if fm == 0 {
			return Result{Root: mid, Iterations: iter}, nil
		}

		// Keep the endpoint whose sign differs from f(mid). The b-side test
		// runs first; with a valid bracket exactly one branch fires. If
		// neither does, f broke the bracket invariant (NaN or a sign pattern
		// outside the precondition) and looping would never terminate.
		switch {
		case fb*fm < 0:
			a, fa = mid, fm
		case fa*fm < 0:
			b, fb = mid, fm
		default:
			return Result{}, fmt.Errorf("Bisection: bracket update at x=%g selected neither endpoint: %w", mid, ErrStalled)
		}
		mid = (a + b) / 2
	}

	return Result{Root: mid, Iterations: iter}, nil
}

// Newton iterates x ← x − f(x)/f'(x) from x0 until |f(x)| ≤ tol.
//
// fPrime must be the analytic derivative of f. Convergence is quadratic near
// a simple root but is not guaranteed globally: far from a root, or where the
// derivative is small, the iteration may diverge or cycle, in which case
// ErrNotConverged (cap reached) or ErrStalled (vanishing derivative) is
// returned. This is a documented limitation of the method, not a defect.
func Newton(f, fPrime Func, x0, tol float64) (Result, error) {
	x := x0
	fx := f(x)
	if fx == 0 {
		return Result{Root: x}, nil
	}

	for iter := 1; iter <= DefaultMaxIter; iter++ {
		d := fPrime(x)
		if math.Abs(d) < derivFloor {
			return Result{}, fmt.Errorf("Newton: derivative %g at x=%g below floor: %w", d, x, ErrStalled)
		}

		x -= fx / d
		fx = f(x)
		if math.Abs(fx) <= tol {
			return Result{Root: x, Iterations: iter}, nil
		}
	}

	return Result{}, fmt.Errorf("Newton: %w after %d iterations", ErrNotConverged, DefaultMaxIter)
}

// Secant iterates Newton's update with the derivative replaced by the
// finite-difference slope between the two most recent iterates, starting
// from x0 and x1. It needs no derivative and converges with order ≈ 1.618
// near a simple root.
//
// If two consecutive iterates produce equal function values the slope is
// zero and ErrStalled is returned rather than letting the division produce
// Inf or NaN.
func Secant(f Func, x0, x1, tol float64) (Result, error) {
	xPrev, x := x0, x1
	fPrev, fx := f(xPrev), f(x)
	if fPrev == 0 {
		return Result{Root: xPrev}, nil
	}
	if math.Abs(fx) <= tol {
		return Result{Root: x}, nil
	}

	for iter := 1; iter <= DefaultMaxIter; iter++ {
		if fx == fPrev {
			return Result{}, fmt.Errorf("Secant: f(%g) == f(%g) == %g: %w", xPrev, x, fx, ErrStalled)
		}

		next := x - fx*(x-xPrev)/(fx-fPrev)
		xPrev, fPrev = x, fx
		x = next
		fx = f(x)
		if math.Abs(fx) <= tol {
			return Result{Root: x, Iterations: iter}, nil
		}
	}

	return Result{}, fmt.Errorf("Secant: %w after %d iterations", ErrNotConverged, DefaultMaxIter)
}
