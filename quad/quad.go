// Package quad provides composite quadrature rules (midpoint, trapezoid,
// Simpson) over n equal-width sub-intervals, plus an adaptive driver that
// doubles n until successive estimates stabilize.
package quad

import (
	"errors"
	"fmt"
)

// Func is a caller-supplied integrand. It must be side-effect-free: rules
// may evaluate it at any number of points.
type Func func(float64) float64

// Rule is the common shape of the three integrators, so callers (and Refine)
// can treat them interchangeably.
type Rule func(f Func, a, b float64, n int) (float64, error)

var (
	// ErrInvalidPartition is returned when the sub-interval count is not
	// positive.
	ErrInvalidPartition = errors.New("partition count must be positive")

	// ErrNotConverged is returned by Refine when successive estimates fail
	// to stabilize within the refinement cap.
	ErrNotConverged = errors.New("did not converge")
)

// Midpoint approximates the integral of f over [a, b] by sampling each of
// the n sub-intervals at its center. Exact for polynomials of degree ≤ 1;
// error is O(h²) for twice-differentiable f.
func Midpoint(f Func, a, b float64, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("Midpoint: n=%d: %w", n, ErrInvalidPartition)
	}

	h := (b - a) / float64(n)
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += f(a + (float64(i)+0.5)*h)
	}
	return h * sum, nil
}

// Trapezoid approximates the integral of f over [a, b] by the composite
// trapezoidal rule: endpoints at half weight, interior nodes at full weight.
// Exact for polynomials of degree ≤ 1; error is O(h²).
func Trapezoid(f Func, a, b float64, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("Trapezoid: n=%d: %w", n, ErrInvalidPartition)
	}

	h := (b - a) / float64(n)
	sum := (f(a) + f(b)) / 2
	for i := 1; i < n; i++ {
		sum += f(a + float64(i)*h)
	}
	return h * sum, nil
}

// Simpson approximates the integral of f over [a, b] by the composite
// Simpson rule, expressed as a weighted combination of sub-interval
// endpoints and centers: weight 1/6 at a and b, 1/3 at each interior node,
// 2/3 at each center (the 1-4-1 weighting per panel). Exact for polynomials
// of degree ≤ 3 for any n ≥ 1; error is O(h⁴) for four-times-differentiable
// f, which is why it stabilizes in far fewer refinement doublings than the
// O(h²) rules.
func Simpson(f Func, a, b float64, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("Simpson: n=%d: %w", n, ErrInvalidPartition)
	}

	h := (b - a) / float64(n)
	sum := (f(a) + f(b)) / 6
	for i := 1; i < n; i++ {
		sum += f(a+float64(i)*h) / 3
	}
	for i := 0; i < n; i++ {
		sum += f(a+(float64(i)+0.5)*h) * 2 / 3
	}
	return h * sum, nil
}
