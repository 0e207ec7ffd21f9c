package quad

import (
	"fmt"
	"math"
)

const (
	// refineStart is the partition count of the first estimate.
	refineStart = 4

	// maxRefinements bounds the doubling loop. 20 doublings from n=4 reach
	// n ≈ 4·10⁶, past the point where float64 rounding dominates the O(h²)
	// rules; an integrand that has not stabilized by then is not going to.
	maxRefinements = 20
)

// RefineResult is the outcome of an adaptive refinement run.
type RefineResult struct {
	// Estimate is the last integral estimate computed.
	Estimate float64
	// Partitions is the sub-interval count that produced Estimate.
	Partitions int
	// Refinements is the number of doublings performed.
	Refinements int
}

// Refine drives rule to convergence by doubling the partition count, starting
// at n=4, until two successive estimates agree within tol. It returns the
// final estimate together with the partition count that produced it.
//
// The stopping criterion compares estimates, not true error, so agreement
// within tol does not guarantee the estimate is within tol of the true
// integral; for smooth integrands it is close. If the cap on doublings is
// reached first, the last estimate is returned along with ErrNotConverged so
// a pathological integrand cannot hang the caller.
func Refine(rule Rule, f Func, a, b, tol float64) (RefineResult, error) {
	n := refineStart
	prev, err := rule(f, a, b, n)
	if err != nil {
		return RefineResult{}, fmt.Errorf("Refine: %w", err)
	}

	for i := 1; i <= maxRefinements; i++ {
		n *= 2
		est, err := rule(f, a, b, n)
		if err != nil {
			return RefineResult{}, fmt.Errorf("Refine: %w", err)
		}
		if math.Abs(est-prev) <= tol {
			return RefineResult{Estimate: est, Partitions: n, Refinements: i}, nil
		}
		prev = est
	}

	return RefineResult{Estimate: prev, Partitions: n, Refinements: maxRefinements},
		fmt.Errorf("Refine: estimates still moving after %d doublings: %w", maxRefinements, ErrNotConverged)
}
