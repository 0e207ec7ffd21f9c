package quad

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// orderLadder is the number of successive doublings sampled by EstimateOrder.
const orderLadder = 6

// EstimateOrder measures the empirical convergence order of rule on f over
// [a, b] against a known exact value: it evaluates the rule on a ladder of
// doubled partition counts starting at n=4 and fits log2|error| against
// log2 n by least squares. The returned value is the negated slope, so a
// second-order rule reports ≈ 2 and Simpson ≈ 4.
//
// Rungs whose error underflows to zero (the rule is exact there) are skipped;
// if fewer than two rungs remain the order is indeterminate and an error is
// returned.
func EstimateOrder(rule Rule, f Func, a, b, exact float64) (float64, error) {
	series := make([]stats.Coordinate, 0, orderLadder)

	n := refineStart
	for i := 0; i < orderLadder; i++ {
		est, err := rule(f, a, b, n)
		if err != nil {
			return 0, fmt.Errorf("EstimateOrder: %w", err)
		}
		if e := math.Abs(est - exact); e > 0 {
			series = append(series, stats.Coordinate{
				X: math.Log2(float64(n)),
				Y: math.Log2(e),
			})
		}
		n *= 2
	}

	if len(series) < 2 {
		return 0, fmt.Errorf("EstimateOrder: rule is exact on every sampled n, order indeterminate")
	}

	fit, err := stats.LinearRegression(series)
	if err != nil {
		return 0, fmt.Errorf("EstimateOrder: regression: %w", err)
	}

	// LinearRegression returns fitted points; recover the slope from the
	// first and last of them.
	first, last := fit[0], fit[len(fit)-1]
	slope := (last.Y - first.Y) / (last.X - first.X)
	return -slope, nil
}
