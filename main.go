package main

import (
	"fmt"
	"math"

	"github.com/meenmo/numlib/bond"
	"github.com/meenmo/numlib/quad"
	"github.com/meenmo/numlib/roots"
)

func main() {
	fmt.Println("====================================================================")
	fmt.Println("numlib demo: root finding, quadrature, bond analytics")
	fmt.Println("====================================================================")
	fmt.Println()

	// Root of x² − 2 three ways.
	f := func(x float64) float64 { return x*x - 2 }
	fPrime := func(x float64) float64 { return 2 * x }

	bis, _ := roots.Bisection(f, 0, 2, 1e-10)
	newt, _ := roots.Newton(f, fPrime, 1.5, 1e-12)
	sec, _ := roots.Secant(f, 1, 1.5, 1e-12)

	fmt.Println("root of x^2 - 2:")
	fmt.Printf("  bisection: %.10f  (%d iterations)\n", bis.Root, bis.Iterations)
	fmt.Printf("  newton:    %.10f  (%d iterations)\n", newt.Root, newt.Iterations)
	fmt.Printf("  secant:    %.10f  (%d iterations)\n", sec.Root, sec.Iterations)
	fmt.Println()

	// ∫₀² exp(−x²) dx, adaptively refined Simpson.
	gauss := func(x float64) float64 { return math.Exp(-x * x) }
	res, _ := quad.Refine(quad.Simpson, gauss, 0, 2, 1e-10)
	fmt.Printf("integral of exp(-x^2) over [0,2]: %.8f  (n=%d after %d doublings)\n",
		res.Estimate, res.Partitions, res.Refinements)
	fmt.Println()

	// Yield of a 10y 5% annual bond quoted at 95.
	b := bond.Bond{Face: 100, CouponRate: 0.05, Frequency: 1, Years: 10}
	y, err := b.Yield(95)
	if err != nil {
		fmt.Println("yield:", err)
		return
	}
	fmt.Printf("10y 5%% bullet at 95: ytm=%.6f  duration=%.4fy  convexity=%.4f\n",
		y.Root, b.Duration(y.Root), b.Convexity(y.Root))
}
