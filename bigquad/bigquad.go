// Package bigquad is an arbitrary-precision companion to package quad: a
// composite Simpson integrator on *big.Float, used to produce reference
// values that are independent of the float64 evaluation path.
package bigquad

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"

	"github.com/meenmo/numlib/quad"
)

// Func is an integrand over *big.Float. Implementations must not mutate
// their argument.
type Func func(*big.Float) *big.Float

// NewFloat returns x as a *big.Float with prec bits of precision.
func NewFloat(x float64, prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetFloat64(x)
}

// Gaussian returns the integrand exp(-x²) at prec bits.
func Gaussian(prec uint) Func {
	return func(x *big.Float) *big.Float {
		e := new(big.Float).SetPrec(prec).Mul(x, x)
		e.Neg(e)
		return bigfloat.Exp(e)
	}
}

// Simpson approximates the integral of f over [a, b] with the composite
// Simpson rule on n sub-intervals, carrying prec bits through every
// intermediate term. The weighting mirrors quad.Simpson: 1/6 at the
// endpoints, 1/3 at interior nodes, 2/3 at sub-interval centers, scaled
// by the sub-interval width.
func Simpson(f Func, a, b *big.Float, n int, prec uint) (*big.Float, error) {
	if n <= 0 {
		return nil, fmt.Errorf("bigquad.Simpson: n=%d: %w", n, quad.ErrInvalidPartition)
	}

	h := new(big.Float).SetPrec(prec).Sub(b, a)
	h.Quo(h, NewFloat(float64(n), prec))

	sixth := NewFloat(6, prec)
	third := NewFloat(3, prec)
	twoThirds := new(big.Float).SetPrec(prec).Quo(NewFloat(2, prec), third)

	sum := new(big.Float).SetPrec(prec).Add(f(a), f(b))
	sum.Quo(sum, sixth)

	x := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec)
	for i := 1; i < n; i++ {
		x.SetFloat64(float64(i))
		x.Mul(x, h)
		x.Add(x, a)
		term.Quo(f(x), third)
		sum.Add(sum, term)
	}
	for i := 0; i < n; i++ {
		x.SetFloat64(float64(i) + 0.5)
		x.Mul(x, h)
		x.Add(x, a)
		term.Mul(f(x), twoThirds)
		sum.Add(sum, term)
	}

	return sum.Mul(sum, h), nil
}
