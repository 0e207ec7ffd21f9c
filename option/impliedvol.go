package option

import (
	"errors"
	"fmt"
	"math"

	"github.com/meenmo/numlib/roots"
)

const (
	ivTolerance    = 1e-8
	ivInitialGuess = 0.5
	ivFloor        = 1e-4
	ivCeiling      = 10.0
)

// ImpliedVol solves Call(p with Vol=σ) = marketPrice for σ by Newton-Raphson
// with vega as the analytic derivative, starting from 50% vol. p.Vol is
// ignored. If Newton stalls (vega collapses deep in or out of the money) a
// bisection fallback over [ivFloor, ivCeiling] is attempted before giving up.
func ImpliedVol(p Params, marketPrice float64) (float64, error) {
	if p.Years <= 0 {
		return 0, fmt.Errorf("ImpliedVol: option is expired (Years=%g)", p.Years)
	}
	intrinsic := math.Max(0, p.Spot-p.Strike*math.Exp(-p.Rate*p.Years))
	if marketPrice < intrinsic {
		return 0, fmt.Errorf("ImpliedVol: market price %g below intrinsic value %g", marketPrice, intrinsic)
	}

	priceAt := func(sigma float64) float64 {
		q := p
		q.Vol = clamp(sigma, ivFloor, ivCeiling)
		return Call(q) - marketPrice
	}
	vegaAt := func(sigma float64) float64 {
		q := p
		q.Vol = clamp(sigma, ivFloor, ivCeiling)
		return Vega(q)
	}

	res, err := roots.Newton(priceAt, vegaAt, ivInitialGuess, ivTolerance)
	if err == nil {
		return clamp(res.Root, ivFloor, ivCeiling), nil
	}
	if !errors.Is(err, roots.ErrStalled) && !errors.Is(err, roots.ErrNotConverged) {
		return 0, fmt.Errorf("ImpliedVol: %w", err)
	}

	res, bErr := roots.Bisection(priceAt, ivFloor, ivCeiling, ivTolerance)
	if bErr != nil {
		return 0, fmt.Errorf("ImpliedVol: %w", err)
	}
	return res.Root, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
