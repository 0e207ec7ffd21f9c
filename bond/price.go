// Package bond prices fixed-coupon bullet bonds and derives yield, duration,
// and convexity from the price function. The yield solver is built on
// package roots rather than embedding its own iteration.
package bond

import (
	"errors"
	"fmt"
	"math"

	"github.com/meenmo/numlib/roots"
)

const (
	yieldTolerance = 1e-12

	// Bracket for the bisection fallback when Newton wanders. Wide enough
	// for any price a sane caller can quote.
	yieldFloor   = -0.99
	yieldCeiling = 10.0
)

// Price returns the present value of the bond's cashflows discounted at the
// per-annum yield y with per-period compounding:
//
//	P(y) = Σ CF_k / (1 + y/m)^(m·t_k)
//
// where m is the coupon frequency.
func (b Bond) Price(y float64) float64 {
	m := float64(b.Frequency)
	pv := 0.0
	for _, cf := range b.Cashflows() {
		pv += cf.Amount / math.Pow(1+y/m, m*cf.Time)
	}
	return pv
}

// PriceDeriv returns dP/dy, the analytic derivative of Price with respect to
// the yield. It is always negative for a bond with positive cashflows.
func (b Bond) PriceDeriv(y float64) float64 {
	m := float64(b.Frequency)
	d := 0.0
	for _, cf := range b.Cashflows() {
		t := m * cf.Time
		d -= t * cf.Amount / math.Pow(1+y/m, t+1) / m
	}
	return d
}

// Yield solves Price(y) = price for the yield to maturity. Newton-Raphson
// with the analytic derivative is tried first from the coupon rate as the
// initial guess; if it stalls or fails to converge, the solver falls back to
// bisection on a wide bracket.
func (b Bond) Yield(price float64) (roots.Result, error) {
	if err := b.validate(); err != nil {
		return roots.Result{}, fmt.Errorf("Yield: %w", err)
	}
	if price <= 0 {
		return roots.Result{}, fmt.Errorf("Yield: price must be positive, got %g", price)
	}

	objective := func(y float64) float64 { return b.Price(y) - price }

	res, err := roots.Newton(objective, b.PriceDeriv, b.CouponRate, yieldTolerance)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, roots.ErrStalled) && !errors.Is(err, roots.ErrNotConverged) {
		return roots.Result{}, fmt.Errorf("Yield: %w", err)
	}

	res, err = roots.Bisection(objective, yieldFloor, yieldCeiling, yieldTolerance)
	if err != nil {
		return roots.Result{}, fmt.Errorf("Yield: bisection fallback: %w", err)
	}
	return res, nil
}

// Duration returns the Macaulay duration in years at yield y: the
// PV-weighted mean time to cashflow.
func (b Bond) Duration(y float64) float64 {
	m := float64(b.Frequency)
	var pv, weighted float64
	for _, cf := range b.Cashflows() {
		d := cf.Amount / math.Pow(1+y/m, m*cf.Time)
		pv += d
		weighted += cf.Time * d
	}
	return weighted / pv
}

// ModifiedDuration returns the Macaulay duration discounted by one period's
// yield, the proportional price sensitivity −(dP/dy)/P.
func (b Bond) ModifiedDuration(y float64) float64 {
	return b.Duration(y) / (1 + y/float64(b.Frequency))
}

// Convexity returns the second-order price sensitivity (d²P/dy²)/P at
// yield y.
func (b Bond) Convexity(y float64) float64 {
	m := float64(b.Frequency)
	var pv, weighted float64
	for _, cf := range b.Cashflows() {
		t := m * cf.Time
		d := cf.Amount / math.Pow(1+y/m, t)
		pv += d
		weighted += t * (t + 1) * d / ((1 + y/m) * (1 + y/m))
	}
	return weighted / pv / (m * m)
}
