// Package option prices European options under Black-Scholes and solves for
// implied volatility. It also carries the standard normal CDF in three
// renditions (erf-based, logistic fit, quadrature of the density), which the
// pricer and its callers share.
package option

import "math"

// Params are the Black-Scholes inputs. Rate and Vol are decimals per annum,
// Years is the time to expiry in years.
type Params struct {
	Spot   float64
	Strike float64
	Rate   float64
	Vol    float64
	Years  float64
}

// d1 and d2 of the Black-Scholes formula. Callers must have checked that
// Years and Vol are positive.
func (p Params) d1d2() (float64, float64) {
	sqrtT := math.Sqrt(p.Years)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate+0.5*p.Vol*p.Vol)*p.Years) / (p.Vol * sqrtT)
	return d1, d1 - p.Vol*sqrtT
}

// Call returns the Black-Scholes price of a European call. With zero time to
// expiry or zero volatility the price degenerates to (discounted) intrinsic
// value.
func Call(p Params) float64 {
	if p.Years <= 0 {
		return math.Max(0, p.Spot-p.Strike)
	}
	if p.Vol <= 0 {
		return math.Max(0, p.Spot-p.Strike*math.Exp(-p.Rate*p.Years))
	}
	d1, d2 := p.d1d2()
	return p.Spot*NormCDF(d1) - p.Strike*math.Exp(-p.Rate*p.Years)*NormCDF(d2)
}

// Put returns the Black-Scholes price of a European put.
func Put(p Params) float64 {
	if p.Years <= 0 {
		return math.Max(0, p.Strike-p.Spot)
	}
	if p.Vol <= 0 {
		return math.Max(0, p.Strike*math.Exp(-p.Rate*p.Years)-p.Spot)
	}
	d1, d2 := p.d1d2()
	return p.Strike*math.Exp(-p.Rate*p.Years)*NormCDF(-d2) - p.Spot*NormCDF(-d1)
}

// Delta returns the call delta N(d1). The put delta is Delta(p) − 1.
func Delta(p Params) float64 {
	if p.Years <= 0 || p.Vol <= 0 {
		switch {
		case p.Spot > p.Strike:
			return 1
		case p.Spot < p.Strike:
			return 0
		default:
			return 0.5
		}
	}
	d1, _ := p.d1d2()
	return NormCDF(d1)
}

// Vega returns dPrice/dVol, identical for calls and puts. It is the
// derivative handed to the implied-volatility Newton solve.
func Vega(p Params) float64 {
	if p.Years <= 0 || p.Vol <= 0 {
		return 0
	}
	d1, _ := p.d1d2()
	return p.Spot * NormPDF(d1) * math.Sqrt(p.Years)
}
