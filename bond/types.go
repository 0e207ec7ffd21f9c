package bond

import "fmt"

// Bond describes a fixed-coupon bullet bond in level-period terms: coupons of
// CouponRate·Face/Frequency paid Frequency times per year until Years, plus
// redemption of Face at maturity. Rates are decimals (0.05 = 5%).
type Bond struct {
	Face       float64
	CouponRate float64
	Frequency  int
	Years      float64
}

// Cashflow is one dated payment of the bond, with Time in years from
// settlement.
type Cashflow struct {
	Time   float64
	Amount float64
}

func (b Bond) validate() error {
	if b.Face <= 0 {
		return fmt.Errorf("bond: Face must be positive, got %g", b.Face)
	}
	if b.Frequency <= 0 {
		return fmt.Errorf("bond: Frequency must be positive, got %d", b.Frequency)
	}
	if b.Years <= 0 {
		return fmt.Errorf("bond: Years must be positive, got %g", b.Years)
	}
	return nil
}

// Cashflows expands the bond into its dated payment schedule. The final
// cashflow includes the redemption amount.
func (b Bond) Cashflows() []Cashflow {
	n := int(b.Years*float64(b.Frequency) + 0.5)
	coupon := b.CouponRate * b.Face / float64(b.Frequency)

	out := make([]Cashflow, 0, n)
	for i := 1; i <= n; i++ {
		cf := Cashflow{
			Time:   float64(i) / float64(b.Frequency),
			Amount: coupon,
		}
		if i == n {
			cf.Amount += b.Face
		}
		out = append(out, cf)
	}
	return out
}
