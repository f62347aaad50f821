package strategy

import "github.com/shopspring/decimal"

// round2 rounds a Cr amount to two decimal places, half away from zero.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
