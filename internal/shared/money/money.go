package money

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits kept for monetary values.
const Places = 2

// exactDigits is enough fractional digits to tell a float64 in the cents range from a rounding half.
const exactDigits = 40

// Round2 rounds the exact binary value of v to two decimal places, half away from zero.
// 1.005 is stored as 1.00499999... and so rounds to 1.00.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	exact := new(big.Float).SetFloat64(v).Text('f', exactDigits)
	return decimal.RequireFromString(exact).Round(Places).InexactFloat64()
}
