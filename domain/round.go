package domain

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// DisplayPlaces number of decimal places amounts are shown with
const DisplayPlaces = 2

// Round rounds half away from zero to the given number of decimal places.
// Rounding goes through a decimal so 1.005 becomes 1.01 rather than 1.00.
// NaN and infinities are returned unchanged.
func (a Amount) Round(places int32) Amount {
	if !a.finite() {
		return a
	}
	return Amount(decimal.NewFromFloat(float64(a)).Round(places).InexactFloat64())
}

// String formats the amount with two decimal places.
func (a Amount) String() string {
	if !a.finite() {
		return strconv.FormatFloat(float64(a), 'f', -1, 64)
	}
	return decimal.NewFromFloat(float64(a)).StringFixed(DisplayPlaces)
}

func (a Amount) finite() bool {
	return !math.IsNaN(float64(a)) && !math.IsInf(float64(a), 0)
}
