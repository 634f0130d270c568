package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds to two decimals, halves going towards positive infinity.
func Round2(x float64) float64 {
	return roundHalfUp(x*100) / 100
}

func roundHalfUp(x float64) float64 {
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// FormatFixed renders x with the given number of decimals. Rounding is done
// on the exact binary value with ties away from zero, so 0.125 renders as
// 0.13 while 1.005 (stored just below) renders as 1.00.
func FormatFixed(x float64, places int32) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case math.Abs(x) >= 1e21:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}

	exact, err := decimal.NewFromString(strconv.FormatFloat(x, 'f', 30, 64))
	if err != nil {
		return strconv.FormatFloat(x, 'f', int(places), 64)
	}
	out := exact.StringFixed(places)
	if x < 0 && !strings.HasPrefix(out, "-") {
		out = "-" + out
	}
	return out
}

// FormatWhole renders the floor of x without decimals.
func FormatWhole(x float64) string {
	f := math.Floor(x)
	if f == 0 {
		f = 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= 1e21 {
		return FormatFixed(f, 0)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
