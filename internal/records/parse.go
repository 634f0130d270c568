package records

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// parseNumber reads the longest numeric prefix of value, ignoring leading
// whitespace. It returns NaN when no prefix is numeric.
func parseNumber(value string) float64 {
	m := floatPrefix.FindString(strings.TrimSpace(value))
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN()
	}
	return f
}

// parseWhole reads the leading integer of value, truncating any fraction.
// It returns NaN when value does not start with a digit.
func parseWhole(value string) float64 {
	m := intPrefix.FindString(strings.TrimSpace(value))
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN()
	}
	return f
}

// numberOr parses value, falling back when it is empty.
func numberOr(value string, fallback float64) float64 {
	if value == "" {
		return fallback
	}
	return parseNumber(value)
}

// validNumberOr parses value, falling back when it is empty or not numeric.
func validNumberOr(value string, fallback float64) float64 {
	f := numberOr(value, fallback)
	if math.IsNaN(f) {
		return fallback
	}
	return f
}

func valueOrDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func column(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func isRangeErr(err error) bool {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err == strconv.ErrRange
	}
	return false
}
