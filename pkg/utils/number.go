package utils

import (
	"math"
	"strconv"
)

// Percentage returns value/total as a percent rounded to one decimal place.
// A zero total always resolves to 0, never NaN or Inf.
func Percentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}

	return math.Round(value/total*1000) / 10
}

// FormatNumber renders n with thousands separators, e.g. 12345 -> "12,345".
func FormatNumber(n int) string {
	s := strconv.Itoa(n)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}

	if neg {
		return "-" + s
	}
	return s
}
