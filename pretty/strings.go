// Package pretty contains helpers for human-readable output.
package pretty

import (
	"strconv"
	"strings"
)

// Float64 formats f with at most prec decimals, trimming trailing zeros and
// any trailing decimal point.
func Float64(f float64, prec int) (s string) {
	s = strconv.FormatFloat(f, 'f', prec, 64)
	if strings.IndexByte(s, '.') < 0 {
		return
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" {
		s = "0"
	}
	return
}

// Shortest formats f with the fewest decimals that represent it exactly.
func Shortest(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
