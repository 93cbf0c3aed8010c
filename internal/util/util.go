package util

import (
	"strconv"
	"strings"
)

// Truncate shortens s to at most max runes. Truncation is applied for
// table display only; stored values keep their full length.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// PadRight pads s with spaces to the given rune width. Strings already
// at or beyond the width are returned unchanged. Padding counts runes,
// not bytes, so names with umlauts line up.
func PadRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

// FormatQuantity renders a material quantity without trailing zeros:
// 2.5 stays "2.5", 3.0 becomes "3".
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// OrDash returns the value of an optional field, or "-" when it is unset
func OrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
