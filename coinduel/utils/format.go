package utils

import (
	"strconv"
	"strings"
)

// FormatNumber renders n with thousands separators (12345 -> "12,345").
func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg = true
		str = str[1:]
	}

	var b strings.Builder
	for i, digit := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
