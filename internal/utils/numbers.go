package utils

import (
	"fmt"
	"strings"
)

// FormatNumber renders n with comma separators for readable log output,
// e.g. 1234567 -> "1,234,567".
func FormatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
