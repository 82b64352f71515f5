package ui

import (
	"fmt"
	"strings"
)

// Money renders an amount as $1,234.56. Negative or garbage input has
// been coerced to zero long before it reaches display code.
func Money(amount float64) string {
	if amount < 0 {
		amount = 0
	}
	s := fmt.Sprintf("%.2f", amount)

	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return "$" + b.String() + frac
}
