package common

import (
	"fmt"
	"strconv"
)

// FormatPrice renders an UZS amount with thousands separators, e.g.
// 1500000 -> "1 500 000 UZS".
func FormatPrice(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, c)
	}
	if neg {
		return fmt.Sprintf("-%s UZS", out)
	}
	return fmt.Sprintf("%s UZS", out)
}
