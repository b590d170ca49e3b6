package advisor

import (
	"math"
	"strconv"
	"strings"
)

// wholePercent formats x as a whole-number string, rounding halves away from
// zero. Used for the budgetAfter field and percentage figures in messages.
func wholePercent(x float64) string {
	return strconv.FormatFloat(math.Round(x), 'f', -1, 64)
}

// onePlace formats x with exactly one decimal place.
func onePlace(x float64) string {
	return strconv.FormatFloat(math.Round(x*10)/10, 'f', 1, 64)
}

// Rupees formats a rupee amount rounded to the nearest unit with thousands
// separators, e.g. 30000 -> "30,000".
func Rupees(x float64) string {
	n := int64(math.Round(x))
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}

	if neg {
		return "-" + s
	}
	return s
}
