package kernel

import (
	"strconv"
	"strings"
)

// ParseWeight extracts a kilogram value from a free-form weight string as
// entered during delivery routing, e.g. "120kg", "75.5 KG", "80". Every
// character that is not a digit or a decimal point is discarded before
// parsing, so unit suffixes never cause a failure.
//
// Empty or unparseable input yields 0, which downstream code treats as
// "no weight recorded", never as an error.
func ParseWeight(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
