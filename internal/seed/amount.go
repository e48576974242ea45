package seed

import (
	"fmt"
	"strconv"
	"strings"
)

// parseCents converts a non-negative decimal string ("1150", "1150.5",
// "1150.00") into cents.
func parseCents(s string) (int64, error) {
	whole, frac, hasFrac := strings.Cut(strings.TrimSpace(s), ".")

	if strings.HasPrefix(whole, "-") {
		return 0, fmt.Errorf("negative amount %q", s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q: %w", s, err)
	}

	cents := units * 100

	if hasFrac {
		if len(frac) > 2 {
			return 0, fmt.Errorf("amount %q: more than two decimal places", s)
		}

		for len(frac) < 2 {
			frac += "0"
		}

		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("amount %q: %w", s, err)
		}

		cents += f
	}

	return cents, nil
}
