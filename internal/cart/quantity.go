package cart

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// MinQuantity is the lowest quantity a line item may hold.
	MinQuantity = 1
	// MaxQuantity caps a line so derived amounts stay meaningful.
	MaxQuantity = 9999
)

// ClampQuantity coerces q into [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// ParseQuantity reads the free-form content of a quantity field.
// Anything that is not a base-10 integer yields MinQuantity; integers too large for an int
// are treated as MaxQuantity.
func ParseQuantity(raw string) int {
	text := strings.TrimSpace(raw)
	value, err := strconv.Atoi(text)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(text, "-") {
			return MaxQuantity
		}
		return MinQuantity
	}
	return ClampQuantity(value)
}
