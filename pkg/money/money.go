// Package money holds display helpers for decimal amounts.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of fraction digits shown to shoppers.
const DisplayPlaces = 2

// Format renders an amount with two decimals followed by the currency suffix, e.g. "1509.95 €".
func Format(amount decimal.Decimal, suffix string) string {
	text := amount.StringFixed(DisplayPlaces)
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		return text
	}
	return text + " " + suffix
}

// Sum adds the provided amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}
	return total
}
