package cart

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/angelmondragon/panier-backend/pkg/errors"
)

// Summary is the confirmation shown when the shopper validates the order.
type Summary struct {
	Total     decimal.Decimal
	ItemCount int
	Units     int
}

// Summarize validates the order for the current items. The cart is left untouched.
func Summarize(e *Engine) (*Summary, error) {
	if e == nil || e.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}
	units := 0
	for _, item := range e.items {
		units += item.Quantity
	}
	return &Summary{
		Total:     e.Total(),
		ItemCount: e.Len(),
		Units:     units,
	}, nil
}
