package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/panier-backend/pkg/money"
)

// TaxRate is the fixed rate applied to the cart subtotal.
var TaxRate = decimal.RequireFromString("0.15")

// Totals groups the derived amounts of a cart.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Engine owns the line items of one cart and derives its totals.
// It is not safe for concurrent use; callers serialise access per cart.
type Engine struct {
	items     []LineItem
	listeners []Listener
}

// NewEngine builds an engine from a seed list. Quantities are clamped into range.
func NewEngine(seed []LineItem, listeners ...Listener) (*Engine, error) {
	items := make([]LineItem, 0, len(seed))
	seen := make(map[int]struct{}, len(seed))
	for _, item := range seed {
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("duplicate line item id %d", item.ID)
		}
		if item.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("line item %d has negative unit price", item.ID)
		}
		seen[item.ID] = struct{}{}
		item.Quantity = ClampQuantity(item.Quantity)
		items = append(items, item)
	}
	return &Engine{items: items, listeners: listeners}, nil
}

func (e *Engine) indexOf(id int) int {
	for i := range e.items {
		if e.items[i].ID == id {
			return i
		}
	}
	return -1
}

// FindItem returns a copy of the item with the given id.
func (e *Engine) FindItem(id int) (LineItem, bool) {
	idx := e.indexOf(id)
	if idx < 0 {
		return LineItem{}, false
	}
	return e.items[idx], true
}

// Items returns a copy of the items in insertion order.
func (e *Engine) Items() []LineItem {
	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

func (e *Engine) Len() int {
	return len(e.items)
}

func (e *Engine) IsEmpty() bool {
	return len(e.items) == 0
}

// SetQuantity stores max(q, 1) for the item. It reports false, without notifying, when the id is unknown.
func (e *Engine) SetQuantity(id, q int) bool {
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}
	e.items[idx].Quantity = ClampQuantity(q)
	e.emitQuantity(idx)
	return true
}

// SetQuantityInput applies the raw text of a quantity field.
func (e *Engine) SetQuantityInput(id int, raw string) bool {
	return e.SetQuantity(id, ParseQuantity(raw))
}

// Increment raises the quantity by one. At MaxQuantity it changes nothing and emits nothing.
func (e *Engine) Increment(id int) bool {
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}
	if e.items[idx].Quantity >= MaxQuantity {
		return true
	}
	e.items[idx].Quantity++
	e.emitQuantity(idx)
	return true
}

// Decrement lowers the quantity by one. At MinQuantity it changes nothing and emits nothing.
func (e *Engine) Decrement(id int) bool {
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}
	if e.items[idx].Quantity <= MinQuantity {
		return true
	}
	e.items[idx].Quantity--
	e.emitQuantity(idx)
	return true
}

func (e *Engine) Remove(id int) bool {
	idx := e.indexOf(id)
	if idx < 0 {
		return false
	}
	e.items = append(e.items[:idx], e.items[idx+1:]...)
	e.emit(Event{Kind: EventItemRemoved, ItemID: id})
	return true
}

// Clear empties the cart and reports whether anything was removed.
func (e *Engine) Clear() bool {
	if len(e.items) == 0 {
		return false
	}
	e.items = nil
	e.emit(Event{Kind: EventCartCleared})
	return true
}

// ToggleLiked flips the liked flag and returns its new value.
func (e *Engine) ToggleLiked(id int) (liked bool, found bool) {
	idx := e.indexOf(id)
	if idx < 0 {
		return false, false
	}
	e.items[idx].Liked = !e.items[idx].Liked
	liked = e.items[idx].Liked
	e.emit(Event{Kind: EventLikedToggled, ItemID: id, Liked: liked})
	return liked, true
}

// LineSubtotal returns unit price × quantity for one item.
func (e *Engine) LineSubtotal(id int) (decimal.Decimal, bool) {
	item, ok := e.FindItem(id)
	if !ok {
		return decimal.Zero, false
	}
	return item.Subtotal(), true
}

func (e *Engine) Subtotal() decimal.Decimal {
	lines := make([]decimal.Decimal, 0, len(e.items))
	for _, item := range e.items {
		lines = append(lines, item.Subtotal())
	}
	return money.Sum(lines...)
}

func (e *Engine) Tax() decimal.Decimal {
	return e.Subtotal().Mul(TaxRate)
}

func (e *Engine) Total() decimal.Decimal {
	subtotal := e.Subtotal()
	return subtotal.Add(subtotal.Mul(TaxRate))
}

// Totals computes the three derived amounts from a single pass over the items.
func (e *Engine) Totals() Totals {
	subtotal := e.Subtotal()
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

func (e *Engine) emitQuantity(idx int) {
	item := e.items[idx]
	e.emit(Event{Kind: EventQuantityChanged, ItemID: item.ID, Quantity: item.Quantity})
}

func (e *Engine) emit(evt Event) {
	for _, listener := range e.listeners {
		if listener != nil {
			listener(evt)
		}
	}
}
