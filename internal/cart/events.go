package cart

// EventKind names the notifications the engine emits after a state change.
type EventKind string

const (
	EventQuantityChanged EventKind = "quantity_changed"
	EventItemRemoved     EventKind = "item_removed"
	EventCartCleared     EventKind = "cart_cleared"
	EventLikedToggled    EventKind = "liked_toggled"
)

// Event is delivered synchronously to listeners once the mutation is applied.
type Event struct {
	Kind     EventKind
	ItemID   int
	Quantity int
	Liked    bool
}

// TotalsChanged reports whether subtotal, tax and total must be re-read.
func (e Event) TotalsChanged() bool {
	return e.Kind != EventLikedToggled
}

// Listener receives engine events. Listeners must not call back into the engine.
type Listener func(Event)
