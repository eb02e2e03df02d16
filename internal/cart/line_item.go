package cart

import "github.com/shopspring/decimal"

// LineItem is one product entry in the cart.
type LineItem struct {
	ID        int
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Liked     bool
	Image     string
}

// Subtotal returns unit price × quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// DefaultSeed returns the items every new cart session starts with.
func DefaultSeed() []LineItem {
	return []LineItem{
		{
			ID:        1,
			Name:      "Laptop Dell XPS 15",
			UnitPrice: decimal.RequireFromString("1299.99"),
			Quantity:  1,
			Image:     "https://via.placeholder.com/100x100?text=Laptop",
		},
		{
			ID:        2,
			Name:      "Souris sans fil Logitech",
			UnitPrice: decimal.RequireFromString("29.99"),
			Quantity:  2,
			Image:     "https://via.placeholder.com/100x100?text=Souris",
		},
		{
			ID:        3,
			Name:      "Clavier mécanique RGB",
			UnitPrice: decimal.RequireFromString("89.99"),
			Quantity:  1,
			Image:     "https://via.placeholder.com/100x100?text=Clavier",
		},
		{
			ID:        4,
			Name:      "Webcam HD 1080p",
			UnitPrice: decimal.RequireFromString("59.99"),
			Quantity:  1,
			Image:     "https://via.placeholder.com/100x100?text=Webcam",
		},
	}
}
