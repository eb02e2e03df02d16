package dto

// Amounts are exact decimal strings; the *Display fields are rounded for shoppers.

type CartItem struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Image               string `json:"image,omitempty"`
	UnitPrice           string `json:"unit_price"`
	UnitPriceDisplay    string `json:"unit_price_display"`
	Quantity            int    `json:"quantity"`
	Liked               bool   `json:"liked"`
	LineSubtotal        string `json:"line_subtotal"`
	LineSubtotalDisplay string `json:"line_subtotal_display"`
}

type CartTotals struct {
	Subtotal        string `json:"subtotal"`
	SubtotalDisplay string `json:"subtotal_display"`
	TaxRate         string `json:"tax_rate"`
	Tax             string `json:"tax"`
	TaxDisplay      string `json:"tax_display"`
	Total           string `json:"total"`
	TotalDisplay    string `json:"total_display"`
}

type Cart struct {
	Items     []CartItem `json:"items"`
	Totals    CartTotals `json:"totals"`
	ItemCount int        `json:"item_count"`
	Empty     bool       `json:"empty"`
}

type CheckoutSummary struct {
	Total        string `json:"total"`
	TotalDisplay string `json:"total_display"`
	ItemCount    int    `json:"item_count"`
	Units        int    `json:"units"`
}
