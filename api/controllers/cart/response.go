package cart

import (
	cartdto "github.com/angelmondragon/panier-backend/api/controllers/cart/dto"
	cartsvc "github.com/angelmondragon/panier-backend/internal/cart"
	"github.com/angelmondragon/panier-backend/pkg/money"
	"github.com/angelmondragon/panier-backend/pkg/types"
)

func newCart(view *cartsvc.View, currency string) cartdto.Cart {
	items := make([]cartdto.CartItem, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, cartdto.CartItem{
			ID:                  item.ID,
			Name:                item.Name,
			Image:               item.Image,
			UnitPrice:           item.UnitPrice.String(),
			UnitPriceDisplay:    money.Format(item.UnitPrice, currency),
			Quantity:            item.Quantity,
			Liked:               item.Liked,
			LineSubtotal:        item.LineSubtotal.String(),
			LineSubtotalDisplay: money.Format(item.LineSubtotal, currency),
		})
	}

	return cartdto.Cart{
		Items: items,
		Totals: cartdto.CartTotals{
			Subtotal:        view.Subtotal.String(),
			SubtotalDisplay: money.Format(view.Subtotal, currency),
			TaxRate:         cartsvc.TaxRate.String(),
			Tax:             view.Tax.String(),
			TaxDisplay:      money.Format(view.Tax, currency),
			Total:           view.Total.String(),
			TotalDisplay:    money.Format(view.Total, currency),
		},
		ItemCount: len(items),
		Empty:     view.Empty,
	}
}

func newCheckoutSummary(summary *cartsvc.Summary, currency string) cartdto.CheckoutSummary {
	return cartdto.CheckoutSummary{
		Total:        summary.Total.String(),
		TotalDisplay: money.Format(summary.Total, currency),
		ItemCount:    summary.ItemCount,
		Units:        summary.Units,
	}
}

func newNotice(notice *cartsvc.Notice) *types.Notice {
	if notice == nil {
		return nil
	}
	return &types.Notice{Level: notice.Level.String(), Message: notice.Message}
}
