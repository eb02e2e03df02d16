package cart

import (
	"fmt"
	"net/http"

	cartdto "github.com/angelmondragon/panier-backend/api/controllers/cart/dto"
	"github.com/angelmondragon/panier-backend/api/middleware"
	"github.com/angelmondragon/panier-backend/api/responses"
	"github.com/angelmondragon/panier-backend/api/validators"
	cartsvc "github.com/angelmondragon/panier-backend/internal/cart"
	"github.com/angelmondragon/panier-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/panier-backend/pkg/errors"
	"github.com/angelmondragon/panier-backend/pkg/logger"
	"github.com/angelmondragon/panier-backend/pkg/money"
	"github.com/angelmondragon/panier-backend/pkg/types"
)

const itemIDParam = "itemId"

// CartFetch returns the session's cart with its derived totals.
func CartFetch(svc cartsvc.Service, currency string, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, currency, logg, func(r *http.Request, sessionID string) (*cartsvc.View, error) {
		return svc.Cart(r.Context(), sessionID)
	})
}

// CartSetQuantity stores the free-form quantity typed by the shopper.
func CartSetQuantity(svc cartsvc.Service, currency string, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, currency, logg, func(r *http.Request, sessionID string) (*cartsvc.View, error) {
		itemID, err := validators.ParsePathInt(r, itemIDParam)
		if err != nil {
			return nil, err
		}
		var payload cartdto.SetQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return nil, err
		}
		return svc.SetQuantity(r.Context(), sessionID, itemID, string(*payload.Quantity))
	})
}

func CartIncrement(svc cartsvc.Service, currency string, logg *logger.Logger) http.HandlerFunc {
	return itemHandler(svc, currency, logg, func(r *http.Request, sessionID string, itemID int) (*cartsvc.View, error) {
		return svc.Increment(r.Context(), sessionID, itemID)
	})
}

func CartDecrement(svc cartsvc.Service, currency string, logg *logger.Logger) http.HandlerFunc {
	return itemHandler(svc, currency, logg, func(r *http.Request, sessionID string, itemID int) (*cartsvc.View, error) {
		return svc.Decrement(r.Context(), sessionID, itemID)
	})
}

func CartToggleLiked(svc cartsvc.Service, currency string, logg *logger.Logger) http.HandlerFunc {
	return itemHandler(svc, currency, logg, func(r *http.Request, sessionID string, itemID int) (*cartsvc.View, error) {
		return svc.ToggleLiked(r.Context(), sessionID, itemID)
	})
}

// CartRemoveItem expects the confirmation middleware in front of it.
func CartRemoveItem(svc cartsvc.Service, currency string, logg *logger.Logger) http.HandlerFunc {
	return itemHandler(svc, currency, logg, func(r *http.Request, sessionID string, itemID int) (*cartsvc.View, error) {
		return svc.Remove(r.Context(), sessionID, itemID)
	})
}

// CartClear expects the confirmation middleware in front of it.
func CartClear(svc cartsvc.Service, currency string, logg *logger.Logger) http.HandlerFunc {
	return cartHandler(svc, currency, logg, func(r *http.Request, sessionID string) (*cartsvc.View, error) {
		return svc.Clear(r.Context(), sessionID)
	})
}

// CartCheckout validates the order and reports its total. The cart is not emptied.
func CartCheckout(svc cartsvc.Service, currency string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := sessionIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Checkout(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		notice := &types.Notice{
			Level:   enums.NoticeLevelSuccess.String(),
			Message: fmt.Sprintf("order validated, total: %s", money.Format(summary.Total, currency)),
		}
		responses.WriteSuccessWithNotice(w, newCheckoutSummary(summary, currency), notice)
	}
}

type cartAction func(r *http.Request, sessionID string) (*cartsvc.View, error)

func cartHandler(svc cartsvc.Service, currency string, logg *logger.Logger, action cartAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := sessionIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := action(r, sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessWithNotice(w, newCart(view, currency), newNotice(view.Notice))
	}
}

func itemHandler(svc cartsvc.Service, currency string, logg *logger.Logger, action func(r *http.Request, sessionID string, itemID int) (*cartsvc.View, error)) http.HandlerFunc {
	return cartHandler(svc, currency, logg, func(r *http.Request, sessionID string) (*cartsvc.View, error) {
		itemID, err := validators.ParsePathInt(r, itemIDParam)
		if err != nil {
			return nil, err
		}
		return action(r, sessionID, itemID)
	})
}

func sessionIDFromContext(r *http.Request) (string, error) {
	if r == nil {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "request missing")
	}
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "cart session missing from context")
	}
	return sessionID, nil
}
