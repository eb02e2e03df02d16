package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/panier-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/panier-backend/pkg/errors"
)

// Service exposes cart operations for one shopper session at a time.
type Service interface {
	Cart(ctx context.Context, sessionID string) (*View, error)
	SetQuantity(ctx context.Context, sessionID string, itemID int, raw string) (*View, error)
	Increment(ctx context.Context, sessionID string, itemID int) (*View, error)
	Decrement(ctx context.Context, sessionID string, itemID int) (*View, error)
	ToggleLiked(ctx context.Context, sessionID string, itemID int) (*View, error)
	Remove(ctx context.Context, sessionID string, itemID int) (*View, error)
	Clear(ctx context.Context, sessionID string) (*View, error)
	Checkout(ctx context.Context, sessionID string) (*Summary, error)
}

type checkoutRecorder interface {
	IncCheckout(outcome string)
}

// Notice is a transient message for the shopper.
type Notice struct {
	Level   enums.NoticeLevel
	Message string
}

// ItemView is a line item with its derived subtotal.
type ItemView struct {
	LineItem
	LineSubtotal decimal.Decimal
}

// View is the state the UI re-renders after every call.
type View struct {
	Items []ItemView
	Totals
	Empty  bool
	Notice *Notice
}

type service struct {
	registry *Registry
	checkout checkoutRecorder
}

// NewService builds a cart service over the session registry.
func NewService(registry *Registry, checkout checkoutRecorder) (Service, error) {
	if registry == nil {
		return nil, fmt.Errorf("cart registry required")
	}
	return &service{registry: registry, checkout: checkout}, nil
}

func (s *service) Cart(ctx context.Context, sessionID string) (*View, error) {
	return s.apply(ctx, sessionID, func(e *Engine) (*Notice, error) {
		return nil, nil
	})
}

func (s *service) SetQuantity(ctx context.Context, sessionID string, itemID int, raw string) (*View, error) {
	return s.apply(ctx, sessionID, func(e *Engine) (*Notice, error) {
		if !e.SetQuantityInput(itemID, raw) {
			return nil, itemNotFound(itemID)
		}
		return nil, nil
	})
}

func (s *service) Increment(ctx context.Context, sessionID string, itemID int) (*View, error) {
	return s.apply(ctx, sessionID, func(e *Engine) (*Notice, error) {
		if !e.Increment(itemID) {
			return nil, itemNotFound(itemID)
		}
		return nil, nil
	})
}

func (s *service) Decrement(ctx context.Context, sessionID string, itemID int) (*View, error) {
	return s.apply(ctx, sessionID, func(e *Engine) (*Notice, error) {
		if !e.Decrement(itemID) {
			return nil, itemNotFound(itemID)
		}
		return nil, nil
	})
}

func (s *service) ToggleLiked(ctx context.Context, sessionID string, itemID int) (*View, error) {
	return s.apply(ctx, sessionID, func(e *Engine) (*Notice, error) {
		liked, ok := e.ToggleLiked(itemID)
		if !ok {
			return nil, itemNotFound(itemID)
		}
		item, _ := e.FindItem(itemID)
		if liked {
			return &Notice{Level: enums.NoticeLevelSuccess, Message: fmt.Sprintf("%q was added to your favourites", item.Name)}, nil
		}
		return &Notice{Level: enums.NoticeLevelInfo, Message: fmt.Sprintf("%q was removed from your favourites", item.Name)}, nil
	})
}

func (s *service) Remove(ctx context.Context, sessionID string, itemID int) (*View, error) {
	return s.apply(ctx, sessionID, func(e *Engine) (*Notice, error) {
		item, ok := e.FindItem(itemID)
		if !ok || !e.Remove(itemID) {
			return nil, itemNotFound(itemID)
		}
		if e.IsEmpty() {
			return &Notice{Level: enums.NoticeLevelInfo, Message: fmt.Sprintf("%q was removed, the cart is now empty", item.Name)}, nil
		}
		return &Notice{Level: enums.NoticeLevelSuccess, Message: fmt.Sprintf("%q was removed from the cart", item.Name)}, nil
	})
}

func (s *service) Clear(ctx context.Context, sessionID string) (*View, error) {
	return s.apply(ctx, sessionID, func(e *Engine) (*Notice, error) {
		if !e.Clear() {
			return &Notice{Level: enums.NoticeLevelInfo, Message: "the cart is already empty"}, nil
		}
		return &Notice{Level: enums.NoticeLevelSuccess, Message: "the cart was cleared"}, nil
	})
}

func (s *service) Checkout(ctx context.Context, sessionID string) (*Summary, error) {
	var summary *Summary
	err := s.registry.With(sessionID, func(e *Engine) error {
		var err error
		summary, err = Summarize(e)
		return err
	})
	if err != nil {
		s.recordCheckout("rejected")
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "validate order")
	}
	s.recordCheckout("accepted")
	return summary, nil
}

func (s *service) apply(ctx context.Context, sessionID string, fn func(*Engine) (*Notice, error)) (*View, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var view *View
	err := s.registry.With(sessionID, func(e *Engine) error {
		notice, err := fn(e)
		if err != nil {
			return err
		}
		view = newView(e)
		view.Notice = notice
		return nil
	})
	if err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "open cart session")
	}
	return view, nil
}

func (s *service) recordCheckout(outcome string) {
	if s.checkout != nil {
		s.checkout.IncCheckout(outcome)
	}
}

func newView(e *Engine) *View {
	items := e.Items()
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{LineItem: item, LineSubtotal: item.Subtotal()})
	}
	return &View{
		Items:  views,
		Totals: e.Totals(),
		Empty:  e.IsEmpty(),
	}
}

func itemNotFound(itemID int) error {
	return pkgerrors.New(pkgerrors.CodeNotFound, "item not found in cart").WithDetails(map[string]any{"item_id": itemID})
}
