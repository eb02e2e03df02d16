package cart

import (
	"context"

	"github.com/angelmondragon/panier-backend/pkg/logger"
	"github.com/angelmondragon/panier-backend/pkg/metrics"
)

// Notifier turns engine events into log entries and metrics.
type Notifier struct {
	logg    *logger.Logger
	metrics *metrics.CartMetrics
}

func NewNotifier(logg *logger.Logger, m *metrics.CartMetrics) *Notifier {
	if logg == nil {
		logg = logger.Nop()
	}
	return &Notifier{logg: logg, metrics: m}
}

// Listeners returns the listeners to attach to a session's engine.
func (n *Notifier) Listeners(sessionID string) []Listener {
	ctx := n.logg.WithSessionID(context.Background(), sessionID)
	return []Listener{func(evt Event) {
		n.metrics.IncEvent(string(evt.Kind))
		fields := map[string]any{
			"event":          string(evt.Kind),
			"totals_changed": evt.TotalsChanged(),
		}
		if evt.ItemID != 0 {
			fields["item_id"] = evt.ItemID
		}
		if evt.Kind == EventQuantityChanged {
			fields["quantity"] = evt.Quantity
		}
		n.logg.Debug(n.logg.WithFields(ctx, fields), "cart.event")
	}}
}

func (n *Notifier) SessionOpened(sessionID string) {
	n.metrics.SessionOpened()
	n.logg.Info(n.logg.WithSessionID(context.Background(), sessionID), "cart.session.opened")
}

func (n *Notifier) SessionClosed(sessionID string) {
	n.metrics.SessionClosed()
	n.logg.Info(n.logg.WithSessionID(context.Background(), sessionID), "cart.session.closed")
}
