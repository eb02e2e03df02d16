package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart engine activity.
type CartMetrics struct {
	events    *prometheus.CounterVec
	sessions  prometheus.Gauge
	checkouts *prometheus.CounterVec
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_events_total",
		Help: "Cart engine notifications by kind.",
	}, []string{"kind"})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cart_sessions_active",
		Help: "Cart sessions currently held in memory.",
	})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_checkouts_total",
		Help: "Order validation attempts by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(events, sessions, checkouts)
	return &CartMetrics{
		events:    events,
		sessions:  sessions,
		checkouts: checkouts,
	}
}

// IncEvent counts one engine notification.
func (c *CartMetrics) IncEvent(kind string) {
	if c == nil || c.events == nil {
		return
	}
	c.events.WithLabelValues(normalizeLabel(kind)).Inc()
}

// SessionOpened tracks a new cart session.
func (c *CartMetrics) SessionOpened() {
	if c == nil || c.sessions == nil {
		return
	}
	c.sessions.Inc()
}

// SessionClosed tracks an expired or dropped cart session.
func (c *CartMetrics) SessionClosed() {
	if c == nil || c.sessions == nil {
		return
	}
	c.sessions.Dec()
}

// IncCheckout counts an order validation attempt.
func (c *CartMetrics) IncCheckout(outcome string) {
	if c == nil || c.checkouts == nil {
		return
	}
	c.checkouts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
