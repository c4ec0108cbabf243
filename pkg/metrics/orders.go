package metrics

import "github.com/prometheus/client_golang/prometheus"

// Store labels for the order persistence counter.
const (
	StorePrimary  = "primary"
	StoreFallback = "fallback"
)

// OrderMetrics records persistence and notification outcomes.
type OrderMetrics struct {
	persisted     *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	persisted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_persisted_total",
		Help: "Orders persisted, labeled by which store accepted the write.",
	}, []string{"store"})
	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_sent_total",
		Help: "Outbound email notifications, labeled by kind and outcome.",
	}, []string{"kind", "outcome"})
	reg.MustRegister(persisted, notifications)
	return &OrderMetrics{
		persisted:     persisted,
		notifications: notifications,
	}
}

// IncPersisted increments the persistence counter for the named store.
func (m *OrderMetrics) IncPersisted(store string) {
	if m == nil || m.persisted == nil {
		return
	}
	m.persisted.WithLabelValues(normalizeLabel(store)).Inc()
}

// IncNotification increments the notification counter.
func (m *OrderMetrics) IncNotification(kind, outcome string) {
	if m == nil || m.notifications == nil {
		return
	}
	m.notifications.WithLabelValues(normalizeLabel(kind), normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
