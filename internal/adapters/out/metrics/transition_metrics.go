// Package metrics exposes workflow counters and gauges to Prometheus.
package metrics

import (
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

const Namespace = "orderflow"

type PrometheusTransitionMetrics struct {
	transitions *prometheus.CounterVec
	orders      *prometheus.GaugeVec
}

var _ ports.TransitionMetrics = (*PrometheusTransitionMetrics)(nil)

// NewPrometheusTransitionMetrics creates the collectors and registers them
// with registerer. It fails if a collector with the same name is already
// registered there.
func NewPrometheusTransitionMetrics(registerer prometheus.Registerer) (*PrometheusTransitionMetrics, error) {
	m := &PrometheusTransitionMetrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "transitions_total",
			Help:      "The number of events submitted to the order workflow, by outcome.",
		}, []string{"event", "result"}),
		orders: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "orders",
			Help:      "The number of stored orders per status.",
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{m.transitions, m.orders} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *PrometheusTransitionMetrics) ObserveTransition(event order.Event, result string) {
	m.transitions.WithLabelValues(event.String(), result).Inc()
}

func (m *PrometheusTransitionMetrics) SetOrdersByStatus(counts map[order.State]int64) {
	for state, count := range counts {
		m.orders.WithLabelValues(state.String()).Set(float64(count))
	}
}
