package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	attempts *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetrics registers the resolver collectors with reg. A nil registerer
// keeps them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marketsync",
			Subsystem: "gateway",
			Name:      "attempts_total",
			Help:      "Gateway attempts by gateway and outcome.",
		}, []string{"gateway", "outcome"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "marketsync",
			Subsystem: "gateway",
			Name:      "attempt_seconds",
			Help:      "Time to response headers per gateway attempt.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}, []string{"gateway"}),
	}
}

func (m *Metrics) observe(a Attempt) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(a.Gateway, string(a.Outcome)).Inc()
	m.latency.WithLabelValues(a.Gateway).Observe(a.Duration.Seconds())
}
