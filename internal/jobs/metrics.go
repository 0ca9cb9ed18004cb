package jobs

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeEscalated = "escalated"
	outcomeSkipped   = "skipped"
	outcomeFailed    = "failed"
	outcomeError     = "error"
)

// EscalationMetrics counts what the timer sweeps did.
type EscalationMetrics struct {
	orders *prometheus.CounterVec
	runs   *prometheus.CounterVec
}

func NewEscalationMetrics(reg prometheus.Registerer) *EscalationMetrics {
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordermanagement",
		Subsystem: "timer",
		Name:      "orders_total",
		Help:      "Orders handled by timer sweeps, by outcome.",
	}, []string{"job", "outcome"})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ordermanagement",
		Subsystem: "timer",
		Name:      "runs_total",
		Help:      "Timer sweeps, by outcome.",
	}, []string{"job", "outcome"})

	reg.MustRegister(orders, runs)
	return &EscalationMetrics{orders: orders, runs: runs}
}

func (m *EscalationMetrics) observe(job string, escalated, skipped, failed int) {
	m.orders.WithLabelValues(job, outcomeEscalated).Add(float64(escalated))
	m.orders.WithLabelValues(job, outcomeSkipped).Add(float64(skipped))
	m.orders.WithLabelValues(job, outcomeFailed).Add(float64(failed))

	outcome := "ok"
	if failed > 0 {
		outcome = outcomeFailed
	}
	m.runs.WithLabelValues(job, outcome).Inc()
}

func (m *EscalationMetrics) observeError(job string) {
	m.runs.WithLabelValues(job, outcomeError).Inc()
}
