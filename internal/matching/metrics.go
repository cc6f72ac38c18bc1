package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	accessDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matching",
		Subsystem: "access",
		Name:      "decisions_total",
		Help:      "Total number of service order allow-list checks broken down by result.",
	}, []string{"result"})

	willingnessItems = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "matching",
		Subsystem: "willingness",
		Name:      "items_total",
		Help:      "Total number of submitted willingness items broken down by outcome.",
	}, []string{"outcome"})

	willingnessFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "matching",
		Subsystem: "willingness",
		Name:      "fallback_total",
		Help:      "Total number of batches written through the per-item fallback path.",
	})
)

func recordAccessDecision(allowed bool) {
	result := "denied"
	if allowed {
		result = "allowed"
	}
	accessDecisions.WithLabelValues(result).Inc()
}

func recordWillingnessItem(updated bool) {
	outcome := "skipped"
	if updated {
		outcome = "updated"
	}
	willingnessItems.WithLabelValues(outcome).Inc()
}
