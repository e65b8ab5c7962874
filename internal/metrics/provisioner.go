package metrics

import "github.com/prometheus/client_golang/prometheus"

// Provider call counters, labelled by operation and outcome.
var (
	ProviderCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provisioner_provider_calls_total",
		Help: "Provider API calls issued, by operation and outcome",
	}, []string{"operation", "outcome"})

	CleanupRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provisioner_cleanup_runs_total",
		Help: "Cleanup phase outcomes",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(ProviderCalls, CleanupRuns)
}

// ObserveProviderCall records one provider call result.
func ObserveProviderCall(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	ProviderCalls.WithLabelValues(operation, outcome).Inc()
}
