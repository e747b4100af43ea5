package manager

import "github.com/prometheus/client_golang/prometheus"

var (
	generationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gend",
			Subsystem: "engine",
			Name:      "generations_total",
			Help:      "Completed engine calls by mode",
		},
		[]string{"mode"},
	)

	generationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gend",
			Subsystem: "engine",
			Name:      "generation_failures_total",
			Help:      "Engine calls that returned an error",
		},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gend",
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Sessions currently tracked in the registry",
		},
	)

	sessionsReaped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gend",
			Subsystem: "sessions",
			Name:      "reaped_total",
			Help:      "Sessions evicted by the reaper",
		},
	)
)

func init() {
	prometheus.MustRegister(generationsTotal, generationFailures, activeSessions, sessionsReaped)
}
