package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "directory",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "extracurricular",
		Subsystem: "directory",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations.",
	}, []string{"activity"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "extracurricular",
		Subsystem: "directory",
		Name:      "roster_size",
		Help:      "Current number of registered participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rosterSizeGauge)
}

// RecordSignup bumps the signup counter and refreshes the roster size gauge.
func RecordSignup(activity string, rosterSize int) {
	signupCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordUnregister bumps the unregistration counter and refreshes the roster size gauge.
func RecordUnregister(activity string, rosterSize int) {
	unregisterCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}
