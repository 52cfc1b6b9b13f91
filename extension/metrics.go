package extension

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const resultLoaded = "loaded"

var (
	// LoadsTotal counts Load calls; result is "loaded" or the failure Kind.
	LoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mu_extension_loads_total",
			Help: "Extension load attempts by module path and result",
		},
		[]string{"module", "result"},
	)

	// Degraded reflects the outcome of the most recent Load.
	Degraded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mu_extension_degraded",
			Help: "1 when the configured extension failed to load",
		},
	)
)

func observe(path string, err error) {
	result := resultLoaded
	if le, ok := err.(*LoadError); ok {
		result = le.Kind.String()
	}
	LoadsTotal.WithLabelValues(path, result).Inc()
	if err != nil {
		Degraded.Set(1)
	} else {
		Degraded.Set(0)
	}
}
