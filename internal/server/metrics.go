package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Calculator labels used on every metric.
const (
	calculatorHotel         = "hotel"
	calculatorFlightSplit   = "flight_split"
	calculatorFlightUpgrade = "flight_upgrade"
)

// Outcome labels.
const (
	outcomeOK         = "ok"
	outcomeValidation = "validation_error"
	outcomeBadRequest = "bad_request"
	outcomeError      = "error"
)

// Metrics holds the server's Prometheus instruments. Each Server owns its
// own registry so several servers (or tests) never collide.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
}

// NewMetrics registers the calculator instruments plus the Go runtime and
// process collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "expense_split",
			Name:      "calculations_total",
			Help:      "Calculations served, by calculator and outcome.",
		}, []string{"calculator", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "expense_split",
			Name:      "calculation_duration_seconds",
			Help:      "Time spent inside the calculator, excluding I/O.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
		}, []string{"calculator"}),
	}

	reg.MustRegister(
		m.calculations,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) observe(calculator, outcome string, seconds float64) {
	m.calculations.WithLabelValues(calculator, outcome).Inc()
	if outcome == outcomeOK {
		m.duration.WithLabelValues(calculator).Observe(seconds)
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
