package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/san-kum/popgrowth/internal/logistic"
)

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	evaluations     *prometheus.CounterVec
	points          prometheus.Histogram
	requestDuration *prometheus.HistogramVec
	handler         http.Handler
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "popgrowth",
			Name:      "evaluations_total",
			Help:      "Series evaluations by outcome.",
		}, []string{"outcome"}),
		points: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "popgrowth",
			Name:      "series_points",
			Help:      "Number of points per evaluated series.",
			Buckets:   []float64{1, 10, 50, 100, 250, 500, 1001},
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "popgrowth",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
	m.registry.MustRegister(
		m.evaluations,
		m.points,
		m.requestDuration,
		collectors.NewGoCollector(),
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return m
}

// Outcome classifies an evaluation result for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, logistic.ErrParameterDomain):
		return "domain_error"
	default:
		return "invalid"
	}
}

func (m *Metrics) ObserveEvaluation(points int, err error) {
	m.evaluations.WithLabelValues(Outcome(err)).Inc()
	if err == nil {
		m.points.Observe(float64(points))
	}
}

func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	m.requestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}

func (m *Metrics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
