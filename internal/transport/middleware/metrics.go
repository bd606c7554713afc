package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts requests by route, method and status code.
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wordnet",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route, method and status code",
	}, []string{"route", "method", "code"})

	// requestDuration measures handler latency by route.
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wordnet",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP handler latency by route",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"route"})

	inFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "wordnet",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "HTTP requests currently being served",
	})

	panicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wordnet",
		Subsystem: "http",
		Name:      "panics_total",
		Help:      "Handler panics recovered by the recovery middleware",
	})

	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "wordnet",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the per-client rate limiter",
	})
)

// Metrics records request count, latency and in-flight gauge for every
// request. No middleware between Metrics and the mux may replace the
// request, otherwise the matched route pattern is lost.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inFlight.Inc()
		defer inFlight.Dec()

		start := time.Now()
		sw := newStatusWriter(w)
		next.ServeHTTP(sw, r)

		route := routeOf(r)
		requestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(sw.status)).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
