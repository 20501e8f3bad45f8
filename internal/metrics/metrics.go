package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pressim_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pressim_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	simulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pressim_simulations_total",
			Help: "Simulation runs by outcome (ok, invalid, error).",
		},
		[]string{"outcome"},
	)

	simulationSamples = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pressim_simulation_samples",
			Help:    "Number of samples produced per successful run.",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpDurationSeconds)
	prometheus.MustRegister(simulationsTotal)
	prometheus.MustRegister(simulationSamples)
}

// Outcome labels for ObserveSimulation.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveSimulation records one engine run. samples is ignored unless outcome is OutcomeOK.
func ObserveSimulation(outcome string, samples int) {
	simulationsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		simulationSamples.Observe(float64(samples))
	}
}

// routeLabel uses the matched route template so /simulations/:id stays one series.
// Unmatched paths (404s, scanners) collapse to "other".
func routeLabel(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return "other"
}

// Middleware records request count and duration for each request.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := routeLabel(c)
		code := strconv.Itoa(c.Writer.Status())
		httpRequestsTotal.WithLabelValues(path, c.Request.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
