package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's Prometheus collectors. A private
// registry avoids duplicate-collector panics when NewMetrics runs more
// than once (e.g. in tests).
type Metrics struct {
	Registry *prometheus.Registry

	requestDuration  *prometheus.HistogramVec
	bookingConflicts prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kalenner_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		bookingConflicts: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "kalenner_booking_conflicts_total",
				Help: "Booking attempts rejected by the overlap check.",
			},
		),
	}
}

// Middleware records request duration and counts 409s from the booking
// conflict path.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		m.requestDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(status),
		).Observe(time.Since(start).Seconds())

		if status == http.StatusConflict {
			m.bookingConflicts.Inc()
		}
	}
}

// Handler serves the /metrics endpoint from the private registry.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
