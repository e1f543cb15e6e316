package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Business metrics
	SessionsStarted  prometheus.Counter
	LeadsCaptured    prometheus.Counter
	QuotesComputed   *prometheus.CounterVec
	SimulationsTotal *prometheus.CounterVec
	EventsTracked    prometheus.Counter
	ActiveSessions   prometheus.Gauge
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		SessionsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "wizard_sessions_started_total",
			Help: "Total number of quote wizard sessions started",
		}),
		LeadsCaptured: promauto.NewCounter(prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of leads captured",
		}),
		QuotesComputed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotes_computed_total",
				Help: "Total number of quotes computed",
			},
			[]string{"kind"}, // material, labor
		),
		SimulationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "simulations_total",
				Help: "Total number of visualization renders",
			},
			[]string{"outcome"}, // success, failed, stale
		),
		EventsTracked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "analytics_events_tracked_total",
			Help: "Total number of analytics events accepted",
		}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "wizard_sessions_active",
			Help: "Number of live wizard sessions in memory",
		}),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/products/:id)

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)

			return err
		}
	}
}

// RecordSessionStarted increments the sessions counter
func (m *Metrics) RecordSessionStarted() {
	m.SessionsStarted.Inc()
}

// RecordLeadCaptured increments the leads counter
func (m *Metrics) RecordLeadCaptured() {
	m.LeadsCaptured.Inc()
}

// RecordQuote increments the quotes counter for one quote kind
func (m *Metrics) RecordQuote(kind string) {
	m.QuotesComputed.WithLabelValues(kind).Inc()
}

// RecordSimulation increments the render counter for one outcome
func (m *Metrics) RecordSimulation(outcome string) {
	m.SimulationsTotal.WithLabelValues(outcome).Inc()
}

// RecordEventTracked increments the analytics event counter
func (m *Metrics) RecordEventTracked() {
	m.EventsTracked.Inc()
}

// SetActiveSessions updates the live session gauge
func (m *Metrics) SetActiveSessions(count float64) {
	m.ActiveSessions.Set(count)
}
