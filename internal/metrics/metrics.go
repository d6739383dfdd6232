package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "studio"

// Metrics holds the Prometheus collectors for the HTTP layer and the domain.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
	RequestsTotal   *prometheus.CounterVec
	InFlightGauge   prometheus.Gauge

	LayoutsCreated   prometheus.Counter
	RenderJobs       *prometheus.CounterVec
	MaterialEdits    *prometheus.CounterVec
	SettingsUpdates  prometheus.Counter
	EventSubscribers prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status_code"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status_code"}),
		InFlightGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of HTTP requests currently being processed.",
		}),
		LayoutsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layouts_created_total",
			Help:      "Total number of layouts created.",
		}),
		RenderJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "render_jobs_total",
			Help:      "Render job transitions by resulting status.",
		}, []string{"status"}),
		MaterialEdits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "material_edits_total",
			Help:      "Material edit transitions by resulting status.",
		}, []string{"status"}),
		SettingsUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settings_updates_total",
			Help:      "Total number of settings saves.",
		}),
		EventSubscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "event_subscribers",
			Help:      "Number of connected event stream clients.",
		}),
	}

	reg.MustRegister(
		m.RequestDuration, m.RequestsTotal, m.InFlightGauge,
		m.LayoutsCreated, m.RenderJobs, m.MaterialEdits, m.SettingsUpdates, m.EventSubscribers,
	)
	return m
}

func (m *Metrics) LayoutCreated() {
	if m == nil {
		return
	}
	m.LayoutsCreated.Inc()
}

func (m *Metrics) RenderJob(status string) {
	if m == nil {
		return
	}
	m.RenderJobs.WithLabelValues(status).Inc()
}

func (m *Metrics) MaterialEdit(status string) {
	if m == nil {
		return
	}
	m.MaterialEdits.WithLabelValues(status).Inc()
}

func (m *Metrics) SettingsSaved() {
	if m == nil {
		return
	}
	m.SettingsUpdates.Inc()
}

func (m *Metrics) SubscriberConnected() {
	if m == nil {
		return
	}
	m.EventSubscribers.Inc()
}

func (m *Metrics) SubscriberDisconnected() {
	if m == nil {
		return
	}
	m.EventSubscribers.Dec()
}

// Middleware records request count, duration and in-flight requests.
// It skips /metrics and requests that matched no route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if m == nil || route == "" || route == "/metrics" {
			c.Next()
			return
		}

		m.InFlightGauge.Inc()
		defer m.InFlightGauge.Dec()

		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method
		m.RequestDuration.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
		m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	}
}
