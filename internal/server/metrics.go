package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	tagFilters   *prometheus.CounterVec
	searches     prometheus.Counter
	themeToggles *prometheus.CounterVec
	projects     prometheus.Gauge
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gallery_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		tagFilters: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_tag_filter_total",
			Help: "Page renders with the tag active.",
		}, []string{"tag"}),
		searches: factory.NewCounter(prometheus.CounterOpts{
			Name: "gallery_search_total",
			Help: "Page renders with a non-empty search.",
		}),
		themeToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_theme_toggles_total",
			Help: "Theme toggles by resulting theme.",
		}, []string{"theme"}),
		projects: factory.NewGauge(prometheus.GaugeOpts{
			Name: "gallery_projects",
			Help: "Projects loaded at startup.",
		}),
	}
}

func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(route, statusLabel(c.Writer.Status())).Inc()
	}
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
