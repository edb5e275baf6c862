package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the API. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	RequestCount    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	TokensIssued    *prometheus.CounterVec
	AuthFailures    *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg. Collectors already registered by a
// previous call are reused.
func New(namespace string, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*Metrics, error) {
	m := &Metrics{
		RequestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		TokensIssued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "tokens_issued_total",
				Help:      "Total number of issued tokens by type",
			},
			[]string{"type"},
		),
		AuthFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "auth",
				Name:      "failures_total",
				Help:      "Total number of failed logins and token redemptions",
			},
			[]string{"reason"},
		),
		gatherer: gatherer,
	}

	var err error
	if m.RequestCount, err = register(reg, m.RequestCount); err != nil {
		return nil, err
	}
	if m.RequestDuration, err = register(reg, m.RequestDuration); err != nil {
		return nil, err
	}
	if m.TokensIssued, err = register(reg, m.TokensIssued); err != nil {
		return nil, err
	}
	if m.AuthFailures, err = register(reg, m.AuthFailures); err != nil {
		return nil, err
	}
	return m, nil
}

// NewDefault registers on the global Prometheus registry
func NewDefault(namespace string) (*Metrics, error) {
	return New(namespace, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Middleware records request count and latency per matched route
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestCount.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() gin.HandlerFunc {
	gatherer := prometheus.DefaultGatherer
	if m != nil && m.gatherer != nil {
		gatherer = m.gatherer
	}
	return gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}

// TokenIssued counts an issued token of the given type
func (m *Metrics) TokenIssued(tokenType string) {
	if m == nil {
		return
	}
	m.TokensIssued.WithLabelValues(tokenType).Inc()
}

// AuthFailure counts a failed login or refresh
func (m *Metrics) AuthFailure(reason string) {
	if m == nil {
		return
	}
	m.AuthFailures.WithLabelValues(reason).Inc()
}
