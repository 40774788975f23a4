// Package metrics provides Prometheus instrumentation for the register:
// HTTP traffic, sales counters and persistence failures.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"pos/internal/domain/entity"
	"pos/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pos"

// Metrics owns a private registry so tests and multiple fx apps never collide.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	requestInFlight prometheus.Gauge

	ordersTotal         *prometheus.CounterVec
	revenueTotal        *prometheus.CounterVec
	itemsSoldTotal      prometheus.Counter
	cartRejections      *prometheus.CounterVec
	persistenceFailures *prometheus.CounterVec
	stateEvents         *prometheus.CounterVec
}

var _ service.SalesMetrics = (*Metrics)(nil)

// New creates the collectors and registers them with runtime metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		requestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		ordersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sales",
				Name:      "orders_total",
				Help:      "Finalized orders by payment method.",
			},
			[]string{"payment_method"},
		),
		revenueTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "sales",
				Name:      "revenue_total",
				Help:      "Revenue of finalized orders in the smallest currency unit.",
			},
			[]string{"payment_method"},
		),
		itemsSoldTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sales",
			Name:      "items_sold_total",
			Help:      "Units sold across all finalized orders.",
		}),
		cartRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cart",
				Name:      "rejections_total",
				Help:      "Cart and checkout operations refused by validation.",
			},
			[]string{"reason"},
		),
		persistenceFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "storage",
				Name:      "failures_total",
				Help:      "Failed loads and saves of persisted state.",
			},
			[]string{"key", "op"},
		),
		stateEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "state",
				Name:      "events_total",
				Help:      "State store notifications by kind and key.",
			},
			[]string{"kind", "key"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestTotal,
		m.requestInFlight,
		m.ordersTotal,
		m.revenueTotal,
		m.itemsSoldTotal,
		m.cartRejections,
		m.persistenceFailures,
		m.stateEvents,
	)

	return m
}

// Registry exposes the underlying registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// OrderFinalized records a completed sale.
func (m *Metrics) OrderFinalized(order entity.Order) {
	method := order.PaymentMethod.String()
	m.ordersTotal.WithLabelValues(method).Inc()
	m.revenueTotal.WithLabelValues(method).Add(float64(order.TotalAmount))
	m.itemsSoldTotal.Add(float64(order.ItemsSold()))
}

// CartRejected records a refused cart or checkout operation.
func (m *Metrics) CartRejected(reason string) {
	m.cartRejections.WithLabelValues(reason).Inc()
}

// PersistenceFailed records a failed load or save of a state key.
func (m *Metrics) PersistenceFailed(key, op string) {
	m.persistenceFailures.WithLabelValues(key, op).Inc()
}

// StateChanged records one state notification per touched key.
func (m *Metrics) StateChanged(kind string, keys []string) {
	for _, key := range keys {
		m.stateEvents.WithLabelValues(kind, key).Inc()
	}
}

// Middleware records duration, count and in-flight requests per route.
// The route template is used as label to keep cardinality bounded.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			m.requestInFlight.Inc()
			defer m.requestInFlight.Dec()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			labels := []string{c.Request().Method, route, strconv.Itoa(status)}

			m.requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			m.requestTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}
