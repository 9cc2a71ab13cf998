package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbQueryErrors   *prometheus.CounterVec

	ordersCreated  prometheus.Counter
	mirrorUpdates  prometheus.Counter
	mirrorFailures prometheus.Counter
}

// New регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		dbQueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: labels,
		}, []string{"operation"}),

		ordersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "orders_created_total",
			Help:        "Total number of successfully created wash orders",
			ConstLabels: labels,
		}),

		mirrorUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "order_mirror_updates_total",
			Help:        "Mirror upserts that took the update branch on key conflict",
			ConstLabels: labels,
		}),

		mirrorFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "order_mirror_failures_total",
			Help:        "Mirror writes that failed for a non-conflict reason (booking still succeeded)",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.dbQueryErrors.WithLabelValues(operation).Inc()
	}
}

// IncOrdersCreated увеличивает счетчик созданных заказов
func (m *Metrics) IncOrdersCreated() {
	m.ordersCreated.Inc()
}

// IncMirrorUpdates увеличивает счетчик update-ветки зеркального upsert
func (m *Metrics) IncMirrorUpdates() {
	m.mirrorUpdates.Inc()
}

// IncMirrorFailures увеличивает счетчик проглоченных ошибок зеркальной записи
func (m *Metrics) IncMirrorFailures() {
	m.mirrorFailures.Inc()
}
