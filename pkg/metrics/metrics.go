package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbPoolOpen      *prometheus.GaugeVec
	dbPoolInUse     *prometheus.GaugeVec
	dbPoolIdle      *prometheus.GaugeVec

	reconcilerRuns      prometheus.Counter
	reconcilerCancelled prometheus.Counter
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		dbPoolOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_open_connections",
			Help:        "Number of open connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbPoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		dbPoolIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_pool_idle_connections",
			Help:        "Number of idle connections in the pool",
			ConstLabels: constLabels,
		}, []string{"db"}),
		reconcilerRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reconciler_runs_total",
			Help:        "Total number of auto-cancellation reconciler runs",
			ConstLabels: constLabels,
		}),
		reconcilerCancelled: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reconciler_cancelled_bookings_total",
			Help:        "Total number of bookings auto-cancelled by the reconciler",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest фиксирует выполненный HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
}

// SetPoolStats обновляет гейджи состояния connection pool
func (m *Metrics) SetPoolStats(dbName string, stats sql.DBStats) {
	m.dbPoolOpen.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
	m.dbPoolInUse.WithLabelValues(dbName).Set(float64(stats.InUse))
	m.dbPoolIdle.WithLabelValues(dbName).Set(float64(stats.Idle))
}

// IncReconcilerRun фиксирует запуск реконсилера
func (m *Metrics) IncReconcilerRun() {
	m.reconcilerRuns.Inc()
}

// AddReconcilerCancelled фиксирует количество автоматически отмененных бронирований
func (m *Metrics) AddReconcilerCancelled(count int) {
	m.reconcilerCancelled.Add(float64(count))
}
