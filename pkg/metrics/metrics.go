package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus метрик сервиса
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	BookingsCreated  *prometheus.CounterVec
	EmailsDispatched *prometheus.CounterVec
	AIRequests       *prometheus.CounterVec
}

// New создаёт и регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создаёт метрики и регистрирует их в переданном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{}),
		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Number of created bookings by kind (customer, guest)",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		EmailsDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "emails_dispatched_total",
			Help:        "Email notifications by channel and result",
			ConstLabels: constLabels,
		}, []string{"channel", "result"}),
		AIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "ai_chat_requests_total",
			Help:        "AI chat requests by backend and result",
			ConstLabels: constLabels,
		}, []string{"backend", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.BookingsCreated,
		m.EmailsDispatched,
		m.AIRequests,
	)

	return m
}

// ObserveHTTP фиксирует завершённый HTTP запрос
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveQuery фиксирует длительность SQL запроса
func (m *Metrics) ObserveQuery(operation, status string, seconds float64) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation, status).Observe(seconds)
}

// SetPoolStats обновляет gauges connection pool
func (m *Metrics) SetPoolStats(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues().Set(float64(open))
	m.DBInUse.WithLabelValues().Set(float64(inUse))
	m.DBIdle.WithLabelValues().Set(float64(idle))
}

// IncBookingCreated увеличивает счётчик созданных бронирований
func (m *Metrics) IncBookingCreated(kind string) {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(kind).Inc()
}

// IncEmail увеличивает счётчик отправленных писем
func (m *Metrics) IncEmail(channel, result string) {
	if m == nil {
		return
	}
	m.EmailsDispatched.WithLabelValues(channel, result).Inc()
}

// IncAIRequest увеличивает счётчик запросов к AI ассистенту
func (m *Metrics) IncAIRequest(backend, result string) {
	if m == nil {
		return
	}
	m.AIRequests.WithLabelValues(backend, result).Inc()
}
