package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы Prometheus для HTTP сервера и исходящих запросов к Data Layer
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	ClientRequestsTotal   *prometheus.CounterVec
	ClientRequestDuration *prometheus.HistogramVec
}

// New создает и регистрирует коллекторы метрик
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request processing duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		ClientRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "client_requests_total",
			Help:        "Total number of outbound requests to upstream services",
			ConstLabels: constLabels,
		}, []string{"target", "method", "status"}),

		ClientRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "client_request_duration_seconds",
			Help:        "Outbound request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"target", "method"}),
	}
}

// ObserveRequest фиксирует обработанный HTTP запрос
func (m *Metrics) ObserveRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveClientRequest фиксирует исходящий запрос к upstream сервису
func (m *Metrics) ObserveClientRequest(target, method, status string, duration time.Duration) {
	m.ClientRequestsTotal.WithLabelValues(target, method, status).Inc()
	m.ClientRequestDuration.WithLabelValues(target, method).Observe(duration.Seconds())
}
