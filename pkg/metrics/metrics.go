package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса.
// Методы безопасны для nil-получателя: при выключенных метриках передаётся nil.
type Metrics struct {
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	HotelAPIRequests  *prometheus.CounterVec
	HotelAPIDuration  *prometheus.HistogramVec
	Submissions       *prometheus.CounterVec
	ReceiptsGenerated prometheus.Counter
	ActiveSessions    prometheus.Gauge
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном реестре (для тестов)
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		HotelAPIRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "hotel_api_requests_total",
			Help:        "Total number of calls to the hotel API",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
		HotelAPIDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "hotel_api_request_duration_seconds",
			Help:        "Hotel API call duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "profile_submissions_total",
			Help:        "Incident and payment submissions by result",
			ConstLabels: constLabels,
		}, []string{"flow", "result"}),
		ReceiptsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name:        "profile_receipts_generated_total",
			Help:        "Number of generated PDF receipts",
			ConstLabels: constLabels,
		}),
		ActiveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "profile_sessions_active",
			Help:        "Page sessions held by the in-memory store",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTP записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTP(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveHotelAPI записывает метрики вызова hotel API
func (m *Metrics) ObserveHotelAPI(operation, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.HotelAPIRequests.WithLabelValues(operation, result).Inc()
	m.HotelAPIDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// IncSubmission увеличивает счётчик отправок формы
func (m *Metrics) IncSubmission(flow, result string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(flow, result).Inc()
}

// IncReceipt увеличивает счётчик сгенерированных квитанций
func (m *Metrics) IncReceipt() {
	if m == nil {
		return
	}
	m.ReceiptsGenerated.Inc()
}

// SetActiveSessions обновляет число активных сессий
func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}
