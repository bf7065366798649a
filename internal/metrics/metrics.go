package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics объединяет prometheus-метрики HTTP-слоя приложения.
type Metrics struct {
	// Counter: общее количество HTTP запросов
	ReqCount *prometheus.CounterVec
	// Histogram: время выполнения запросов
	ReqDuration *prometheus.HistogramVec
	// Counter: количество ошибок по обработчикам
	ErrorCount *prometheus.CounterVec
}

// New создает и регистрирует метрики в переданном регистре.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ReqCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "app_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		ReqDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "app_request_duration_seconds",
				Help: "Request duration seconds",
			},
			[]string{"method", "path"},
		),
		ErrorCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "app_errors_total",
				Help: "Total app errors",
			},
			[]string{"handler", "type"},
		),
	}
	reg.MustRegister(m.ReqCount, m.ReqDuration, m.ErrorCount)
	return m
}
