package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type WorkerMetrics struct {
	registry *prometheus.Registry

	notificationTotal    *prometheus.CounterVec
	notificationDuration *prometheus.HistogramVec
	notificationInFlight prometheus.Gauge
}

func NewWorkerMetrics(service string) *WorkerMetrics {
	registry := prometheus.NewRegistry()

	notificationTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ca",
			Subsystem: "worker",
			Name:      "notification_total",
			Help:      "Total consumed complaint-filed notifications by status.",
		},
		[]string{"service", "status"},
	)
	notificationDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ca",
			Subsystem: "worker",
			Name:      "notification_handle_duration_seconds",
			Help:      "Notification handling duration in seconds by status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "status"},
	)
	notificationInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ca",
			Subsystem: "worker",
			Name:      "notification_in_flight",
			Help:      "Number of in-flight notification handlers.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(notificationTotal, notificationDuration, notificationInFlight)

	return &WorkerMetrics{
		registry:             registry,
		notificationTotal:    notificationTotal,
		notificationDuration: notificationDuration,
		notificationInFlight: notificationInFlight,
	}
}

func (m *WorkerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *WorkerMetrics) StartNotification() {
	m.notificationInFlight.Inc()
}

func (m *WorkerMetrics) FinishNotification(service string, duration time.Duration, err error) {
	m.notificationInFlight.Dec()

	status := "success"
	if err != nil {
		status = "error"
	}

	m.notificationTotal.WithLabelValues(service, status).Inc()
	m.notificationDuration.WithLabelValues(service, status).Observe(duration.Seconds())
}
