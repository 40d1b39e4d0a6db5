// Package metrics holds the Prometheus collectors shared by the API and the worker.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jild"

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds every collector. Collectors are registered on the default
// registry exactly once per process.
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPActiveRequests  prometheus.Gauge

	// Questionnaire wizard
	WizardTransitionsTotal *prometheus.CounterVec
	HealthGateRejections   prometheus.Counter
	WizardSaveConflicts    prometheus.Counter

	// Photo analysis
	InferenceRequestsTotal *prometheus.CounterVec
	InferenceDuration      prometheus.Histogram
	PhotoRejectionsTotal   *prometheus.CounterVec

	// Shop
	CartOperationsTotal *prometheus.CounterVec

	// Push notifications
	NotificationsSentTotal *prometheus.CounterVec

	// Database pool
	DBPoolInUse     prometheus.Gauge
	DBPoolWaitTotal prometheus.Counter
}

// New returns the process-wide metrics, registering them on first use.
//
// Metrics:
//   - jild_http_requests_total{method,route,status}
//   - jild_http_request_duration_seconds{method,route}
//   - jild_http_active_requests
//   - jild_wizard_transitions_total{from,to}
//   - jild_wizard_health_gate_rejections_total
//   - jild_wizard_save_conflicts_total
//   - jild_inference_requests_total{outcome}
//   - jild_inference_duration_seconds
//   - jild_photo_rejections_total{reason}
//   - jild_cart_operations_total{operation}
//   - jild_notifications_sent_total{result}
//   - jild_db_pool_in_use
//   - jild_db_pool_wait_total
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "http_requests_total",
					Help:      "Total HTTP requests by method, route template and status code",
				},
				[]string{"method", "route", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: namespace,
					Name:      "http_request_duration_seconds",
					Help:      "HTTP request latency in seconds",
					Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
				},
				[]string{"method", "route"},
			),
			HTTPActiveRequests: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: namespace,
					Name:      "http_active_requests",
					Help:      "Number of in-flight HTTP requests",
				},
			),

			WizardTransitionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "wizard_transitions_total",
					Help:      "Questionnaire step transitions",
				},
				[]string{"from", "to"},
			),
			HealthGateRejections: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "wizard_health_gate_rejections_total",
					Help:      "Advances refused by the pregnancy / cycle screening",
				},
			),
			WizardSaveConflicts: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "wizard_save_conflicts_total",
					Help:      "Advances refused because a save was already in flight",
				},
			),

			InferenceRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "inference_requests_total",
					Help:      "Calls to the photo inference endpoint by outcome",
				},
				[]string{"outcome"}, // "success", "http_error", "network_error"
			),
			InferenceDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: namespace,
					Name:      "inference_duration_seconds",
					Help:      "Latency of the photo inference endpoint",
					Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
				},
			),
			PhotoRejectionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "photo_rejections_total",
					Help:      "Uploads rejected before any network call",
				},
				[]string{"reason"}, // "not_image", "too_large"
			),

			CartOperationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "cart_operations_total",
					Help:      "Cart mutations by operation",
				},
				[]string{"operation"},
			),

			NotificationsSentTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "notifications_sent_total",
					Help:      "Push notifications by delivery result",
				},
				[]string{"result"}, // "success", "failure"
			),

			DBPoolInUse: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: namespace,
					Name:      "db_pool_in_use",
					Help:      "Postgres connections currently in use",
				},
			),
			DBPoolWaitTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "db_pool_wait_total",
					Help:      "Times a query waited for a free Postgres connection",
				},
			),
		}
	})

	return globalMetrics
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
