// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "rurallearn"

// Metrics is a private registry plus the collectors the app updates.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registry *prometheus.Registry

	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	quizCompleted  *prometheus.CounterVec
	librarySearch  prometheus.Histogram
	classroomEvent *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		quizCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_completed_total",
			Help:      "Finished quiz attempts by performance band.",
		}, []string{"band"}),
		librarySearch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "library_search_results",
			Help:      "Number of items returned by a library filter.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		}),
		classroomEvent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classroom_controls_total",
			Help:      "Classroom control changes by control name.",
		}, []string{"control"}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.quizCompleted,
		m.librarySearch,
		m.classroomEvent,
	)
	return m
}

func (m *Metrics) ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) QuizCompleted(band string) {
	if m == nil {
		return
	}
	m.quizCompleted.WithLabelValues(band).Inc()
}

func (m *Metrics) LibrarySearch(results int) {
	if m == nil {
		return
	}
	m.librarySearch.Observe(float64(results))
}

func (m *Metrics) ClassroomControl(control string) {
	if m == nil {
		return
	}
	m.classroomEvent.WithLabelValues(control).Inc()
}
