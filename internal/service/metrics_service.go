package service

import (
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates the Prometheus collectors exposed on /metrics.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec

	generationRunDuration prometheus.Histogram
	generationsRun        prometheus.Histogram
	bestHardFitness       prometheus.Gauge
	bestSoftFitness       prometheus.Gauge
	feasibleRuns          prometheus.Counter
	infeasibleRuns        prometheus.Counter
}

// NewMetricsService registers the collectors against a fresh registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	generationRunDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_generation_duration_seconds",
		Help:    "Wall-clock duration of one optimizer run",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
	})

	generationsRun := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_generation_generations",
		Help:    "Number of generations executed before the engine returned",
		Buckets: prometheus.LinearBuckets(0, 10, 16),
	})

	bestHardFitness := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_generation_best_hard",
		Help: "Hard-conflict count of the best individual from the most recent run",
	})

	bestSoftFitness := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "schedule_generation_best_soft",
		Help: "Soft-penalty score of the best individual from the most recent run",
	})

	feasibleRuns := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedule_generation_feasible_total",
		Help: "Total optimizer runs that returned a hard == 0 individual",
	})

	infeasibleRuns := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "schedule_generation_infeasible_total",
		Help: "Total optimizer runs that returned with hard > 0 remaining",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(
		requestDuration, requestTotal,
		generationRunDuration, generationsRun, bestHardFitness, bestSoftFitness,
		feasibleRuns, infeasibleRuns, goroutines,
	)

	return &MetricsService{
		registry:              registry,
		handler:               promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:       requestDuration,
		requestTotal:          requestTotal,
		generationRunDuration: generationRunDuration,
		generationsRun:        generationsRun,
		bestHardFitness:       bestHardFitness,
		bestSoftFitness:       bestSoftFitness,
		feasibleRuns:          feasibleRuns,
		infeasibleRuns:        infeasibleRuns,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one HTTP request's latency and status.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := http.StatusText(status)
	if labelStatus == "" {
		labelStatus = "unknown"
	}
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveScheduleGeneration records one optimizer run's duration and result.
func (m *MetricsService) ObserveScheduleGeneration(duration time.Duration, generationsRun, hard, soft int, feasible bool) {
	if m == nil {
		return
	}
	m.generationRunDuration.Observe(duration.Seconds())
	m.generationsRun.Observe(float64(generationsRun))
	m.bestHardFitness.Set(float64(hard))
	m.bestSoftFitness.Set(float64(soft))
	if feasible {
		m.feasibleRuns.Inc()
	} else {
		m.infeasibleRuns.Inc()
	}
}
