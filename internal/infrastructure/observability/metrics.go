package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "trip_report"

// Report outcomes recorded by ReportGenerated.
const (
	OutcomeSuccess        = "success"
	OutcomeNoTracks       = "no_tracks"
	OutcomeUpstreamFormat = "upstream_format"
	OutcomeError          = "error"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	reportsGenerated    *prometheus.CounterVec
	reportPoints        prometheus.Histogram
	summarizerDuration  *prometheus.HistogramVec
	archiveFailures     prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(registry)

	return &Metrics{
		registry: registry,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reportsGenerated: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reports",
			Name:      "generated_total",
			Help:      "Report generation attempts by outcome",
		}, []string{"outcome"}),
		reportPoints: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reports",
			Name:      "points",
			Help:      "Located points per generated report",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		summarizerDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "summarizer",
			Name:      "duration_seconds",
			Help:      "Narrative summarizer latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"result"}),
		archiveFailures: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reports",
			Name:      "archive_failures_total",
			Help:      "Reports that could not be copied to object storage",
		}),
	}
}

func (m *Metrics) ObserveHTTP(method, route string, status int, latency time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}

func (m *Metrics) ReportGenerated(outcome string, points int) {
	m.reportsGenerated.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		m.reportPoints.Observe(float64(points))
	}
}

func (m *Metrics) ObserveSummarizer(latency time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.summarizerDuration.WithLabelValues(result).Observe(latency.Seconds())
}

func (m *Metrics) ArchiveFailed() {
	m.archiveFailures.Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
