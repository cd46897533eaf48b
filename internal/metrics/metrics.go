// Package metrics exposes Prometheus collectors for the lead finder service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadfinder_http_requests_total",
			Help: "Total number of HTTP requests, labeled by method and code.",
		},
		[]string{"method", "code"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leadfinder_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies, labeled by method and route.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 15, 60},
		},
		[]string{"method", "route"},
	)

	scanQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadfinder_scan_queries_total",
			Help: "Total number of fanned-out places queries, labeled by status.",
		},
		[]string{"status"},
	)

	scanPlacesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leadfinder_scan_places_total",
			Help: "Total number of place detail records fetched.",
		},
	)

	scanActiveWorkers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "leadfinder_scan_active_workers",
			Help: "Number of scan workers currently running a query.",
		},
	)

	enrichmentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadfinder_enrichment_total",
			Help: "Total number of owner lookups, labeled by status.",
		},
		[]string{"status"},
	)

	sitegenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadfinder_sitegen_total",
			Help: "Total number of generated landing pages, labeled by provider and outcome.",
		},
		[]string{"provider", "outcome"},
	)
)

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveScanQuery counts a finished places query.
func ObserveScanQuery(status string) {
	scanQueriesTotal.WithLabelValues(status).Inc()
}

// AddScanPlaces counts fetched place detail records.
func AddScanPlaces(n int) {
	if n > 0 {
		scanPlacesTotal.Add(float64(n))
	}
}

// IncActiveWorkers increments the active workers gauge.
func IncActiveWorkers() {
	scanActiveWorkers.Inc()
}

// DecActiveWorkers decrements the active workers gauge.
func DecActiveWorkers() {
	scanActiveWorkers.Dec()
}

// ObserveEnrichment counts an owner lookup outcome.
func ObserveEnrichment(status string) {
	enrichmentTotal.WithLabelValues(status).Inc()
}

// ObserveSiteGeneration counts a generated page.
func ObserveSiteGeneration(provider, outcome string) {
	sitegenTotal.WithLabelValues(provider, outcome).Inc()
}
