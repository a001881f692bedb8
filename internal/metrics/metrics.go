// Package metrics provides Prometheus metrics for the naming service
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the naming service
type Metrics struct {
	// HTTP request metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Naming pipeline metrics
	FilenamesGeneratedTotal prometheus.Counter
	FilenamesParsedTotal    *prometheus.CounterVec
	TruncationsTotal        prometheus.Counter
	CitationEncodesTotal    *prometheus.CounterVec

	// Sequence metrics
	SequenceIncrementsTotal *prometheus.CounterVec
	SequenceErrorsTotal     prometheus.Counter

	// Registry metrics
	RegistryWritesTotal  prometheus.Counter
	RegistryRecordsTotal prometheus.Gauge

	// Server metrics
	ServerUptimeSeconds prometheus.Gauge
	ServerStartTime     time.Time
}

// NewMetrics creates and registers all metrics against the given registerer.
// Tests pass a fresh prometheus.NewRegistry to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	// HTTP request metrics
	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexname_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lexname_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	m.HTTPRequestsInFlight = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "lexname_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Naming pipeline metrics
	m.FilenamesGeneratedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "lexname_filenames_generated_total",
			Help: "Total number of filenames generated",
		},
	)

	m.FilenamesParsedTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexname_filenames_parsed_total",
			Help: "Total number of filename parse attempts",
		},
		[]string{"outcome"},
	)

	m.TruncationsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "lexname_truncations_total",
			Help: "Total number of filenames shortened by the truncation cascade",
		},
	)

	m.CitationEncodesTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexname_citation_encodes_total",
			Help: "Total number of citation encodes by outcome",
		},
		[]string{"outcome"},
	)

	// Sequence metrics
	m.SequenceIncrementsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexname_sequence_increments_total",
			Help: "Total number of sequence counter increments",
		},
		[]string{"scope"},
	)

	m.SequenceErrorsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "lexname_sequence_errors_total",
			Help: "Total number of sequence store failures",
		},
	)

	// Registry metrics
	m.RegistryWritesTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "lexname_registry_writes_total",
			Help: "Total number of registry record writes",
		},
	)

	m.RegistryRecordsTotal = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "lexname_registry_records_total",
			Help: "Total number of records in the registry",
		},
	)

	// Server metrics
	m.ServerUptimeSeconds = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "lexname_server_uptime_seconds",
			Help: "Server uptime in seconds",
		},
	)

	// Start uptime updater
	go m.updateUptime()

	return m
}

// updateUptime periodically updates the server uptime metric
func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.ServerUptimeSeconds.Set(time.Since(m.ServerStartTime).Seconds())
	}
}

// RecordHTTPRequest records a completed HTTP request
func (m *Metrics) RecordHTTPRequest(route string, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordParse records a filename parse attempt
func (m *Metrics) RecordParse(ok bool) {
	outcome := "match"
	if !ok {
		outcome = "no_match"
	}
	m.FilenamesParsedTotal.WithLabelValues(outcome).Inc()
}

// RecordCitationEncode records a citation encode by reversibility
func (m *Metrics) RecordCitationEncode(reversible bool) {
	outcome := "pattern"
	if !reversible {
		outcome = "fallback"
	}
	m.CitationEncodesTotal.WithLabelValues(outcome).Inc()
}
