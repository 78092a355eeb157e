package monitoring

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scan modes used as the "mode" label.
const (
	ModeGlob  = "glob"
	ModeRegex = "regex"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Scan metrics
	ScansTotal     *prometheus.CounterVec
	ScanDuration   *prometheus.HistogramVec
	EntriesMatched *prometheus.CounterVec

	// Walk metrics
	EntriesExcluded prometheus.Counter
	DirsListed      prometheus.Counter
	LiteralProbes   prometheus.Counter
	UnreadableDirs  prometheus.Counter

	// Bulk operation metrics
	BulkOperations *prometheus.CounterVec
	DeleteFailures prometheus.Counter
}

// WalkStats is the per-scan work reported by the scanners.
type WalkStats struct {
	Matched        int
	Excluded       int
	DirsListed     int
	LiteralProbes  int
	UnreadableDirs int
}

// NewMetrics creates a metrics collector backed by its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ScansTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wildcard_scans_total",
				Help: "Total number of directory scans",
			},
			[]string{"mode", "status"},
		),
		ScanDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wildcard_scan_duration_seconds",
				Help:    "Scan duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"mode"},
		),
		EntriesMatched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wildcard_entries_matched_total",
				Help: "Total number of entries selected by scans",
			},
			[]string{"mode"},
		),

		EntriesExcluded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "wildcard_entries_excluded_total",
				Help: "Total number of included entries removed by exclude patterns",
			},
		),
		DirsListed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "wildcard_directories_listed_total",
				Help: "Total number of directory listings performed",
			},
		),
		LiteralProbes: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "wildcard_literal_probes_total",
				Help: "Total number of single-entry existence checks",
			},
		),
		UnreadableDirs: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "wildcard_unreadable_directories_total",
				Help: "Total number of directories that could not be listed",
			},
		),

		BulkOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wildcard_bulk_operations_total",
				Help: "Total number of copy, delete and archive operations",
			},
			[]string{"op", "status"},
		),
		DeleteFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "wildcard_delete_failures_total",
				Help: "Total number of entries that could not be deleted",
			},
		),
	}
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordScan records one finished scan. A nil receiver is a no-op.
func (m *Metrics) RecordScan(mode, status string, duration time.Duration, stats WalkStats) {
	if m == nil {
		return
	}
	m.ScansTotal.WithLabelValues(mode, status).Inc()
	m.ScanDuration.WithLabelValues(mode).Observe(duration.Seconds())
	m.EntriesMatched.WithLabelValues(mode).Add(float64(stats.Matched))
	m.EntriesExcluded.Add(float64(stats.Excluded))
	m.DirsListed.Add(float64(stats.DirsListed))
	m.LiteralProbes.Add(float64(stats.LiteralProbes))
	m.UnreadableDirs.Add(float64(stats.UnreadableDirs))
}

// RecordBulkOperation records a copy, delete, zip or tar call.
func (m *Metrics) RecordBulkOperation(op, status string) {
	if m == nil {
		return
	}
	m.BulkOperations.WithLabelValues(op, status).Inc()
}

// IncDeleteFailures counts an entry Delete could not remove.
func (m *Metrics) IncDeleteFailures() {
	if m == nil {
		return
	}
	m.DeleteFailures.Inc()
}

// WriteTextfile writes every metric to path in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

// Status maps an error to the "status" label value.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
