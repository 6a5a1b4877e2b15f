package journal

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for a journal writer
type Metrics struct {
	entriesAppended prometheus.Counter
	bytesWritten    prometheus.Counter
	bufferFlushes   prometheus.Counter
	flushErrors     prometheus.Counter
	syncDuration    prometheus.Histogram
}

// NewMetrics creates and registers journal metrics with reg. Pass
// prometheus.DefaultRegisterer for process-global metrics; callers
// expose them however their process serves /metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		entriesAppended: factory.NewCounter(prometheus.CounterOpts{
			Name: "muninn_journal_entries_appended_total",
			Help: "Total number of entries appended to the journal",
		}),

		bytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "muninn_journal_bytes_written_total",
			Help: "Total number of framed bytes produced by append calls",
		}),

		bufferFlushes: factory.NewCounter(prometheus.CounterOpts{
			Name: "muninn_journal_buffer_flushes_total",
			Help: "Total number of write buffer flushes to the sink",
		}),

		flushErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "muninn_journal_flush_errors_total",
			Help: "Total number of failed write buffer flushes",
		}),

		syncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "muninn_journal_sync_duration_seconds",
			Help:    "Duration of sink durability barriers in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordAppend records a completed entry append
func (m *Metrics) RecordAppend(frameBytes int) {
	m.entriesAppended.Inc()
	m.bytesWritten.Add(float64(frameBytes))
}

// RecordFlush records a successful buffer flush
func (m *Metrics) RecordFlush() {
	m.bufferFlushes.Inc()
}

// RecordFlushError records a failed buffer flush
func (m *Metrics) RecordFlushError() {
	m.flushErrors.Inc()
}

// RecordSync records a sink durability barrier
func (m *Metrics) RecordSync(duration time.Duration) {
	m.syncDuration.Observe(duration.Seconds())
}
