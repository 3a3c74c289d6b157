package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	RunCount          prometheus.Counter
	RecordsIngested   prometheus.Counter
	DigestsSent       prometheus.Counter
	DeliveryFailures  prometheus.Counter
	FormatterFailures prometheus.Counter
	RunDuration       prometheus.Histogram
	UnsentRecords     prometheus.Gauge
}

// NewMetrics creates new Prometheus metrics
func NewMetrics() *Metrics {
	return &Metrics{
		RunCount: promauto.NewCounter(prometheus.CounterOpts{
			Name: "scholarship_tracker_run_count",
			Help: "Total number of digest runs started",
		}),
		RecordsIngested: promauto.NewCounter(prometheus.CounterOpts{
			Name: "scholarship_tracker_records_ingested",
			Help: "Total number of scholarship records ingested",
		}),
		DigestsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "scholarship_tracker_digests_sent",
			Help: "Total number of digest emails delivered",
		}),
		DeliveryFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "scholarship_tracker_delivery_failures",
			Help: "Total number of failed digest deliveries",
		}),
		FormatterFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "scholarship_tracker_formatter_failures",
			Help: "Total number of failed formatter calls",
		}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "scholarship_tracker_run_duration_seconds",
			Help:    "Time spent per digest run",
			Buckets: prometheus.DefBuckets,
		}),
		UnsentRecords: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "scholarship_tracker_unsent_records",
			Help: "Number of unsent records within the retention window",
		}),
	}
}
