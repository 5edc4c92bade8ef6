package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded  *prometheus.CounterVec
	transactionRejections *prometheus.CounterVec
	recordingDuration     prometheus.Histogram
	reportsGenerated      *prometheus.CounterVec
	reportDuration        *prometheus.HistogramVec
	reportNetBalance      *prometheus.GaugeVec
	entitiesChanged       *prometheus.CounterVec
}

// NewPrometheusMetrics registers the finance metrics with reg. A nil reg uses the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		transactionsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transaction recording attempts by outcome",
			},
			[]string{"status"},
		),
		transactionRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_rejections_total",
				Help: "Total number of rejected transactions by error code",
			},
			[]string{"reason"},
		),
		recordingDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_recording_duration_milliseconds",
				Help:    "Transaction recording duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of reports generated by scope",
			},
			[]string{"scope"},
		),
		reportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_seconds",
				Help:    "Report generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"scope"},
		),
		reportNetBalance: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "report_net_balance",
				Help: "Net balance of the most recently generated report",
			},
			[]string{"scope"},
		),
		entitiesChanged: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "entities_changed_total",
				Help: "Total number of person and category changes",
			},
			[]string{"entity", "operation"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction.recorded":
		if status := tags["status"]; status != "" {
			m.transactionsRecorded.WithLabelValues(status).Inc()
		}
	case "transaction.rejected":
		m.transactionRejections.WithLabelValues(tags["reason"]).Inc()
	case "report.generated":
		m.reportsGenerated.WithLabelValues(tags["scope"]).Inc()
	case "entity.changed":
		m.entitiesChanged.WithLabelValues(tags["entity"], tags["operation"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction.recording":
		m.recordingDuration.Observe(float64(duration.Milliseconds()))
	case "report.person":
		m.reportDuration.WithLabelValues("person").Observe(duration.Seconds())
	case "report.category":
		m.reportDuration.WithLabelValues("category").Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "report.net_balance" {
		m.reportNetBalance.WithLabelValues(tags["scope"]).Set(value)
	}
}
