package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"volumetrico/internal/domain"
)

// Metrics holds the Prometheus collectors updated by the validation service.
type Metrics struct {
	ReportsTotal      *prometheus.CounterVec
	ErrorRecordsTotal *prometheus.CounterVec
	Duration          prometheus.Histogram
	ReportBytes       prometheus.Histogram
}

// Outcome labels for ReportsTotal.
const (
	outcomeValid    = "valid"
	outcomeInvalid  = "invalid"
	outcomeRejected = "rejected"
)

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ReportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "volumetrico",
				Name:      "reports_validated_total",
				Help:      "Total number of reports processed, by outcome",
			},
			[]string{"outcome"},
		),
		ErrorRecordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "volumetrico",
				Name:      "error_records_total",
				Help:      "Total number of validation error records, by error type",
			},
			[]string{"type_error"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "volumetrico",
				Name:      "validation_duration_seconds",
				Help:      "Time spent decoding and validating one report",
				Buckets:   prometheus.DefBuckets,
			},
		),
		ReportBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "volumetrico",
				Name:      "report_size_bytes",
				Help:      "Size of the validated report bodies",
				Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.ReportsTotal, m.ErrorRecordsTotal, m.Duration, m.ReportBytes)
	}
	return m
}

func (m *Metrics) observe(report *domain.ValidationReport, size int, seconds float64) {
	if m == nil {
		return
	}
	m.Duration.Observe(seconds)
	m.ReportBytes.Observe(float64(size))
	if report.Valid {
		m.ReportsTotal.WithLabelValues(outcomeValid).Inc()
	} else {
		m.ReportsTotal.WithLabelValues(outcomeInvalid).Inc()
	}
	for _, r := range report.Errors {
		m.ErrorRecordsTotal.WithLabelValues(r.Kind.String()).Inc()
	}
}

func (m *Metrics) rejected() {
	if m == nil {
		return
	}
	m.ReportsTotal.WithLabelValues(outcomeRejected).Inc()
}
