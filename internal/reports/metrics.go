package reports

import (
	"sales-report/internal/shared/metrics"
)

var (
	metricReportGeneratedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "report_generated_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricReportSellers observes how many sellers (rows) each generated report holds.
	metricReportSellers = metrics.NewHistogram(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "report_sellers",
			Buckets:   metrics.ExponentialBuckets(1, 4, 8),
		},
	)
)
