package reports

import (
	"hit-reports/internal/shared/metrics"
)

var (
	metricProviderRunTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReports,
			Name:      "provider_run_total",
		},
		[]string{"provider", "outcome"},
	)

	metricGenerationRunSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReports,
			Name:      "generation_run_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	)
)
