package streams

import (
	"hit-reports/internal/shared/metrics"
)

var (
	metricReportPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "report_published_total",
		},
		[]string{"provider"},
	)

	metricReportDeliveredTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "report_delivered_total",
		},
		[]string{"provider"},
	)
)
