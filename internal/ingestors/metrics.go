package ingestors

import (
	"hit-reports/internal/shared/metrics"
)

const (
	valueFlushOK     = "ok"
	valueFlushFailed = "failed"
)

var (
	metricHitIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "hit_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricHitFlushTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "hit_flush_total",
		},
		[]string{"result"},
	)

	metricHitFlushBatchSize = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "hit_flush_batch_size",
			Buckets:   []float64{1, 10, 50, 100, 250, 500, 1000, 2500},
		},
		[]string{},
	)

	metricGenerationTriggeredTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "generation_triggered_total",
		},
		[]string{},
	)
)
