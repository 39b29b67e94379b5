package streams

import (
	"context"

	"hit-reports/internal/events"
)

// ReportPublisher hands finished reports to the push stream.
//
// Events are partitioned by host: all reports for one host flow through the
// same partition and reach subscribers in publish order, while different
// hosts fan out across partitions.
//
//go:generate mockgen -source=report_publisher.go -destination=./mocks/report_publisher_mock.go -package=mocks
type ReportPublisher interface {
	Publish(ctx context.Context, event events.ReportEvent) error
}

type reportPublisher struct {
	queue *PartitionedQueue[events.ReportEvent]
}

func NewReportPublisher(queue *PartitionedQueue[events.ReportEvent]) ReportPublisher {
	return &reportPublisher{queue: queue}
}

func (p *reportPublisher) Publish(ctx context.Context, event events.ReportEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	p.queue.Publish(event.Host, event)
	metricReportPublishedTotal.WithLabelValues(event.Provider).Inc()
	return nil
}
