package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"hit-reports/internal/events"
	"hit-reports/internal/shared/loggers"
)

// ReportDispatcher drains the report queue and relays each event to the
// subscribers registered for its host.
//
//go:generate mockgen -source=report_dispatcher.go -destination=./mocks/report_dispatcher_mock.go -package=mocks
type ReportDispatcher interface {
	Start(ctx context.Context)
	Stop()
}

type reportDispatcher struct {
	queue    *PartitionedQueue[events.ReportEvent]
	registry *SubscriberRegistry

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewReportDispatcher(queue *PartitionedQueue[events.ReportEvent], registry *SubscriberRegistry, logger loggers.Logger) ReportDispatcher {
	return &reportDispatcher{
		queue:    queue,
		registry: registry,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

// Start spawns 1 worker goroutine per partition. Host-keyed partitioning
// guarantees per-host delivery order with a single worker per lane.
func (d *reportDispatcher) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < d.queue.PartitionCount(); partitionIndex++ {
		ch := d.queue.Partition(partitionIndex)
		d.wg.Add(1)
		go func(partitionIndex int, ch <-chan events.ReportEvent) {
			defer d.wg.Done()
			d.runPartitionWorker(ctx, partitionIndex, ch)
		}(partitionIndex, ch)
	}
}

// Stop waits for workers to drain (best called during app shutdown).
func (d *reportDispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopCh) })
	d.wg.Wait()
}

func (d *reportDispatcher) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.ReportEvent) {
	logger := d.logger.With().
		Str(loggers.FieldPartitionId, fmt.Sprintf("%d", partitionIndex)).
		Logger()

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			func() {
				defer func() {
					if r := recover(); r != nil {
						logger.Error().
							Bytes(loggers.FieldErrorStack, debug.Stack()).
							Msgf("dispatcher panic recovered: %v", r)
					}
				}()
				d.deliver(&logger, event)
			}()
		}
	}
}

func (d *reportDispatcher) deliver(logger *loggers.Logger, event events.ReportEvent) {
	for _, sub := range d.registry.SubscribersFor(event.Host) {
		if err := sub.Send(event); err != nil {
			logger.Warn().
				Err(err).
				Str(loggers.FieldHost, event.Host).
				Str(loggers.FieldProvider, event.Provider).
				Msg("dropping dead subscriber")
			d.registry.Unregister(event.Host, sub)
			sub.Close()
			continue
		}
		metricReportDeliveredTotal.WithLabelValues(event.Provider).Inc()
	}
}
