package ingestors

import (
	"context"
	"sync"
	"time"

	"hit-reports/internal/models"
	"hit-reports/internal/shared/loggers"
	"hit-reports/internal/stores"
)

// HitLogger accepts one hit, fire-and-forget. Log never blocks on storage and
// returns nothing; persistence failures surface through logs and metrics
// only.
//
//go:generate mockgen -source=hit_buffer.go -destination=./mocks/hit_buffer_mock.go -package=mocks
type HitLogger interface {
	Log(hit *models.Hit)
}

// TimestampSink consumes the min/max Logged timestamps a flushed batch emits
// downstream.
type TimestampSink interface {
	Observe(ts time.Time)
}

// HitBuffer accumulates hits in arrival order and flushes when either the
// count threshold is reached or the wait duration elapses since the first
// unflushed hit, whichever occurs first. A flush drains one consistent
// snapshot, bulk-writes it to the hit store, and then emits the batch's
// earliest and latest Logged timestamps (min first) to the sink.
//
// Buffers are unbounded: if ingestion outpaces flush+persist throughput the
// buffer grows. Known, accepted limitation.
type HitBuffer struct {
	store  stores.HitStore
	sink   TimestampSink
	logger loggers.Logger

	maxCount int
	maxWait  time.Duration

	mu          sync.Mutex
	buf         []*models.Hit
	timer       *time.Timer
	timerActive bool
}

func NewHitBuffer(store stores.HitStore, sink TimestampSink, logger loggers.Logger, maxCount int, maxWait time.Duration) *HitBuffer {
	return &HitBuffer{
		store:    store,
		sink:     sink,
		logger:   logger,
		maxCount: maxCount,
		maxWait:  maxWait,
		buf:      make([]*models.Hit, 0, maxCount),
	}
}

func (b *HitBuffer) Log(hit *models.Hit) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf = append(b.buf, hit)
	if len(b.buf) == 1 && !b.timerActive {
		b.startTimerLocked()
	}
	if len(b.buf) >= b.maxCount {
		b.flushLocked()
	}
}

// Close flushes the tail batch. Log calls after Close still buffer but may
// wait a full timer period before flushing.
func (b *HitBuffer) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flushLocked()
}

func (b *HitBuffer) startTimerLocked() {
	b.timerActive = true
	b.timer = time.AfterFunc(b.maxWait, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.timerActive = false
		b.flushLocked()
	})
}

func (b *HitBuffer) flushLocked() {
	if b.timerActive && b.timer != nil {
		b.timer.Stop()
		b.timerActive = false
	}
	if len(b.buf) == 0 {
		return
	}

	batch := b.buf
	b.buf = make([]*models.Hit, 0, b.maxCount)

	// Fire-and-forget relative to Log.
	go b.persist(batch)
}

func (b *HitBuffer) persist(batch []*models.Hit) {
	min, max := batch[0].Logged, batch[0].Logged
	for _, hit := range batch[1:] {
		if hit.Logged.Before(min) {
			min = hit.Logged
		}
		if hit.Logged.After(max) {
			max = hit.Logged
		}
	}

	if err := b.store.BulkInsert(context.Background(), batch); err != nil {
		// Not retried at this layer; the batch's timestamps are not emitted
		// so no generation window covers unpersisted hits.
		b.logger.Error().
			Err(err).
			Int(loggers.FieldBatchSize, len(batch)).
			Msg("hit batch bulk insert failed")
		metricHitFlushTotal.WithLabelValues(valueFlushFailed).Inc()
		return
	}

	metricHitFlushTotal.WithLabelValues(valueFlushOK).Inc()
	metricHitFlushBatchSize.WithLabelValues().Observe(float64(len(batch)))

	b.sink.Observe(min)
	b.sink.Observe(max)
}
