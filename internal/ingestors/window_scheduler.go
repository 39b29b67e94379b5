package ingestors

import (
	"context"
	"sync"
	"time"

	"hit-reports/internal/reports"
	"hit-reports/internal/shared/loggers"
	"hit-reports/internal/shared/ulid"
)

// WindowScheduler accumulates the timestamps emitted by the hit buffer and,
// on its own count/time threshold, computes the [min,max] window and kicks
// off report generation as a detached background task. The ingestion path
// never blocks on generation; generation failures are logged, not surfaced.
//
// The two-stage buffering (hit buffer then timestamp buffer) decouples
// storage-write frequency from report-generation frequency: one generation
// run aggregates several storage flushes' worth of data.
type WindowScheduler struct {
	generator reports.Generator
	logger    loggers.Logger

	maxCount int
	maxWait  time.Duration

	mu          sync.Mutex
	buf         []time.Time
	timer       *time.Timer
	timerActive bool
}

func NewWindowScheduler(generator reports.Generator, logger loggers.Logger, maxCount int, maxWait time.Duration) *WindowScheduler {
	return &WindowScheduler{
		generator: generator,
		logger:    logger,
		maxCount:  maxCount,
		maxWait:   maxWait,
		buf:       make([]time.Time, 0, maxCount),
	}
}

// Observe consumes one timestamp from the hit buffer's flush stream.
func (s *WindowScheduler) Observe(ts time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf = append(s.buf, ts)
	if len(s.buf) == 1 && !s.timerActive {
		s.startTimerLocked()
	}
	if len(s.buf) >= s.maxCount {
		s.flushLocked()
	}
}

// Close flushes buffered timestamps, triggering a final generation run if any
// are pending.
func (s *WindowScheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()
}

func (s *WindowScheduler) startTimerLocked() {
	s.timerActive = true
	s.timer = time.AfterFunc(s.maxWait, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.timerActive = false
		s.flushLocked()
	})
}

func (s *WindowScheduler) flushLocked() {
	if s.timerActive && s.timer != nil {
		s.timer.Stop()
		s.timerActive = false
	}
	if len(s.buf) == 0 {
		return
	}

	startWindow, endWindow := s.buf[0], s.buf[0]
	for _, ts := range s.buf[1:] {
		if ts.Before(startWindow) {
			startWindow = ts
		}
		if ts.After(endWindow) {
			endWindow = ts
		}
	}
	s.buf = make([]time.Time, 0, s.maxCount)

	// Spawn an independent unit of work; the caller does not await it.
	go s.generate(startWindow, endWindow)
}

func (s *WindowScheduler) generate(startWindow, endWindow time.Time) {
	ctx := s.logger.With().
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Logger().WithContext(context.Background())

	metricGenerationTriggeredTotal.WithLabelValues().Inc()

	summary, svcErr := s.generator.Generate(ctx, startWindow, endWindow)
	if svcErr != nil {
		s.logger.Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Time(loggers.FieldWindowStart, startWindow).
			Time(loggers.FieldWindowEnd, endWindow).
			Msg("report generation failed")
		return
	}

	s.logger.Info().
		Time(loggers.FieldWindowStart, startWindow).
		Time(loggers.FieldWindowEnd, endWindow).
		Int64(loggers.FieldDuration, summary.Duration.Milliseconds()).
		Msg("report generation completed")
}
