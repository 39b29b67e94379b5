package reports

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"hit-reports/internal/models"
	"hit-reports/internal/shared/loggers"
	"hit-reports/internal/shared/svcerrors"
	"hit-reports/internal/stores"
)

// Generator triggers one report-generation run over an inclusive window.
//
//go:generate mockgen -source=engine.go -destination=./mocks/engine_mock.go -package=mocks
type Generator interface {
	Generate(ctx context.Context, startWindow, endWindow time.Time) (*models.GenerationSummary, *svcerrors.ServiceError)
}

// Engine loads the window's hits once, runs every enabled provider
// concurrently against the identical set, and persists one summary per run.
// Provider failures are isolated: a panicking provider yields an
// UnknownFailure result and never aborts its siblings. Storage failures are
// not masked; they fail the run.
type Engine struct {
	registry     *Registry
	hitStore     stores.HitStore
	summaryStore stores.SummaryStore
	now          func() time.Time
}

func NewEngine(registry *Registry, hitStore stores.HitStore, summaryStore stores.SummaryStore) *Engine {
	return &Engine{
		registry:     registry,
		hitStore:     hitStore,
		summaryStore: summaryStore,
		now:          time.Now,
	}
}

func (e *Engine) Generate(ctx context.Context, startWindow, endWindow time.Time) (*models.GenerationSummary, *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	runAt := e.now()

	// Providers need a fixed in-memory set; materialize the whole window.
	hits, err := e.hitStore.QueryRange(ctx, startWindow, endWindow)
	if err != nil {
		return nil, errInternalHitStoreFailed(err)
	}
	logger.Debug().
		Time(loggers.FieldWindowStart, startWindow).
		Time(loggers.FieldWindowEnd, endWindow).
		Int(loggers.FieldBatchSize, len(hits)).
		Msg("loaded generation window")

	providers := e.registry.Providers()
	resultCh := make(chan *models.GenerationResult, len(providers))

	var wg sync.WaitGroup
	for _, provider := range providers {
		if !e.registry.Enabled(provider.Name()) {
			resultCh <- &models.GenerationResult{
				Provider: provider.Name(),
				Outcome:  models.OutcomeNotRun,
				Messages: []string{"provider disabled"},
			}
			continue
		}

		wg.Add(1)
		go func(provider Provider) {
			defer wg.Done()
			resultCh <- e.runProvider(ctx, provider, hits)
		}(provider)
	}
	wg.Wait()
	close(resultCh)

	summary := &models.GenerationSummary{
		RunAt:    runAt,
		Duration: e.now().Sub(runAt),
		Results:  make([]models.GenerationResult, 0, len(providers)),
	}
	for result := range resultCh {
		summary.Results = append(summary.Results, *result)
		metricProviderRunTotal.WithLabelValues(result.Provider, string(result.Outcome)).Inc()
	}

	if err := e.summaryStore.Append(ctx, summary); err != nil {
		return nil, errInternalSummaryStoreFailed(err)
	}
	metricGenerationRunSeconds.WithLabelValues().Observe(summary.Duration.Seconds())

	return summary, nil
}

// runProvider invokes one provider with panic isolation. A panic becomes an
// UnknownFailure result carrying the panic message and stack.
func (e *Engine) runProvider(ctx context.Context, provider Provider, hits []*models.Hit) (result *models.GenerationResult) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Str(loggers.FieldProvider, provider.Name()).
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("provider panic recovered: %v", r)

			result = &models.GenerationResult{
				Provider: provider.Name(),
				Outcome:  models.OutcomeUnknownFailure,
				Messages: []string{fmt.Sprintf("%v", r), string(debug.Stack())},
			}
		}
	}()

	return provider.Generate(ctx, hits)
}
