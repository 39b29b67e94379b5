// Package browsers implements a daily per-host rollup of hits by user-agent
// family. It is the one provider that declines small windows with
// NotEnoughInformation instead of producing a noisy report.
package browsers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"hit-reports/internal/models"
	"hit-reports/internal/reports"
	"hit-reports/internal/shared/locks"
	"hit-reports/internal/stores"

	"github.com/mileusna/useragent"
)

// ReportName is the stable identifier this provider registers under.
const ReportName = "browsers"

// fallbackFamily buckets user agents the parser cannot classify.
const fallbackFamily = "Other"

type Provider struct {
	store   stores.BrowserReportStore
	minHits int
	now     func() time.Time
	locks   *locks.KeyedMutex
}

func New(store stores.BrowserReportStore, minHits int) *Provider {
	return &Provider{
		store:   store,
		minHits: minHits,
		now:     time.Now,
		locks:   locks.NewKeyedMutex(),
	}
}

func (p *Provider) Name() string { return ReportName }

// Generate rolls the window's hits into each host's cumulative daily counts.
// A window carrying fewer hits than the configured minimum yields
// NotEnoughInformation without touching storage.
func (p *Provider) Generate(ctx context.Context, hits []*models.Hit) *models.GenerationResult {
	result := &models.GenerationResult{Provider: ReportName}

	if len(hits) < p.minHits {
		result.Outcome = models.OutcomeNotEnoughInformation
		result.Messages = []string{fmt.Sprintf("window has %d hits, need at least %d", len(hits), p.minHits)}
		return result
	}

	byHost := make(map[string]map[string]int64)
	for _, hit := range hits {
		if hit.Host == "" {
			continue
		}
		counts, ok := byHost[hit.Host]
		if !ok {
			counts = make(map[string]int64)
			byHost[hit.Host] = counts
		}
		counts[normalizeUserAgent(hit.UserAgent)]++
	}

	errCh := make(chan error, len(byHost))
	var wg sync.WaitGroup
	for host, counts := range byHost {
		wg.Add(1)
		go func(host string, counts map[string]int64) {
			defer wg.Done()
			if err := p.rollupHost(ctx, host, counts); err != nil {
				errCh <- fmt.Errorf("host %s: %w", host, err)
			}
		}(host, counts)
	}
	wg.Wait()
	close(errCh)

	var messages []string
	for err := range errCh {
		messages = append(messages, err.Error())
	}
	sort.Strings(messages)

	if len(messages) > 0 {
		result.Outcome = models.OutcomeUnknownFailure
		result.Messages = messages
		return result
	}
	result.Outcome = models.OutcomeSuccess
	return result
}

// rollupHost merges window counts into the (date, host) document. Same
// read-modify-write discipline as the logged-in provider: one critical
// section per (date, host).
func (p *Provider) rollupHost(ctx context.Context, host string, counts map[string]int64) error {
	now := p.now()
	date := now.Format(models.DateKey)

	unlock := p.locks.Lock(date + "|" + host)
	defer unlock()

	report, err := p.store.Find(ctx, date, host)
	if err != nil {
		if !errors.Is(err, stores.ErrReportNotFound) {
			return err
		}
		report = models.NewEmptyBrowserReport(date, host)
	}

	for family, count := range counts {
		report.Counts[family] += count
	}
	report.Generated = now

	return p.store.Upsert(ctx, report)
}

// Get serves the most recent rollup for host. The optional "date" query
// parameter (YYYY-MM-DD) selects a day other than today.
func (p *Provider) Get(ctx context.Context, host string, query []reports.QueryParam) (any, error) {
	date := p.now().Format(models.DateKey)
	for _, param := range query {
		if strings.EqualFold(param.Key, "date") && param.Value != "" {
			date = param.Value
		}
	}

	report, err := p.store.Find(ctx, date, host)
	if err != nil {
		if errors.Is(err, stores.ErrReportNotFound) {
			return nil, errReportMissing(date, host)
		}
		return nil, errInternalStoreFailed(err)
	}
	return report, nil
}

// normalizeUserAgent parses the user agent to its browser family, falling
// back to a catch-all bucket for blank or unparseable strings.
func normalizeUserAgent(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return fallbackFamily
	}
	parsed := useragent.Parse(ua)
	if parsed.Name == "" {
		return fallbackFamily
	}
	return parsed.Name
}
