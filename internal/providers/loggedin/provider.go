// Package loggedin implements the "currently logged in users" report: a
// stateful session-reconciliation engine that merges each generation window's
// activity with the day's previously persisted segment, per host.
package loggedin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"hit-reports/internal/events"
	"hit-reports/internal/models"
	"hit-reports/internal/reports"
	"hit-reports/internal/shared/locks"
	"hit-reports/internal/shared/loggers"
	"hit-reports/internal/stores"
	"hit-reports/internal/streams"
)

// ReportName is the stable identifier this provider registers under.
const ReportName = "logged_in"

type Provider struct {
	store      stores.LoggedInReportStore
	publisher  streams.ReportPublisher
	logoutPath string
	inactivity time.Duration
	now        func() time.Time
	locks      *locks.KeyedMutex
}

func New(store stores.LoggedInReportStore, publisher streams.ReportPublisher, logoutPath string, inactivity time.Duration) *Provider {
	return &Provider{
		store:      store,
		publisher:  publisher,
		logoutPath: logoutPath,
		inactivity: inactivity,
		now:        time.Now,
		locks:      locks.NewKeyedMutex(),
	}
}

func (p *Provider) Name() string { return ReportName }

// Generate reconciles every host in the window concurrently. Hosts share no
// mutable state; a failing host does not stop the others, and per-host
// failures are reported together as one UnknownFailure result.
func (p *Provider) Generate(ctx context.Context, hits []*models.Hit) *models.GenerationResult {
	result := &models.GenerationResult{Provider: ReportName}

	byHost := make(map[string][]*models.Hit)
	for _, hit := range hits {
		if hit.Host == "" {
			continue
		}
		byHost[hit.Host] = append(byHost[hit.Host], hit)
	}

	errCh := make(chan error, len(byHost))
	var wg sync.WaitGroup
	for host, hostHits := range byHost {
		wg.Add(1)
		go func(host string, hostHits []*models.Hit) {
			defer wg.Done()
			if err := p.reconcileHost(ctx, host, hostHits); err != nil {
				errCh <- fmt.Errorf("host %s: %w", host, err)
			}
		}(host, hostHits)
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

// reconcileHost runs the session-reconciliation algorithm for one host:
//
//  1. distinct non-empty identities in the window are currently active;
//  2. a logout hit confirms a logout only when no strictly-later non-logout
//     hit exists for the same identity (re-entry keeps the session alive);
//  3. window candidates get FirstHit/LastHit/TotalHits from their hits;
//  4. the day's last persisted segment is merged in: users inactive in this
//     window past the inactivity timeout are evicted, the rest are carried
//     forward or merged cumulatively;
//  5. a new segment is appended and the report upserted.
//
// The read-modify-write around the persisted report is a critical section per
// (date, host) so overlapping generation runs serialize at the upsert.
func (p *Provider) reconcileHost(ctx context.Context, host string, hits []*models.Hit) error {
	now := p.now()
	date := now.Format(models.DateKey)

	active := make(map[string]struct{})
	for _, hit := range hits {
		if hit.Identity != "" {
			active[hit.Identity] = struct{}{}
		}
	}
	loggedOut := p.confirmedLogouts(hits)

	users := make(map[string]*models.LoggedInUser)
	for identity := range active {
		if _, out := loggedOut[identity]; out {
			continue
		}
		users[identity] = summarizeUser(identity, hits)
	}

	unlock := p.locks.Lock(date + "|" + host)
	defer unlock()

	report, err := p.store.Find(ctx, date, host)
	if err != nil {
		if !errors.Is(err, stores.ErrReportNotFound) {
			return err
		}
		report = &models.LoggedInReport{Date: date, Host: host}
	}

	if prev := report.LastSegment(); prev != nil {
		for _, prior := range prev.Users {
			_, isActive := active[prior.Identity]
			if !isActive && prior.LastHit.Add(p.inactivity).Before(now) {
				// Inactivity timeout: forced logout.
				delete(users, prior.Identity)
				continue
			}
			if _, out := loggedOut[prior.Identity]; out {
				continue
			}
			current, ok := users[prior.Identity]
			if !ok {
				carried := prior
				users[prior.Identity] = &carried
				continue
			}
			// Cumulative session: the new window keeps its FirstHit, the
			// session keeps its running totals.
			if prior.LastHit.After(current.LastHit) {
				current.LastHit = prior.LastHit
			}
			current.TotalHits += prior.TotalHits
		}
	}

	segment := models.LoggedInSegment{Generated: now}
	for _, user := range users {
		if user.TotalHits > 0 {
			user.AveragePerHit = user.LastHit.Sub(user.FirstHit) / time.Duration(user.TotalHits)
		}
		segment.Users = append(segment.Users, *user)
	}
	sort.Slice(segment.Users, func(i, j int) bool {
		return segment.Users[i].Identity < segment.Users[j].Identity
	})
	segment.Total = len(segment.Users)

	report.Segments = append(report.Segments, segment)
	if err := p.store.Upsert(ctx, report); err != nil {
		return err
	}

	metricLoggedInUsers.WithLabelValues(host).Set(float64(segment.Total))
	p.publish(ctx, report, now)
	return nil
}

// confirmedLogouts returns the identities whose logout hit has no later
// non-logout hit in the window. A logout is provisional until the window
// shows no re-entry.
func (p *Provider) confirmedLogouts(hits []*models.Hit) map[string]struct{} {
	confirmed := make(map[string]struct{})
	for _, logout := range hits {
		if logout.Identity == "" || !strings.EqualFold(logout.Path, p.logoutPath) {
			continue
		}
		reentered := false
		for _, hit := range hits {
			if hit.Identity == logout.Identity &&
				hit.Logged.After(logout.Logged) &&
				!strings.EqualFold(hit.Path, p.logoutPath) {
				reentered = true
				break
			}
		}
		if !reentered {
			confirmed[logout.Identity] = struct{}{}
		}
	}
	return confirmed
}

func summarizeUser(identity string, hits []*models.Hit) *models.LoggedInUser {
	user := &models.LoggedInUser{Identity: identity}
	for _, hit := range hits {
		if hit.Identity != identity {
			continue
		}
		if user.TotalHits == 0 || hit.Logged.Before(user.FirstHit) {
			user.FirstHit = hit.Logged
		}
		if user.TotalHits == 0 || hit.Logged.After(user.LastHit) {
			user.LastHit = hit.Logged
		}
		user.TotalHits++
	}
	return user
}

func (p *Provider) publish(ctx context.Context, report *models.LoggedInReport, generated time.Time) {
	payload, err := json.Marshal(report)
	if err != nil {
		loggers.Ctx(ctx).Error().Err(err).Str(loggers.FieldHost, report.Host).Msg("failed to marshal logged-in report for push")
		return
	}
	err = p.publisher.Publish(ctx, events.ReportEvent{
		Host:      report.Host,
		Provider:  ReportName,
		Generated: generated,
		Payload:   payload,
	})
	if err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Str(loggers.FieldHost, report.Host).Msg("failed to publish logged-in report")
	}
}

// Get serves the most recently generated report for host. The optional "date"
// query parameter (YYYY-MM-DD) selects a day other than today.
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
