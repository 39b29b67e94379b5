package ingestors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"hit-reports/internal/models"
	"hit-reports/internal/shared/loggers"
	"hit-reports/internal/shared/metrics"
	"hit-reports/internal/shared/ulid"
	"hit-reports/internal/shared/validators"
)

const (
	maxHitBytes     = 64 * 1024
	maxPathLen      = 2048
	maxUserAgentLen = 1024
)

// hitPayload is the wire shape the HTTP interception collaborator posts. The
// collaborator timestamps request start/end and derives the duration; this
// layer only validates and normalizes.
type hitPayload struct {
	ID            string    `json:"id"`
	Logged        time.Time `json:"logged" validate:"required"`
	Host          string    `json:"host" validate:"required"`
	Path          string    `json:"path" validate:"required"`
	Method        string    `json:"method" validate:"required"`
	StatusCode    int       `json:"statusCode" validate:"min=0,max=999"`
	SubStatusCode int       `json:"subStatusCode" validate:"min=0"`
	DurationMs    int64     `json:"durationMs" validate:"min=0"`
	Identity      string    `json:"identity"`
	UserAgent     string    `json:"userAgent"`
}

// HitService is the ingestion boundary: it turns an inbound payload into a
// validated Hit and hands it to the buffer. The hand-off is fire-and-forget;
// a 202 from the HTTP layer only acknowledges buffering.
//
//go:generate mockgen -source=hit_service.go -destination=./mocks/hit_service_mock.go -package=mocks
type HitService interface {
	Ingest(ctx context.Context, r io.Reader) (*models.Hit, error)
}

type hitService struct {
	buffer   HitLogger
	validate *validators.Validate
}

func NewHitService(buffer HitLogger) HitService {
	return &hitService{buffer: buffer, validate: validators.New()}
}

func (s *hitService) Ingest(ctx context.Context, r io.Reader) (*models.Hit, error) {
	logger := loggers.Ctx(ctx)

	hit, err := s.parseHit(r)
	if err != nil {
		metricHitIngestedTotal.WithLabelValues(codeValidationFailed).Inc()
		return nil, err
	}

	s.buffer.Log(hit)
	metricHitIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()

	logger.Debug().
		Str(loggers.FieldHost, hit.Host).
		Str(loggers.FieldHttpPath, hit.Path).
		Msg("hit buffered")
	return hit, nil
}

func (s *hitService) parseHit(r io.Reader) (*models.Hit, error) {
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxHitBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxHitBytes {
		return nil, errValidationFailed("hit too large: must be <= 64KB", nil)
	}

	var payload hitPayload
	if err := json.Unmarshal(buf, &payload); err != nil {
		return nil, errValidationFailed("invalid json", err)
	}

	s.normalizePayload(&payload)
	if err := s.validate.Struct(&payload); err != nil {
		return nil, errValidationFailed(fmt.Sprintf("invalid hit: %v", err), err)
	}
	if len(payload.Path) > maxPathLen {
		return nil, errValidationFailed(fmt.Sprintf("path too long: max %d characters", maxPathLen), nil)
	}
	if len(payload.UserAgent) > maxUserAgentLen {
		return nil, errValidationFailed(fmt.Sprintf("userAgent too long: max %d characters", maxUserAgentLen), nil)
	}

	if payload.ID == "" {
		payload.ID = ulid.NewULID()
	}

	return &models.Hit{
		ID:            payload.ID,
		Logged:        payload.Logged,
		Host:          payload.Host,
		Path:          payload.Path,
		Method:        payload.Method,
		StatusCode:    payload.StatusCode,
		SubStatusCode: payload.SubStatusCode,
		Duration:      time.Duration(payload.DurationMs) * time.Millisecond,
		Identity:      payload.Identity,
		UserAgent:     payload.UserAgent,
	}, nil
}

func (s *hitService) normalizePayload(p *hitPayload) {
	p.Host = strings.ToLower(strings.TrimSpace(p.Host))
	p.Path = strings.TrimSpace(p.Path)
	p.Method = strings.ToUpper(strings.TrimSpace(p.Method))
	p.Identity = strings.TrimSpace(p.Identity)
	p.UserAgent = strings.TrimSpace(p.UserAgent)
	p.ID = strings.TrimSpace(p.ID)
}
