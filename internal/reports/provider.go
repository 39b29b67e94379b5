package reports

import (
	"context"

	"hit-reports/internal/models"
)

// QueryParam is one entry of the ordered key/value sequence forwarded from
// the query boundary to a provider's ad-hoc read.
type QueryParam struct {
	Key   string
	Value string
}

// Provider computes one named report from a window of hits plus its own
// persisted prior state.
//
// Generate never propagates failure across the component boundary: internal
// failures are reported through the returned GenerationResult (the engine
// additionally converts panics into UnknownFailure results). Get serves the
// provider's most recently generated data for a host, independent of the
// generation cycle.
//
//go:generate mockgen -source=provider.go -destination=./mocks/provider_mock.go -package=mocks
type Provider interface {
	// Name is the unique stable identifier used for report lookup.
	Name() string

	Generate(ctx context.Context, hits []*models.Hit) *models.GenerationResult

	Get(ctx context.Context, host string, query []QueryParam) (any, error)
}
