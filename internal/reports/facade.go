package reports

import (
	"context"

	"hit-reports/internal/shared/svcerrors"
)

// Facade is the query boundary: it maps a report name to the matching
// provider's on-demand read. An unregistered report name is a not-found
// condition, never an internal error.
type Facade struct {
	registry *Registry
}

func NewFacade(registry *Registry) *Facade {
	return &Facade{registry: registry}
}

func (f *Facade) Get(ctx context.Context, name, host string, query []QueryParam) (any, *svcerrors.ServiceError) {
	provider, ok := f.registry.Lookup(name)
	if !ok {
		return nil, errReportNotFound(name)
	}

	report, err := provider.Get(ctx, host, query)
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			return nil, svcErr
		}
		return nil, errInternalProviderGetFailed(err)
	}
	return report, nil
}
