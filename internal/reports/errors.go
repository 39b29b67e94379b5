package reports

import (
	"fmt"

	"hit-reports/internal/shared/svcerrors"
)

const (
	codeReportNotFound = "RPT_1000"

	codeInternalHitStoreFailed     = "RPT_9000"
	codeInternalSummaryStoreFailed = "RPT_9001"
	codeInternalProviderGetFailed  = "RPT_9002"
)

// errReportNotFound returns an error when no provider is registered under the
// requested report name.
func errReportNotFound(name string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, fmt.Sprintf("report %q not found", name), nil)
}

// errInternalHitStoreFailed returns an error when the hit window query fails.
func errInternalHitStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalHitStoreFailed, fmt.Errorf("hitStoreFailed: %w", cause))
}

// errInternalSummaryStoreFailed returns an error when persisting a generation summary fails.
func errInternalSummaryStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryStoreFailed, fmt.Errorf("summaryStoreFailed: %w", cause))
}

// errInternalProviderGetFailed returns an error when a provider's ad-hoc read fails.
func errInternalProviderGetFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalProviderGetFailed, fmt.Errorf("providerGetFailed: %w", cause))
}
