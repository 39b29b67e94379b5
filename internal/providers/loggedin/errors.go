package loggedin

import (
	"fmt"

	"hit-reports/internal/shared/svcerrors"
)

const (
	codeReportMissing = "SES_1000"

	codeInternalStoreFailed = "SES_9000"
)

// errReportMissing returns an error when no report document exists for the
// requested day and host.
func errReportMissing(date, host string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportMissing, fmt.Sprintf("no logged-in report for host %q on %s", host, date), nil)
}

// errInternalStoreFailed returns an error when a report store read fails.
func errInternalStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreFailed, fmt.Errorf("loggedInReportStoreFailed: %w", cause))
}
