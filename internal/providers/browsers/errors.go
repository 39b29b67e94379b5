package browsers

import (
	"fmt"

	"hit-reports/internal/shared/svcerrors"
)

const (
	codeReportMissing = "BRW_1000"

	codeInternalStoreFailed = "BRW_9000"
)

func errReportMissing(date, host string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportMissing, fmt.Sprintf("no browser report for host %q on %s", host, date), nil)
}

func errInternalStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreFailed, fmt.Errorf("browserReportStoreFailed: %w", cause))
}
