package ingestors

import (
	"hit-reports/internal/shared/svcerrors"
)

const (
	codeValidationFailed = "ING_1000"
)

// errValidationFailed returns an error for hit payload validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}
