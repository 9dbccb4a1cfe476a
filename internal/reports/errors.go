package reports

import (
	"errors"
	"fmt"

	"sales-report/internal/shared/svcerrors"
)

var (
	// ErrInvalidInput marks a missing or malformed sales data bundle.
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingStrategy marks an absent revenue or bonus calculator.
	ErrMissingStrategy = errors.New("missing calculation strategy")
)

// ReportService errors
const (
	codeInvalidInput        = "RPT_1000"
	codeReportAlreadyExists = "RPT_1001"
	codeReportNotFound      = "RPT_1002"

	codeInternalMissingStrategy   = "RPT_9000"
	codeInternalReportStoreFailed = "RPT_9001"
)

// errInvalidInput returns a validation error whose chain contains ErrInvalidInput.
func errInvalidInput(msg string, cause error) *svcerrors.ServiceError {
	wrapped := ErrInvalidInput
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrInvalidInput, cause)
	}
	return svcerrors.NewInvalidArgumentError(codeInvalidInput, msg, wrapped)
}

// errMissingStrategy returns an internal error: strategies are wired by the caller, not by clients.
func errMissingStrategy(name string) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalMissingStrategy, fmt.Errorf("%w: %s", ErrMissingStrategy, name))
}

// errReportAlreadyExists returns an error when a report id has already been used.
func errReportAlreadyExists(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyExists, "report already exists", cause)
}

// errReportNotFound returns an error when no report is stored under the id.
func errReportNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, "report not found", cause)
}

// errInternalReportStoreFailed returns an error when a report store operation fails.
func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
