package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	ErrPermissionDenied = new(ErrCodePermissionDenied, "permission denied")
	ErrSystem           = new(ErrCodeSystemError, "system error")

	// Rate engine error kinds
	ErrInvalidPlanState = new(ErrCodeInvalidPlanState, "rate plan is not active")
	ErrInvalidDate      = new(ErrCodeInvalidDate, "invalid calendar date")
	ErrInvalidDateRange = new(ErrCodeInvalidDateRange, "invalid date range")
	ErrEligibility      = new(ErrCodeEligibility, "stay violates plan eligibility bounds")
	ErrConfiguration    = new(ErrCodeConfiguration, "malformed rule or modifier configuration")

	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrNotFound:         http.StatusNotFound,
		ErrAlreadyExists:    http.StatusConflict,
		ErrValidation:       http.StatusBadRequest,
		ErrInvalidOperation: http.StatusBadRequest,
		ErrPermissionDenied: http.StatusForbidden,
		ErrSystem:           http.StatusInternalServerError,
		ErrInvalidPlanState: http.StatusUnprocessableEntity,
		ErrInvalidDate:      http.StatusBadRequest,
		ErrInvalidDateRange: http.StatusBadRequest,
		ErrEligibility:      http.StatusUnprocessableEntity,
		ErrConfiguration:    http.StatusInternalServerError,
	}
)

const (
	ErrCodeSystemError      = "system_error"
	ErrCodeNotFound         = "not_found"
	ErrCodeAlreadyExists    = "already_exists"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidOperation = "invalid_operation"
	ErrCodePermissionDenied = "permission_denied"
	ErrCodeInvalidPlanState = "invalid_plan_state"
	ErrCodeInvalidDate      = "invalid_date"
	ErrCodeInvalidDateRange = "invalid_date_range"
	ErrCodeEligibility      = "eligibility_violation"
	ErrCodeConfiguration    = "configuration_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// new creates a new InternalError
func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

// IsInvalidPlanState checks if an error is an inactive plan error
func IsInvalidPlanState(err error) bool {
	return errors.Is(err, ErrInvalidPlanState)
}

// IsInvalidDate checks if an error is an invalid date or date range error
func IsInvalidDate(err error) bool {
	return errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrInvalidDateRange)
}

// IsEligibility checks if an error is an eligibility violation
func IsEligibility(err error) bool {
	return errors.Is(err, ErrEligibility)
}

// IsConfiguration checks if an error is a rule/modifier configuration error
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
