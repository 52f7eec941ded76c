package custodial

import (
	"errors"
	"fmt"
)

// ErrorCode is a backend error code carried on failed gateway calls.
// Codes the engine reacts to are enumerated; everything else maps to
// ErrorCodeUnknown.
type ErrorCode string

const (
	ErrorCodeUnknown              ErrorCode = "UNKNOWN"
	ErrorCodeDailyLimitExceeded   ErrorCode = "DAILY_LIMIT_EXCEEDED"
	ErrorCodeWeeklyLimitExceeded  ErrorCode = "WEEKLY_LIMIT_EXCEEDED"
	ErrorCodeAnnualLimitExceeded  ErrorCode = "ANNUAL_LIMIT_EXCEEDED"
	ErrorCodePendingOrdersLimit   ErrorCode = "PENDING_ORDERS_LIMIT_REACHED"
	ErrorCodeCurrencyNotSupported ErrorCode = "CURRENCY_NOT_SUPPORTED"
)

// APIError is a structured backend failure.
type APIError struct {
	Code       ErrorCode
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("custodial api error %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// CodeOf extracts the backend error code from err, or ErrorCodeUnknown
// when err is not an APIError.
func CodeOf(err error) ErrorCode {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ErrorCodeUnknown
}
