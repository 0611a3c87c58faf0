package aggregators

import (
	"fmt"

	"traffic-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidDateFormat = "STATS_1000"
	codeCustomerNotFound  = "STATS_1001"

	codeInternalStatStoreFailed     = "AGG_9000"
	codeInternalStorageContention   = "AGG_9001"
	codeInternalCustomerStoreFailed = "AGG_9002"
)

// errInvalidDateFormat returns an error for a day string that does not parse
// as a calendar date.
func errInvalidDateFormat(day string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDateFormat,
		fmt.Sprintf("invalid date format: %q, use YYYY-MM-DD", day), cause)
}

// errCustomerNotFound returns an error when the queried customer does not exist.
func errCustomerNotFound(customerID int64) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeCustomerNotFound,
		fmt.Sprintf("customer not found: %d", customerID), nil)
}

// errInternalStatStoreFailed returns an error when a counter store operation fails.
func errInternalStatStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStatStoreFailed, fmt.Errorf("hourlyStatStoreFailed: %w", cause))
}

// errStorageContentionExhausted returns an error when a counter increment
// keeps hitting lock conflicts past the retry budget.
func errStorageContentionExhausted(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStorageContention, fmt.Errorf("storageContentionExhausted: %w", cause))
}

// errInternalCustomerStoreFailed returns an error when a customer lookup fails.
func errInternalCustomerStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCustomerStoreFailed, fmt.Errorf("customerStoreFailed: %w", cause))
}
