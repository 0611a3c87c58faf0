package ingestors

import (
	"fmt"

	"traffic-analytics/internal/shared/svcerrors"
)

// IngestionService rejection reasons
const (
	codeMalformedInput  = "ING_1000"
	codeMissingFields   = "ING_1001"
	codeInvalidCustomer = "ING_1002"
	codeIPBlacklisted   = "ING_1003"
	codeUABlacklisted   = "ING_1004"

	codeInternalCustomerLookupFailed  = "ING_9000"
	codeInternalBlacklistLookupFailed = "ING_9001"
)

// errMalformedInput returns an error for a body that cannot be parsed as an event.
func errMalformedInput(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedInput, msg, cause)
}

// errMissingFields returns an error for an event missing required fields.
func errMissingFields(fields string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingFields,
		fmt.Sprintf("missing required fields: %s", fields), cause)
}

// errInvalidCustomer returns an error for an unknown or inactive customer.
func errInvalidCustomer(customerID int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidCustomer,
		fmt.Sprintf("invalid customer ID: %d", customerID), cause)
}

// errIPBlacklisted returns an error for an event from a blacklisted IP.
func errIPBlacklisted(ip string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeIPBlacklisted,
		fmt.Sprintf("IP is blacklisted: %s", ip), nil)
}

// errUABlacklisted returns an error for a blacklisted caller user agent.
func errUABlacklisted(ua string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUABlacklisted,
		fmt.Sprintf("user agent is blacklisted: %s", ua), nil)
}

// errInternalCustomerLookupFailed returns an error when the customer lookup fails.
func errInternalCustomerLookupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalCustomerLookupFailed, fmt.Errorf("customerLookupFailed: %w", cause))
}

// errInternalBlacklistLookupFailed returns an error when a blacklist lookup fails.
func errInternalBlacklistLookupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBlacklistLookupFailed, fmt.Errorf("blacklistLookupFailed: %w", cause))
}

// errorCode extracts the stable code from a service error for metric labels.
func errorCode(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return "unknown"
}
