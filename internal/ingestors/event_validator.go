package ingestors

import (
	"context"
	"errors"
	"strings"

	"traffic-analytics/internal/models"
	"traffic-analytics/internal/shared/validators"
	"traffic-analytics/internal/stores"
)

// EventValidator applies the admissibility checks to one incoming event, in
// fixed order with the first failure winning:
//
//  1. required fields present (before any store lookup)
//  2. customerID resolves to an active customer
//  3. remoteIP not in the IP blacklist
//  4. caller's User-Agent header not in the UA blacklist
//
// Rejection has no side effects beyond the returned reason; accepted events
// proceed unmodified.
//
//go:generate mockgen -source=event_validator.go -destination=./mocks/event_validator_mock.go -package=mocks
type EventValidator interface {
	Validate(ctx context.Context, event *IncomingEvent, callerUserAgent string) (*models.TrafficEvent, error)
}

type eventValidator struct {
	validate       *validators.Validate
	customerStore  stores.CustomerStore
	blacklistStore stores.BlacklistStore
}

func NewEventValidator(customerStore stores.CustomerStore, blacklistStore stores.BlacklistStore) EventValidator {
	return &eventValidator{
		validate:       validators.New(),
		customerStore:  customerStore,
		blacklistStore: blacklistStore,
	}
}

func (v *eventValidator) Validate(ctx context.Context, event *IncomingEvent, callerUserAgent string) (*models.TrafficEvent, error) {
	if err := v.validate.Struct(event); err != nil {
		return nil, errMissingFields(missingFieldNames(err), err)
	}

	customer, err := v.customerStore.Get(ctx, *event.CustomerID)
	if err != nil {
		if errors.Is(err, stores.ErrCustomerNotFound) {
			return nil, errInvalidCustomer(*event.CustomerID, err)
		}
		return nil, errInternalCustomerLookupFailed(err)
	}
	if !customer.Active {
		return nil, errInvalidCustomer(*event.CustomerID, nil)
	}

	blacklisted, err := v.blacklistStore.ContainsIP(ctx, *event.RemoteIP)
	if err != nil {
		return nil, errInternalBlacklistLookupFailed(err)
	}
	if blacklisted {
		return nil, errIPBlacklisted(*event.RemoteIP)
	}

	blacklisted, err = v.blacklistStore.ContainsUserAgent(ctx, callerUserAgent)
	if err != nil {
		return nil, errInternalBlacklistLookupFailed(err)
	}
	if blacklisted {
		return nil, errUABlacklisted(callerUserAgent)
	}

	return event.toTrafficEvent(), nil
}

// missingFieldNames extracts the json-style names of the fields that failed
// required validation.
func missingFieldNames(err error) string {
	var ve validators.ValidationErrors
	if !errors.As(err, &ve) {
		return "unknown"
	}
	names := make([]string, 0, len(ve))
	for _, fieldErr := range ve {
		name := fieldErr.Field()
		names = append(names, strings.ToLower(name[:1])+name[1:])
	}
	return strings.Join(names, ", ")
}
