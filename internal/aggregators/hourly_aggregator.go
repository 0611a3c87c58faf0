package aggregators

import (
	"context"
	"time"

	"traffic-analytics/internal/models"
	"traffic-analytics/internal/shared/loggers"
	"traffic-analytics/internal/shared/sqlitedb"
	"traffic-analytics/internal/stores"
)

const (
	maxIncrementAttempts = 3
	retryBackoff         = 25 * time.Millisecond
)

// HourlyAggregator folds admissible events into per-(customer, hour)
// counters. The store's conditional upsert serializes concurrent increments
// on the same key while distinct keys proceed independently; this layer only
// adds bounded retry when the database reports a transient lock conflict.
//
//go:generate mockgen -source=hourly_aggregator.go -destination=./mocks/hourly_aggregator_mock.go -package=mocks
type HourlyAggregator interface {
	// Increment applies a get-or-create increment of delta to the bucket
	// (customerID, hourStart) and returns the updated counter row.
	Increment(ctx context.Context, customerID int64, hourStart time.Time, delta int64) (*models.HourlyStat, error)
}

type hourlyAggregator struct {
	statStore stores.HourlyStatStore
}

func NewHourlyAggregator(statStore stores.HourlyStatStore) HourlyAggregator {
	return &hourlyAggregator{statStore: statStore}
}

func (a *hourlyAggregator) Increment(ctx context.Context, customerID int64, hourStart time.Time, delta int64) (*models.HourlyStat, error) {
	var lastErr error
	for attempt := 1; attempt <= maxIncrementAttempts; attempt++ {
		stat, err := a.statStore.Increment(ctx, customerID, hourStart, delta)
		if err == nil {
			if stat.RequestCount == delta {
				metricBucketCreatedTotal.WithLabelValues(models.HourBucketID(stat.HourStart)).Inc()
			}
			return stat, nil
		}
		if !sqlitedb.IsContention(err) {
			return nil, errInternalStatStoreFailed(err)
		}

		lastErr = err
		metricIncrementContentionTotal.Inc()
		loggers.Ctx(ctx).Debug().
			Int64(loggers.FieldCustomerID, customerID).
			Msgf("counter increment hit contention, attempt %d/%d", attempt, maxIncrementAttempts)

		select {
		case <-ctx.Done():
			return nil, errInternalStatStoreFailed(ctx.Err())
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return nil, errStorageContentionExhausted(lastErr)
}
