package aggregators

import (
	"context"
	"errors"
	"time"

	"traffic-analytics/internal/models"
	"traffic-analytics/internal/shared/loggers"
	"traffic-analytics/internal/stores"
)

const dayLayout = "2006-01-02"

//go:generate mockgen -source=stats_service.go -destination=./mocks/stats_service_mock.go -package=mocks
type StatsService interface {
	// DailyStats returns the customer's hourly breakdown for one calendar
	// day (UTC). A day with no buckets yields total 0 and an empty
	// breakdown, not an error.
	DailyStats(ctx context.Context, customerID int64, day string) (*models.DailyStats, error)
}

type statsService struct {
	customerStore stores.CustomerStore
	statStore     stores.HourlyStatStore
}

func NewStatsService(customerStore stores.CustomerStore, statStore stores.HourlyStatStore) StatsService {
	return &statsService{customerStore: customerStore, statStore: statStore}
}

func (s *statsService) DailyStats(ctx context.Context, customerID int64, day string) (*models.DailyStats, error) {
	logger := loggers.Ctx(ctx)

	if _, err := s.customerStore.Get(ctx, customerID); err != nil {
		if errors.Is(err, stores.ErrCustomerNotFound) {
			return nil, errCustomerNotFound(customerID)
		}
		return nil, errInternalCustomerStoreFailed(err)
	}

	dayStart, err := time.ParseInLocation(dayLayout, day, time.UTC)
	if err != nil {
		return nil, errInvalidDateFormat(day, err)
	}
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	stats, err := s.statStore.ListRange(ctx, customerID, dayStart, dayEnd)
	if err != nil {
		return nil, errInternalStatStoreFailed(err)
	}

	result := &models.DailyStats{
		CustomerID:  customerID,
		Date:        day,
		HourlyStats: make([]models.HourCount, 0, len(stats)),
	}
	for _, stat := range stats {
		result.TotalRequests += stat.RequestCount
		result.HourlyStats = append(result.HourlyStats, models.HourCount{
			Hour:         stat.HourStart.Hour(),
			RequestCount: stat.RequestCount,
			InvalidCount: stat.InvalidCount,
		})
	}

	logger.Debug().
		Int64(loggers.FieldCustomerID, customerID).
		Msgf("daily stats resolved for %s: %d buckets, %d total requests", day, len(result.HourlyStats), result.TotalRequests)
	return result, nil
}
