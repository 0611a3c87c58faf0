package stores

import (
	"context"
	"fmt"
	"time"

	"traffic-analytics/internal/models"
	"traffic-analytics/internal/shared/sqlitedb"
)

// HourlyStatStore persists the per-(customer, hour) counters.
//
// Increment is a single conditional upsert: the row is created with zero
// counters if absent and its request_count advanced by delta, all inside one
// statement. SQLite serializes writers on the key's page, so concurrent
// increments to the same key each see the previous one's result; there is
// no separate read-modify-write step to lose an update in.
//
//go:generate mockgen -source=hourly_stat_store.go -destination=./mocks/hourly_stat_store_mock.go -package=mocks
type HourlyStatStore interface {
	// Increment applies a get-or-create atomic increment and returns the
	// updated row.
	Increment(ctx context.Context, customerID int64, hourStart time.Time, delta int64) (*models.HourlyStat, error)
	// ListRange returns the customer's stats with hourStart in [from, to]
	// inclusive, ordered by hour.
	ListRange(ctx context.Context, customerID int64, from, to time.Time) ([]*models.HourlyStat, error)
}

type hourlyStatStore struct {
	db sqlitedb.DBTX
}

func NewHourlyStatStore(db sqlitedb.DBTX) HourlyStatStore {
	return &hourlyStatStore{db: db}
}

func (s *hourlyStatStore) Increment(ctx context.Context, customerID int64, hourStart time.Time, delta int64) (*models.HourlyStat, error) {
	hour := hourStart.UTC().Truncate(time.Hour).Unix()

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO hourly_stats (customer_id, hour_start, request_count, invalid_count)
		VALUES (?, ?, ?, 0)
		ON CONFLICT (customer_id, hour_start)
		DO UPDATE SET request_count = request_count + excluded.request_count
		RETURNING request_count, invalid_count`,
		customerID, hour, delta)

	stat := &models.HourlyStat{
		CustomerID: customerID,
		HourStart:  time.Unix(hour, 0).UTC(),
	}
	if err := row.Scan(&stat.RequestCount, &stat.InvalidCount); err != nil {
		return nil, fmt.Errorf("failed to increment hourly stat: %w", err)
	}
	return stat, nil
}

func (s *hourlyStatStore) ListRange(ctx context.Context, customerID int64, from, to time.Time) ([]*models.HourlyStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT hour_start, request_count, invalid_count
		FROM hourly_stats
		WHERE customer_id = ? AND hour_start BETWEEN ? AND ?
		ORDER BY hour_start`,
		customerID, from.UTC().Unix(), to.UTC().Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to list hourly stats: %w", err)
	}
	defer rows.Close()

	var stats []*models.HourlyStat
	for rows.Next() {
		var hour int64
		stat := &models.HourlyStat{CustomerID: customerID}
		if err := rows.Scan(&hour, &stat.RequestCount, &stat.InvalidCount); err != nil {
			return nil, fmt.Errorf("failed to scan hourly stat: %w", err)
		}
		stat.HourStart = time.Unix(hour, 0).UTC()
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hourly stats: %w", err)
	}
	return stats, nil
}
