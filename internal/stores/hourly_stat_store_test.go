package stores_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"traffic-analytics/internal/shared/sqlitedb"
	"traffic-analytics/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlitedb.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestHourlyStatStore_Increment_CreatesBucketLazily(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	store := stores.NewHourlyStatStore(db)

	ctx := context.Background()
	hour := time.Date(2023, 7, 22, 5, 0, 0, 0, time.UTC)

	stat, err := store.Increment(ctx, 1, hour, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stat.CustomerID)
	assert.True(t, hour.Equal(stat.HourStart))
	assert.Equal(t, int64(1), stat.RequestCount)
	assert.Equal(t, int64(0), stat.InvalidCount)
}

func TestHourlyStatStore_Increment_AccumulatesOnSameKey(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	store := stores.NewHourlyStatStore(db)

	ctx := context.Background()
	hour := time.Date(2023, 7, 22, 5, 0, 0, 0, time.UTC)

	_, err := store.Increment(ctx, 1, hour, 1)
	require.NoError(t, err)
	stat, err := store.Increment(ctx, 1, hour, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stat.RequestCount)

	// An event one hour later lands in a separate bucket.
	next, err := store.Increment(ctx, 1, hour.Add(time.Hour), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), next.RequestCount)
}

func TestHourlyStatStore_Increment_TruncatesHourStart(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	store := stores.NewHourlyStatStore(db)

	ctx := context.Background()
	inHour := time.Date(2023, 7, 22, 5, 42, 17, 0, time.UTC)

	stat, err := store.Increment(ctx, 7, inHour, 1)
	require.NoError(t, err)
	assert.True(t, time.Date(2023, 7, 22, 5, 0, 0, 0, time.UTC).Equal(stat.HourStart))

	// The truncated and untruncated timestamps hit the same bucket.
	stat, err = store.Increment(ctx, 7, stat.HourStart, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stat.RequestCount)
}

func TestHourlyStatStore_Increment_NoLostUpdatesUnderConcurrency(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	store := stores.NewHourlyStatStore(db)

	ctx := context.Background()
	hour := time.Date(2023, 7, 22, 5, 0, 0, 0, time.UTC)

	const goroutines = 50
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Increment(ctx, 1, hour, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stats, err := store.ListRange(ctx, 1, hour, hour)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(goroutines), stats[0].RequestCount)
}

func TestHourlyStatStore_ListRange_SortedInclusive(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	store := stores.NewHourlyStatStore(db)

	ctx := context.Background()
	dayStart := time.Date(2023, 7, 22, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	// Insert out of order, plus one row outside the day.
	for _, h := range []int{23, 0, 5} {
		_, err := store.Increment(ctx, 1, dayStart.Add(time.Duration(h)*time.Hour), int64(h+1))
		require.NoError(t, err)
	}
	_, err := store.Increment(ctx, 1, dayStart.Add(24*time.Hour), 99)
	require.NoError(t, err)
	// Another customer's rows never leak in.
	_, err = store.Increment(ctx, 2, dayStart, 7)
	require.NoError(t, err)

	stats, err := store.ListRange(ctx, 1, dayStart, dayEnd)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	assert.Equal(t, 0, stats[0].HourStart.Hour())
	assert.Equal(t, 5, stats[1].HourStart.Hour())
	assert.Equal(t, 23, stats[2].HourStart.Hour())
	assert.Equal(t, int64(1), stats[0].RequestCount)
	assert.Equal(t, int64(6), stats[1].RequestCount)
	assert.Equal(t, int64(24), stats[2].RequestCount)
}

func TestHourlyStatStore_ListRange_EmptyIsNotAnError(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	store := stores.NewHourlyStatStore(db)

	stats, err := store.ListRange(context.Background(), 404,
		time.Date(2023, 7, 22, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 7, 22, 23, 59, 59, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, stats)
}
