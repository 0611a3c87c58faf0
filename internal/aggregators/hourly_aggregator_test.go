package aggregators_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"traffic-analytics/internal/aggregators"
	"traffic-analytics/internal/models"
	"traffic-analytics/internal/shared/sqlitedb"
	"traffic-analytics/internal/shared/svcerrors"
	"traffic-analytics/internal/stores"
	storemocks "traffic-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIncrement_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statStore := storemocks.NewMockHourlyStatStore(ctrl)

	hourStart := time.Date(2023, 7, 22, 5, 0, 0, 0, time.UTC)
	statStore.EXPECT().Increment(gomock.Any(), int64(1), hourStart, int64(1)).
		Return(&models.HourlyStat{
			CustomerID:   1,
			HourStart:    hourStart,
			RequestCount: 42,
		}, nil).
		Times(1)

	aggregator := aggregators.NewHourlyAggregator(statStore)
	stat, err := aggregator.Increment(context.Background(), 1, hourStart, 1)

	require.NoError(t, err, "unexpected error")
	require.NotNil(t, stat, "expected non-nil stat")
	assert.Equal(t, int64(42), stat.RequestCount)
	assert.Equal(t, hourStart, stat.HourStart)
}

func TestIncrement_FirstEventCreatesBucket(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statStore := storemocks.NewMockHourlyStatStore(ctrl)

	hourStart := time.Date(2023, 7, 22, 5, 0, 0, 0, time.UTC)
	// RequestCount == delta signals the row was just created
	statStore.EXPECT().Increment(gomock.Any(), int64(1), hourStart, int64(1)).
		Return(&models.HourlyStat{
			CustomerID:   1,
			HourStart:    hourStart,
			RequestCount: 1,
		}, nil)

	aggregator := aggregators.NewHourlyAggregator(statStore)
	stat, err := aggregator.Increment(context.Background(), 1, hourStart, 1)

	require.NoError(t, err, "unexpected error")
	assert.Equal(t, int64(1), stat.RequestCount)
}

func TestIncrement_ErrStoreFailed_NoRetry(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	statStore := storemocks.NewMockHourlyStatStore(ctrl)

	hourStart := time.Date(2023, 7, 22, 5, 0, 0, 0, time.UTC)
	// A non-contention failure must not be retried.
	statStore.EXPECT().Increment(gomock.Any(), int64(1), hourStart, int64(1)).
		Return(nil, assert.AnError).
		Times(1)

	aggregator := aggregators.NewHourlyAggregator(statStore)
	stat, err := aggregator.Increment(context.Background(), 1, hourStart, 1)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_9000", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
	assert.Nil(t, stat, "expected nil stat on error")
}

// openContentionPair opens two handles on the same database file: the
// default one for holding a write lock, and a second whose busy timeout is
// short enough that a held lock surfaces as SQLITE_BUSY instead of waiting
// it out.
func openContentionPair(t *testing.T) (*sql.DB, *sql.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlitedb.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	short, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(30)", path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = short.Close() })
	return db, short
}

// lockCounters starts a transaction holding the database write lock until
// the returned release func runs.
func lockCounters(t *testing.T, db *sql.DB, hour time.Time) func() {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	_, err = stores.NewHourlyStatStore(tx).Increment(context.Background(), 999, hour, 1)
	require.NoError(t, err)
	return func() { _ = tx.Rollback() }
}

func TestIncrement_LockHeld_RetriesExhausted(t *testing.T) {
	t.Parallel()

	db, short := openContentionPair(t)
	hour := time.Date(2023, 7, 22, 5, 0, 0, 0, time.UTC)

	release := lockCounters(t, db, hour)
	defer release()

	aggregator := aggregators.NewHourlyAggregator(stores.NewHourlyStatStore(short))
	stat, err := aggregator.Increment(context.Background(), 1, hour, 1)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_9001", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
	assert.Nil(t, stat, "expected nil stat on error")
}

func TestIncrement_LockReleased_RetrySucceeds(t *testing.T) {
	t.Parallel()

	db, short := openContentionPair(t)
	hour := time.Date(2023, 7, 22, 5, 0, 0, 0, time.UTC)

	// Hold the lock past the first attempt's busy window, then let a retry
	// win before the budget runs out.
	release := lockCounters(t, db, hour)
	go func() {
		time.Sleep(120 * time.Millisecond)
		release()
	}()

	aggregator := aggregators.NewHourlyAggregator(stores.NewHourlyStatStore(short))
	stat, err := aggregator.Increment(context.Background(), 1, hour, 1)

	require.NoError(t, err, "unexpected error")
	require.NotNil(t, stat, "expected non-nil stat")
	assert.Equal(t, int64(1), stat.RequestCount)
	assert.True(t, hour.Equal(stat.HourStart))
}

func TestIncrement_ContextCanceledWhileLockHeld(t *testing.T) {
	t.Parallel()

	db, short := openContentionPair(t)
	hour := time.Date(2023, 7, 22, 5, 0, 0, 0, time.UTC)

	release := lockCounters(t, db, hour)
	defer release()

	// The deadline expires well before the retry budget could: the call
	// must give up with a storage failure instead of sleeping on.
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	aggregator := aggregators.NewHourlyAggregator(stores.NewHourlyStatStore(short))
	stat, err := aggregator.Increment(ctx, 1, hour, 1)

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_9000", svcErr.Code)
	assert.Equal(t, "internal", svcErr.Category)
	assert.Nil(t, stat, "expected nil stat on error")
}
