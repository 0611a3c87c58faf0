package stores_test

import (
	"context"
	"testing"

	"traffic-analytics/internal/models"
	"traffic-analytics/internal/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerStore_GetAfterInsert(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	store := stores.NewCustomerStore(db)
	ctx := context.Background()

	inserted, err := store.InsertIgnore(ctx, &models.Customer{ID: 1, Name: "Axon Media", Active: true})
	require.NoError(t, err)
	assert.True(t, inserted)

	customer, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), customer.ID)
	assert.Equal(t, "Axon Media", customer.Name)
	assert.True(t, customer.Active)
}

func TestCustomerStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	store := stores.NewCustomerStore(db)

	customer, err := store.Get(context.Background(), 42)
	assert.Nil(t, customer)
	assert.ErrorIs(t, err, stores.ErrCustomerNotFound)
}

func TestCustomerStore_InsertIgnore_SkipsExistingKey(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	store := stores.NewCustomerStore(db)
	ctx := context.Background()

	inserted, err := store.InsertIgnore(ctx, &models.Customer{ID: 1, Name: "Axon Media", Active: true})
	require.NoError(t, err)
	assert.True(t, inserted)

	// Same key again: skipped silently, first occurrence wins.
	inserted, err = store.InsertIgnore(ctx, &models.Customer{ID: 1, Name: "Other Name", Active: false})
	require.NoError(t, err)
	assert.False(t, inserted)

	customer, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Axon Media", customer.Name)
	assert.True(t, customer.Active)
}

func TestCustomerStore_InactiveCustomerRoundTrips(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	store := stores.NewCustomerStore(db)
	ctx := context.Background()

	_, err := store.InsertIgnore(ctx, &models.Customer{ID: 5, Name: "Dormant Corp", Active: false})
	require.NoError(t, err)

	customer, err := store.Get(ctx, 5)
	require.NoError(t, err)
	assert.False(t, customer.Active)
}
