package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/technomart/technomart/app/repositories"
)

func TestWishlistServiceToggle(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWishlistService(
		repositories.NewWishlistRepository(db),
		repositories.NewProductRepository(db))
	ctx := context.Background()

	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Wearables")
	product := createTestProduct(t, db, category, "Pulse Watch", "249.00", 5)

	added, err := svc.Toggle(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.True(t, added)

	entries, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	added, err = svc.Toggle(ctx, user.ID, product.ID)
	require.NoError(t, err)
	assert.False(t, added)

	entries, err = svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWishlistServiceToggleUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWishlistService(
		repositories.NewWishlistRepository(db),
		repositories.NewProductRepository(db))

	user := createTestUser(t, db)
	_, err := svc.Toggle(context.Background(), user.ID, "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestWishlistServiceClear(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWishlistService(
		repositories.NewWishlistRepository(db),
		repositories.NewProductRepository(db))
	ctx := context.Background()

	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Wearables")
	a := createTestProduct(t, db, category, "Pulse Watch", "249.00", 5)
	b := createTestProduct(t, db, category, "Pulse Band", "99.00", 5)

	_, err := svc.Toggle(ctx, user.ID, a.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, user.ID, b.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, user.ID))

	entries, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
