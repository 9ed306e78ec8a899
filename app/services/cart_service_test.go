package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/technomart/technomart/app/repositories"
	"gorm.io/gorm"
)

func newCartService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewCartItemRepository(db),
		repositories.NewProductRepository(db))
	return svc, db
}

func TestCartServiceAddItem(t *testing.T) {
	svc, db := newCartService(t)
	ctx := context.Background()

	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Audio")
	product := createTestProduct(t, db, category, "Noise-Cancelling Headphones", "199.99", 10)

	cart, err := svc.AddItem(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)

	item := cart.CartItems[0]
	assert.Equal(t, 2, item.Qty)
	assert.True(t, decimal.RequireFromString("399.98").Equal(item.Subtotal))
}

func TestCartServiceAddItemBumpsExistingQty(t *testing.T) {
	svc, db := newCartService(t)
	ctx := context.Background()

	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Audio")
	product := createTestProduct(t, db, category, "Headphones", "100.00", 10)

	_, err := svc.AddItem(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)

	cart, err := svc.AddItem(ctx, user.ID, product.ID, 3)
	require.NoError(t, err)
	require.Len(t, cart.CartItems, 1)
	assert.Equal(t, 5, cart.CartItems[0].Qty)
}

func TestCartServiceAddItemRejectsInsufficientStock(t *testing.T) {
	svc, db := newCartService(t)
	ctx := context.Background()

	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Audio")
	product := createTestProduct(t, db, category, "Headphones", "100.00", 3)

	_, err := svc.AddItem(ctx, user.ID, product.ID, 4)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCartServiceAddUnknownProduct(t *testing.T) {
	svc, db := newCartService(t)
	user := createTestUser(t, db)

	_, err := svc.AddItem(context.Background(), user.ID, "missing", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartServiceUpdateQtyZeroRemovesItem(t *testing.T) {
	svc, db := newCartService(t)
	ctx := context.Background()

	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Audio")
	product := createTestProduct(t, db, category, "Headphones", "100.00", 10)

	_, err := svc.AddItem(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)

	cart, err := svc.UpdateItemQty(ctx, user.ID, product.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)
}

func TestCartServiceClear(t *testing.T) {
	svc, db := newCartService(t)
	ctx := context.Background()

	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Audio")
	product := createTestProduct(t, db, category, "Headphones", "100.00", 10)

	_, err := svc.AddItem(ctx, user.ID, product.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, user.ID))

	cart, err := svc.GetUserCart(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.CartItems)
}
