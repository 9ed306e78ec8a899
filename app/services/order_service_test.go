package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewOrderService(repositories.NewOrderRepository(db)), db
}

func createTestOrder(t *testing.T, db *gorm.DB, userID string) *models.Order {
	t.Helper()
	order := &models.Order{
		ID:              uuid.New().String(),
		OrderNumber:     "TM-20260831-" + uuid.New().String()[:8],
		UserID:          userID,
		CustomerName:    "Jamie Doe",
		CustomerEmail:   "jamie@example.com",
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		Subtotal:        decimal.RequireFromString("100.00"),
		ShippingCost:    decimal.RequireFromString("10"),
		Tax:             decimal.RequireFromString("8.00"),
		Discount:        decimal.Zero,
		TotalAmount:     decimal.RequireFromString("118.00"),
		ShippingStreet:  "1 Main St",
		ShippingCity:    "Springfield",
		ShippingZipCode: "12345",
		ShippingCountry: "USA",
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestOrderServiceUpdateRejectsUnknownStatus(t *testing.T) {
	svc, db := newOrderService(t)
	user := createTestUser(t, db)
	order := createTestOrder(t, db, user.ID)

	_, err := svc.Update(context.Background(), order.ID, UpdateOrderInput{Status: strPtr("teleported")})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Update(context.Background(), order.ID, UpdateOrderInput{PaymentStatus: strPtr("iou")})
	assert.ErrorIs(t, err, ErrInvalidPayStatus)
}

func TestOrderServiceUpdateStatusAndTracking(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()
	user := createTestUser(t, db)
	order := createTestOrder(t, db, user.ID)

	updated, err := svc.Update(ctx, order.ID, UpdateOrderInput{
		Status:         strPtr(models.OrderStatusConfirmed),
		PaymentStatus:  strPtr(models.PaymentStatusPaid),
		TrackingNumber: strPtr("1Z999AA10123456784"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusConfirmed, updated.Status)
	assert.Equal(t, models.PaymentStatusPaid, updated.PaymentStatus)
	assert.Equal(t, "1Z999AA10123456784", updated.TrackingNumber)
	assert.Nil(t, updated.ShippedAt)
}

func TestOrderServiceStampsShippedAtOnce(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()
	user := createTestUser(t, db)
	order := createTestOrder(t, db, user.ID)

	shipped, err := svc.Update(ctx, order.ID, UpdateOrderInput{Status: strPtr(models.OrderStatusShipped)})
	require.NoError(t, err)
	require.NotNil(t, shipped.ShippedAt)
	firstStamp := *shipped.ShippedAt

	_, err = svc.Update(ctx, order.ID, UpdateOrderInput{Status: strPtr(models.OrderStatusProcessing)})
	require.NoError(t, err)

	again, err := svc.Update(ctx, order.ID, UpdateOrderInput{Status: strPtr(models.OrderStatusShipped)})
	require.NoError(t, err)
	require.NotNil(t, again.ShippedAt)
	assert.True(t, firstStamp.Equal(*again.ShippedAt))
}

func TestOrderServiceStampsDeliveredAt(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()
	user := createTestUser(t, db)
	order := createTestOrder(t, db, user.ID)

	delivered, err := svc.Update(ctx, order.ID, UpdateOrderInput{Status: strPtr(models.OrderStatusDelivered)})
	require.NoError(t, err)
	assert.NotNil(t, delivered.DeliveredAt)
}

func TestOrderServiceGetForUserHidesOtherUsersOrders(t *testing.T) {
	svc, db := newOrderService(t)
	ctx := context.Background()

	owner := createTestUser(t, db)
	stranger := createTestUser(t, db)
	order := createTestOrder(t, db, owner.ID)

	got, err := svc.GetForUser(ctx, order.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	_, err = svc.GetForUser(ctx, order.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.GetForUser(ctx, "missing", owner.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
