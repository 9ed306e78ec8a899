package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrInvalidPayStatus = errors.New("invalid payment status")
)

type OrderService struct {
	orderRepo repositories.OrderRepositoryImpl
}

func NewOrderService(orderRepo repositories.OrderRepositoryImpl) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

type UpdateOrderInput struct {
	Status         *string `json:"status"`
	PaymentStatus  *string `json:"paymentStatus"`
	TrackingNumber *string `json:"trackingNumber"`
	Notes          *string `json:"notes"`
}

// Update applies admin mutations to an order. Statuses are validated against
// the enum set but transitions stay free-form. The first transition into
// shipped or delivered stamps the matching timestamp; re-entering the state
// later does not overwrite it.
func (s *OrderService) Update(ctx context.Context, orderID string, input UpdateOrderInput) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up order %s: %w", orderID, err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if input.Status != nil {
		if !models.ValidOrderStatus(*input.Status) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *input.Status)
		}
		order.Status = *input.Status

		now := time.Now()
		if *input.Status == models.OrderStatusShipped && order.ShippedAt == nil {
			order.ShippedAt = &now
		}
		if *input.Status == models.OrderStatusDelivered && order.DeliveredAt == nil {
			order.DeliveredAt = &now
		}
	}

	if input.PaymentStatus != nil {
		if !models.ValidPaymentStatus(*input.PaymentStatus) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPayStatus, *input.PaymentStatus)
		}
		order.PaymentStatus = *input.PaymentStatus
	}

	if input.TrackingNumber != nil {
		order.TrackingNumber = *input.TrackingNumber
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", orderID, err)
	}
	return s.orderRepo.GetByID(ctx, orderID)
}

// GetForUser returns the order only when it belongs to userID; other users'
// orders are indistinguishable from missing ones.
func (s *OrderService) GetForUser(ctx context.Context, orderID, userID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up order %s: %w", orderID, err)
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
