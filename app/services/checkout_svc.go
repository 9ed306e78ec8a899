package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"github.com/technomart/technomart/app/utils/calc"
	"gorm.io/gorm"
)

var ErrEmptyCart = errors.New("cart is empty")

type CheckoutService struct {
	db            *gorm.DB
	cartRepo      repositories.CartRepositoryImpl
	productRepo   repositories.ProductRepositoryImpl
	userRepo      repositories.UserRepositoryImpl
	orderRepo     repositories.OrderRepositoryImpl
	orderItemRepo repositories.OrderItemRepositoryImpl
}

func NewCheckoutService(
	db *gorm.DB,
	cartRepo repositories.CartRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	userRepo repositories.UserRepositoryImpl,
	orderRepo repositories.OrderRepositoryImpl,
	orderItemRepo repositories.OrderItemRepositoryImpl,
) *CheckoutService {
	return &CheckoutService{
		db:            db,
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		userRepo:      userRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

type CheckoutInput struct {
	CustomerName  string `json:"customerName" validate:"required,min=2,max=200"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone"`

	ShippingStreet  string `json:"shippingStreet" validate:"required"`
	ShippingCity    string `json:"shippingCity" validate:"required"`
	ShippingZipCode string `json:"shippingZipCode" validate:"required"`
	ShippingCountry string `json:"shippingCountry" validate:"required"`

	Notes string `json:"notes"`
}

// ProcessCheckout turns the user's cart into an order: re-checks stock,
// snapshots item prices, computes totals, decrements stock, and clears the
// cart, all inside one transaction.
func (s *CheckoutService) ProcessCheckout(ctx context.Context, userID string, input CheckoutInput) (*models.Order, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	cart, err = s.cartRepo.GetCartWithItems(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart with items: %w", err)
	}
	if cart == nil || len(cart.CartItems) == 0 {
		return nil, ErrEmptyCart
	}

	orderItems := []models.OrderItem{}
	subtotal := decimal.Zero

	for _, cartItem := range cart.CartItems {
		product, err := s.productRepo.GetByID(ctx, cartItem.ProductID)
		if err != nil {
			return nil, fmt.Errorf("failed to get product %s: %w", cartItem.ProductID, err)
		}
		if product == nil {
			return nil, fmt.Errorf("product %s not found", cartItem.ProductID)
		}

		if product.StockQuantity < cartItem.Qty {
			return nil, fmt.Errorf("%w: product %q has %d in stock, %d requested",
				ErrInsufficientStock, product.Name, product.StockQuantity, cartItem.Qty)
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(cartItem.Qty)))
		subtotal = subtotal.Add(lineTotal)

		orderItems = append(orderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			ProductSku:  product.Sku,
			Qty:         cartItem.Qty,
			Price:       product.Price,
			TotalPrice:  lineTotal,
		})
	}

	shippingCost := calc.CalculateShipping(subtotal)
	tax := calc.CalculateTax(subtotal)
	discount := decimal.Zero

	order := &models.Order{
		OrderNumber:     fmt.Sprintf("TM-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8]),
		UserID:          userID,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		Subtotal:        subtotal,
		ShippingCost:    shippingCost,
		Tax:             tax,
		Discount:        discount,
		TotalAmount:     calc.CalculateGrandTotal(subtotal, shippingCost, tax, discount),
		ShippingStreet:  input.ShippingStreet,
		ShippingCity:    input.ShippingCity,
		ShippingZipCode: input.ShippingZipCode,
		ShippingCountry: input.ShippingCountry,
		Notes:           input.Notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.ID
			if err := s.orderItemRepo.Create(ctx, tx, &orderItems[i]); err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}

		for _, item := range orderItems {
			result := tx.WithContext(ctx).
				Model(&models.Product{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Qty).
				Updates(map[string]interface{}{
					"stock_quantity": gorm.Expr("stock_quantity - ?", item.Qty),
				})
			if result.Error != nil {
				return fmt.Errorf("failed to decrement stock for product %s: %w", item.ProductID, result.Error)
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("%w: product %s", ErrInsufficientStock, item.ProductID)
			}
			if err := tx.WithContext(ctx).
				Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				Update("in_stock", gorm.Expr("stock_quantity > 0")).Error; err != nil {
				return fmt.Errorf("failed to refresh in_stock for product %s: %w", item.ProductID, err)
			}
		}

		if err := s.cartRepo.ClearItemsTx(ctx, tx, cart.ID); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.orderRepo.GetByID(ctx, order.ID)
}
