package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"gorm.io/gorm"
)

var ErrInsufficientStock = errors.New("insufficient product stock")

type CartService struct {
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCartService(cartRepo repositories.CartRepositoryImpl, cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

func (s *CartService) AddItem(ctx context.Context, userID, productID string, qty int) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create cart: %w", err)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %s: %w", productID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existingItem, err := s.cartItemRepo.GetCartAndProduct(ctx, cart.ID, productID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing cart item: %w", err)
	}

	var cartItem *models.CartItem
	if existingItem != nil {
		cartItem = existingItem
		cartItem.Qty += qty
	} else {
		cartItem = &models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Qty:       qty,
			CreatedAt: time.Now(),
		}
	}

	if product.StockQuantity < cartItem.Qty {
		return nil, fmt.Errorf("%w: product %q has %d in stock", ErrInsufficientStock, product.Name, product.StockQuantity)
	}

	cartItem.BasePrice = product.Price
	cartItem.Subtotal = product.Price.Mul(decimal.NewFromInt(int64(cartItem.Qty)))
	cartItem.UpdatedAt = time.Now()

	if existingItem != nil {
		if err := s.cartItemRepo.Update(ctx, cartItem); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	} else {
		if err := s.cartItemRepo.Add(ctx, cartItem); err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
	}

	if err := s.cartRepo.UpdateCartSummary(ctx, cart.ID); err != nil {
		return nil, fmt.Errorf("failed to update cart summary: %w", err)
	}

	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}

func (s *CartService) UpdateItemQty(ctx context.Context, userID, productID string, newQty int) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if newQty <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	item, err := s.cartItemRepo.GetCartAndProduct(ctx, cart.ID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("cart item not found")
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil || product == nil {
		return nil, ErrProductNotFound
	}

	if product.StockQuantity < newQty {
		return nil, fmt.Errorf("%w: product %q has %d in stock", ErrInsufficientStock, product.Name, product.StockQuantity)
	}

	item.Qty = newQty
	item.BasePrice = product.Price
	item.Subtotal = product.Price.Mul(decimal.NewFromInt(int64(newQty)))
	item.UpdatedAt = time.Now()

	if err := s.cartItemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	if err := s.cartRepo.UpdateCartSummary(ctx, cart.ID); err != nil {
		return nil, fmt.Errorf("failed to update cart summary: %w", err)
	}

	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	if err := s.cartItemRepo.Delete(ctx, cart.ID, productID); err != nil {
		return nil, fmt.Errorf("failed to remove item from cart: %w", err)
	}

	if err := s.cartRepo.UpdateCartSummary(ctx, cart.ID); err != nil {
		return nil, fmt.Errorf("failed to update cart summary: %w", err)
	}

	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}

func (s *CartService) Clear(ctx context.Context, userID string) error {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get cart: %w", err)
	}
	return s.cartRepo.DeleteCart(ctx, cart.ID)
}

func (s *CartService) GetUserCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetOrCreateCartByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user cart: %w", err)
	}
	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}
