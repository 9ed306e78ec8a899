package services

import (
	"context"
	"fmt"

	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
)

type WishlistService struct {
	wishlistRepo repositories.WishlistRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewWishlistService(wishlistRepo repositories.WishlistRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (s *WishlistService) Get(ctx context.Context, userID string) ([]models.Wishlist, error) {
	return s.wishlistRepo.FindByUser(ctx, userID)
}

// Toggle adds the product when absent and removes it when present, reporting
// whether the product ended up on the list.
func (s *WishlistService) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("failed to look up product %s: %w", productID, err)
	}
	if product == nil {
		return false, ErrProductNotFound
	}

	existing, err := s.wishlistRepo.Find(ctx, userID, productID)
	if err != nil {
		return false, fmt.Errorf("failed to check wishlist entry: %w", err)
	}

	if existing != nil {
		if err := s.wishlistRepo.Delete(ctx, userID, productID); err != nil {
			return false, fmt.Errorf("failed to remove wishlist entry: %w", err)
		}
		return false, nil
	}

	entry := &models.Wishlist{UserID: userID, ProductID: productID}
	if err := s.wishlistRepo.Create(ctx, entry); err != nil {
		return false, fmt.Errorf("failed to add wishlist entry: %w", err)
	}
	return true, nil
}

func (s *WishlistService) Clear(ctx context.Context, userID string) error {
	return s.wishlistRepo.Clear(ctx, userID)
}
