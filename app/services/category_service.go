package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"gorm.io/gorm"
)

var (
	// ErrReassignmentRequired is returned when a category still holds
	// products and no reassignment target was supplied; the client is
	// expected to re-request with one.
	ErrReassignmentRequired = errors.New("category has products and requires a reassignment target")

	ErrInvalidTarget     = errors.New("reassignment target is invalid")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("a category with this name already exists")
)

type CategoryService struct {
	db           *gorm.DB
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCategoryService(db *gorm.DB, categoryRepo repositories.CategoryRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CategoryService {
	return &CategoryService{
		db:           db,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

type CategoryInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description"`
	ParentID    *string `json:"parentId"`
	SortOrder   int     `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
	Image       string  `json:"image"`
}

func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*models.Category, error) {
	categorySlug := helpers.GenerateSlug(input.Name)
	exists, err := s.categoryRepo.SlugExists(ctx, categorySlug, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check category slug: %w", err)
	}
	if exists {
		return nil, ErrDuplicateCategory
	}

	if input.ParentID != nil {
		parent, err := s.categoryRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up parent category: %w", err)
		}
		if parent == nil {
			return nil, ErrInvalidTarget
		}
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	category := &models.Category{
		Name:        input.Name,
		Slug:        categorySlug,
		Description: input.Description,
		ParentID:    input.ParentID,
		SortOrder:   input.SortOrder,
		IsActive:    isActive,
		Image:       input.Image,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, input CategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category %s: %w", id, err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if category.Name != input.Name {
		newSlug := helpers.GenerateSlug(input.Name)
		exists, err := s.categoryRepo.SlugExists(ctx, newSlug, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check category slug: %w", err)
		}
		if exists {
			newSlug = helpers.UniqueSlug(input.Name)
		}
		category.Slug = newSlug
	}

	category.Name = input.Name
	category.Description = input.Description
	category.ParentID = input.ParentID
	category.SortOrder = input.SortOrder
	category.Image = input.Image
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	return category, nil
}

// DeletePreview tells the caller what a delete would involve: the category
// itself and how many products would need a new home. The server, not the
// client, decides whether a plain delete is safe.
type DeletePreview struct {
	Category     *models.Category `json:"category"`
	ProductCount int64            `json:"productCount"`
	NeedsTarget  bool             `json:"needsTarget"`
}

func (s *CategoryService) PreviewDelete(ctx context.Context, id string) (*DeletePreview, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category %s: %w", id, err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	count, err := s.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count products for category %s: %w", id, err)
	}

	return &DeletePreview{
		Category:     category,
		ProductCount: count,
		NeedsTarget:  count > 0,
	}, nil
}

// Delete removes a category. An empty category is deleted directly. A
// category that still has products requires targetID: every product is
// reassigned to the target and the source deleted in one transaction, so no
// product is ever left pointing at a missing category.
func (s *CategoryService) Delete(ctx context.Context, id, targetID string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up category %s: %w", id, err)
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	count, err := s.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count products for category %s: %w", id, err)
	}

	if count == 0 {
		return s.db.Transaction(func(tx *gorm.DB) error {
			return s.categoryRepo.DeleteTx(ctx, tx, id)
		})
	}

	if targetID == "" {
		return ErrReassignmentRequired
	}
	if targetID == id {
		return ErrInvalidTarget
	}

	target, err := s.categoryRepo.GetByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("failed to look up target category %s: %w", targetID, err)
	}
	if target == nil {
		return ErrInvalidTarget
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.categoryRepo.ReassignProducts(ctx, tx, id, targetID); err != nil {
			return fmt.Errorf("failed to reassign products from %s to %s: %w", id, targetID, err)
		}
		return s.categoryRepo.DeleteTx(ctx, tx, id)
	})
}

// CleanupList is the diagnostic half of the cleanup endpoint: the products
// still attached to a category.
func (s *CategoryService) CleanupList(ctx context.Context, id string) ([]models.Product, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category %s: %w", id, err)
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return s.productRepo.GetByCategoryID(ctx, id)
}

// CleanupDelete removes every product in the category, cascading each one's
// images and specifications, in a single transaction.
func (s *CategoryService) CleanupDelete(ctx context.Context, id string) (int, error) {
	products, err := s.CleanupList(ctx, id)
	if err != nil {
		return 0, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, product := range products {
			if err := s.productRepo.DeleteCascade(ctx, tx, product.ID); err != nil {
				return fmt.Errorf("failed to delete product %s: %w", product.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(products), nil
}
