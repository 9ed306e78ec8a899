package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"github.com/technomart/technomart/app/utils/calc"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidCategory = errors.New("category does not exist")
	ErrInvalidBrand    = errors.New("brand does not exist")
)

type ProductService struct {
	db           *gorm.DB
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	brandRepo    repositories.BrandRepositoryImpl
}

func NewProductService(db *gorm.DB, productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, brandRepo repositories.BrandRepositoryImpl) *ProductService {
	return &ProductService{
		db:           db,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
	}
}

type ProductImageInput struct {
	URL       string `json:"url" validate:"required"`
	Alt       string `json:"alt"`
	SortOrder int    `json:"sortOrder"`
	IsPrimary bool   `json:"isPrimary"`
}

type ProductSpecInput struct {
	GroupName string `json:"groupName" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Value     string `json:"value" validate:"required"`
	SortOrder int    `json:"sortOrder"`
}

type CreateProductInput struct {
	Name           string              `json:"name" validate:"required,min=2,max=255"`
	Sku            string              `json:"sku"`
	Description    string              `json:"description"`
	Price          decimal.Decimal     `json:"price" validate:"required"`
	OriginalPrice  *decimal.Decimal    `json:"originalPrice"`
	CategoryID     string              `json:"categoryId" validate:"required"`
	BrandID        *string             `json:"brandId"`
	StockQuantity  int                 `json:"stockQuantity" validate:"gte=0"`
	IsActive       *bool               `json:"isActive"`
	IsFeatured     bool                `json:"isFeatured"`
	IsNew          bool                `json:"isNew"`
	IsHot          bool                `json:"isHot"`
	Images         []ProductImageInput `json:"images"`
	Specifications []ProductSpecInput  `json:"specifications"`
}

// UpdateProductInput carries only the fields the caller supplied; nil means
// "leave unchanged".
type UpdateProductInput struct {
	Name           *string              `json:"name" validate:"omitempty,min=2,max=255"`
	Sku            *string              `json:"sku"`
	Description    *string              `json:"description"`
	Price          *decimal.Decimal     `json:"price"`
	OriginalPrice  *decimal.Decimal     `json:"originalPrice"`
	ClearOriginal  bool                 `json:"clearOriginalPrice"`
	CategoryID     *string              `json:"categoryId"`
	BrandID        *string              `json:"brandId"`
	StockQuantity  *int                 `json:"stockQuantity" validate:"omitempty,gte=0"`
	IsActive       *bool                `json:"isActive"`
	IsFeatured     *bool                `json:"isFeatured"`
	IsNew          *bool                `json:"isNew"`
	IsHot          *bool                `json:"isHot"`
	Images         *[]ProductImageInput `json:"images"`
	Specifications *[]ProductSpecInput  `json:"specifications"`
}

func newSku() string {
	return fmt.Sprintf("TM-%s", uuid.NewString()[:8])
}

func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up category %s: %w", input.CategoryID, err)
	}
	if category == nil {
		return nil, ErrInvalidCategory
	}

	if input.BrandID != nil {
		brand, err := s.brandRepo.GetByID(ctx, *input.BrandID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up brand %s: %w", *input.BrandID, err)
		}
		if brand == nil {
			return nil, ErrInvalidBrand
		}
	}

	productSlug := helpers.GenerateSlug(input.Name)
	exists, err := s.productRepo.SlugExists(ctx, productSlug, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check product slug: %w", err)
	}
	if exists {
		productSlug = helpers.UniqueSlug(input.Name)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	// The sku column is unique, so a blank one gets generated instead of
	// letting two sku-less products collide on the empty string.
	sku := input.Sku
	if sku == "" {
		sku = newSku()
	}

	product := &models.Product{
		Name:            input.Name,
		Slug:            productSlug,
		Sku:             sku,
		Description:     input.Description,
		Price:           input.Price,
		OriginalPrice:   input.OriginalPrice,
		DiscountPercent: calc.DiscountPercent(input.Price, input.OriginalPrice),
		CategoryID:      input.CategoryID,
		BrandID:         input.BrandID,
		StockQuantity:   input.StockQuantity,
		InStock:         input.StockQuantity > 0,
		IsActive:        isActive,
		IsFeatured:      input.IsFeatured,
		IsNew:           input.IsNew,
		IsHot:           input.IsHot,
	}

	for _, img := range input.Images {
		product.Images = append(product.Images, models.ProductImage{
			URL:       img.URL,
			Alt:       img.Alt,
			SortOrder: img.SortOrder,
			IsPrimary: img.IsPrimary,
		})
	}
	for _, spec := range input.Specifications {
		product.Specifications = append(product.Specifications, models.ProductSpecification{
			GroupName: spec.GroupName,
			Name:      spec.Name,
			Value:     spec.Value,
			SortOrder: spec.SortOrder,
		})
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

// Update applies only the supplied fields. A rename regenerates the slug; if
// the regenerated slug collides with another product's, a timestamp token is
// appended instead of rejecting the write. Supplying stockQuantity also
// rewrites the derived inStock flag, and any price change recomputes the
// discount percentage.
func (s *ProductService) Update(ctx context.Context, id string, input UpdateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %s: %w", id, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if input.Name != nil && *input.Name != product.Name {
		newSlug := helpers.GenerateSlug(*input.Name)
		exists, err := s.productRepo.SlugExists(ctx, newSlug, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check product slug: %w", err)
		}
		if exists {
			newSlug = helpers.UniqueSlug(*input.Name)
		}
		product.Name = *input.Name
		product.Slug = newSlug
	}

	if input.Sku != nil {
		if *input.Sku == "" {
			product.Sku = newSku()
		} else {
			product.Sku = *input.Sku
		}
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.ClearOriginal {
		product.OriginalPrice = nil
	} else if input.OriginalPrice != nil {
		product.OriginalPrice = input.OriginalPrice
	}
	product.DiscountPercent = calc.DiscountPercent(product.Price, product.OriginalPrice)

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up category %s: %w", *input.CategoryID, err)
		}
		if category == nil {
			return nil, ErrInvalidCategory
		}
		product.CategoryID = *input.CategoryID
	}
	if input.BrandID != nil {
		brand, err := s.brandRepo.GetByID(ctx, *input.BrandID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up brand %s: %w", *input.BrandID, err)
		}
		if brand == nil {
			return nil, ErrInvalidBrand
		}
		product.BrandID = input.BrandID
	}

	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
		product.InStock = *input.StockQuantity > 0
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.IsNew != nil {
		product.IsNew = *input.IsNew
	}
	if input.IsHot != nil {
		product.IsHot = *input.IsHot
	}
	product.UpdatedAt = time.Now()

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if input.Images != nil {
			if err := tx.WithContext(ctx).Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			for _, img := range *input.Images {
				image := models.ProductImage{
					ProductID: id,
					URL:       img.URL,
					Alt:       img.Alt,
					SortOrder: img.SortOrder,
					IsPrimary: img.IsPrimary,
				}
				if err := tx.WithContext(ctx).Create(&image).Error; err != nil {
					return err
				}
			}
		}
		if input.Specifications != nil {
			if err := tx.WithContext(ctx).Where("product_id = ?", id).Delete(&models.ProductSpecification{}).Error; err != nil {
				return err
			}
			for _, spec := range *input.Specifications {
				row := models.ProductSpecification{
					ProductID: id,
					GroupName: spec.GroupName,
					Name:      spec.Name,
					Value:     spec.Value,
					SortOrder: spec.SortOrder,
				}
				if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
					return err
				}
			}
		}

		product.Images = nil
		product.Specifications = nil
		return tx.WithContext(ctx).Omit("Images", "Specifications").Save(product).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}

	return s.productRepo.GetByID(ctx, id)
}

// Delete removes the product and cascades its images and specifications in
// one transaction so no orphaned child rows remain.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up product %s: %w", id, err)
	}
	if product == nil {
		return ErrProductNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.productRepo.DeleteCascade(ctx, tx, id)
	})
}
