package repositories

import (
	"context"

	"github.com/technomart/technomart/app/models"
	"gorm.io/gorm"
)

type CompareRepositoryImpl interface {
	FindByUser(ctx context.Context, userID string) ([]models.CompareItem, error)
	Find(ctx context.Context, userID, productID string) (*models.CompareItem, error)
	Count(ctx context.Context, userID string) (int64, error)
	Create(ctx context.Context, entry *models.CompareItem) error
	Delete(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type compareRepository struct {
	db *gorm.DB
}

func NewCompareRepository(db *gorm.DB) CompareRepositoryImpl {
	return &compareRepository{db}
}

func (r *compareRepository) FindByUser(ctx context.Context, userID string) ([]models.CompareItem, error) {
	var entries []models.CompareItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Preload("Product.Brand").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Product.Specifications", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *compareRepository) Find(ctx context.Context, userID, productID string) (*models.CompareItem, error) {
	var entry models.CompareItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *compareRepository) Count(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CompareItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *compareRepository) Create(ctx context.Context, entry *models.CompareItem) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *compareRepository) Delete(ctx context.Context, userID, productID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CompareItem{}).Error
}

func (r *compareRepository) Clear(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CompareItem{}).Error
}
