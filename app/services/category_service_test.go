package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"gorm.io/gorm"
)

func newCategoryService(t *testing.T) (*CategoryService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewCategoryService(db, repositories.NewCategoryRepository(db), repositories.NewProductRepository(db))
	return svc, db
}

func TestCategoryServiceCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := newCategoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CategoryInput{Name: "Laptops"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CategoryInput{Name: "Laptops"})
	assert.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestCategoryServiceDeleteEmptyCategory(t *testing.T) {
	svc, db := newCategoryService(t)
	ctx := context.Background()

	category, err := svc.Create(ctx, CategoryInput{Name: "Laptops"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, category.ID, ""))

	var gone models.Category
	err = db.First(&gone, "id = ?", category.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryServiceDeleteRequiresTargetWhenNotEmpty(t *testing.T) {
	svc, db := newCategoryService(t)
	ctx := context.Background()

	category := createTestCategory(t, db, "Laptops")
	createTestProduct(t, db, category, "UltraBook 13", "999.00", 5)

	err := svc.Delete(ctx, category.ID, "")
	assert.ErrorIs(t, err, ErrReassignmentRequired)

	preview, err := svc.PreviewDelete(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, preview.NeedsTarget)
	assert.EqualValues(t, 1, preview.ProductCount)
}

func TestCategoryServiceDeleteRejectsInvalidTargets(t *testing.T) {
	svc, db := newCategoryService(t)
	ctx := context.Background()

	category := createTestCategory(t, db, "Laptops")
	createTestProduct(t, db, category, "UltraBook 13", "999.00", 5)

	assert.ErrorIs(t, svc.Delete(ctx, category.ID, category.ID), ErrInvalidTarget)
	assert.ErrorIs(t, svc.Delete(ctx, category.ID, "no-such-category"), ErrInvalidTarget)
}

func TestCategoryServiceDeleteReassignsProducts(t *testing.T) {
	svc, db := newCategoryService(t)
	ctx := context.Background()

	source := createTestCategory(t, db, "Netbooks")
	target := createTestCategory(t, db, "Laptops")
	p1 := createTestProduct(t, db, source, "Mini 10", "299.00", 3)
	p2 := createTestProduct(t, db, source, "Mini 12", "349.00", 3)

	require.NoError(t, svc.Delete(ctx, source.ID, target.ID))

	for _, id := range []string{p1.ID, p2.ID} {
		var product models.Product
		require.NoError(t, db.First(&product, "id = ?", id).Error)
		assert.Equal(t, target.ID, product.CategoryID)
	}

	var gone models.Category
	err := db.First(&gone, "id = ?", source.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryServiceDeleteUnknownCategory(t *testing.T) {
	svc, _ := newCategoryService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing", ""), ErrCategoryNotFound)
}

func TestCategoryServiceCleanupDeletesProducts(t *testing.T) {
	svc, db := newCategoryService(t)
	ctx := context.Background()

	category := createTestCategory(t, db, "Clearance")
	createTestProduct(t, db, category, "Old Phone", "99.00", 1)
	createTestProduct(t, db, category, "Old Tablet", "149.00", 1)

	products, err := svc.CleanupList(ctx, category.ID)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	deleted, err := svc.CleanupDelete(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	remaining, err := svc.CleanupList(ctx, category.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestCategoryServiceCleanupUnknownCategory(t *testing.T) {
	svc, _ := newCategoryService(t)

	_, err := svc.CleanupList(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
