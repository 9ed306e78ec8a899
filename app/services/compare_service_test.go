package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"gorm.io/gorm"
)

func newCompareService(t *testing.T) (*CompareService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewCompareService(
		repositories.NewCompareRepository(db),
		repositories.NewProductRepository(db))
	return svc, db
}

func addSpec(t *testing.T, db *gorm.DB, productID, group, name, value string) {
	t.Helper()
	require.NoError(t, db.Create(&models.ProductSpecification{
		ID:        uuid.New().String(),
		ProductID: productID,
		GroupName: group,
		Name:      name,
		Value:     value,
	}).Error)
}

func TestCompareServiceAddIsIdempotent(t *testing.T) {
	svc, db := newCompareService(t)
	ctx := context.Background()

	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Smartphones")
	product := createTestProduct(t, db, category, "Nexora One", "599.00", 5)

	require.NoError(t, svc.Add(ctx, user.ID, product.ID))
	require.NoError(t, svc.Add(ctx, user.ID, product.ID))

	comparison, err := svc.GetComparison(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, comparison.Products, 1)
}

func TestCompareServiceEnforcesMaxSize(t *testing.T) {
	svc, db := newCompareService(t)
	ctx := context.Background()

	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Smartphones")

	for i := 0; i < models.MaxCompareItems; i++ {
		product := createTestProduct(t, db, category, fmt.Sprintf("Phone %d", i), "499.00", 5)
		require.NoError(t, svc.Add(ctx, user.ID, product.ID))
	}

	extra := createTestProduct(t, db, category, "One Too Many", "499.00", 5)
	assert.ErrorIs(t, svc.Add(ctx, user.ID, extra.ID), ErrCompareListFull)
}

func TestCompareServiceRejectsCategoryMismatch(t *testing.T) {
	svc, db := newCompareService(t)
	ctx := context.Background()

	user := createTestUser(t, db)
	phones := createTestCategory(t, db, "Smartphones")
	fridges := createTestCategory(t, db, "Appliances")

	phone := createTestProduct(t, db, phones, "Nexora One", "599.00", 5)
	fridge := createTestProduct(t, db, fridges, "FrostBox 300", "899.00", 2)

	require.NoError(t, svc.Add(ctx, user.ID, phone.ID))
	assert.ErrorIs(t, svc.Add(ctx, user.ID, fridge.ID), ErrCompareCategoryMismatch)
}

func TestCompareServiceAddUnknownProduct(t *testing.T) {
	svc, db := newCompareService(t)
	user := createTestUser(t, db)

	assert.ErrorIs(t, svc.Add(context.Background(), user.ID, "missing"), ErrProductNotFound)
}

func TestCompareServiceComparisonFlagsDifferences(t *testing.T) {
	svc, db := newCompareService(t)
	ctx := context.Background()

	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Smartphones")
	a := createTestProduct(t, db, category, "Nexora One", "599.00", 5)
	b := createTestProduct(t, db, category, "Voltix V2", "649.00", 5)

	addSpec(t, db, a.ID, "Technical", "Weight", "180 g")
	addSpec(t, db, b.ID, "Technical", "Weight", "195 g")
	addSpec(t, db, a.ID, "General", "Warranty", "2 years")
	addSpec(t, db, b.ID, "General", "Warranty", "2 years")

	require.NoError(t, svc.Add(ctx, user.ID, a.ID))
	require.NoError(t, svc.Add(ctx, user.ID, b.ID))

	comparison, err := svc.GetComparison(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, comparison.Products, 2)

	rows := map[string]SpecRow{}
	for _, group := range comparison.Groups {
		for _, row := range group.Rows {
			rows[row.Name] = row
		}
	}

	require.Contains(t, rows, "Weight")
	assert.True(t, rows["Weight"].HasDifferences)
	assert.Len(t, rows["Weight"].Values, 2)

	require.Contains(t, rows, "Warranty")
	assert.False(t, rows["Warranty"].HasDifferences)
}

func TestCompareServiceRemoveAndClear(t *testing.T) {
	svc, db := newCompareService(t)
	ctx := context.Background()

	user := createTestUser(t, db)
	category := createTestCategory(t, db, "Smartphones")
	a := createTestProduct(t, db, category, "Nexora One", "599.00", 5)
	b := createTestProduct(t, db, category, "Voltix V2", "649.00", 5)

	require.NoError(t, svc.Add(ctx, user.ID, a.ID))
	require.NoError(t, svc.Add(ctx, user.ID, b.ID))

	require.NoError(t, svc.Remove(ctx, user.ID, a.ID))
	comparison, err := svc.GetComparison(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, comparison.Products, 1)

	require.NoError(t, svc.Clear(ctx, user.ID))
	comparison, err = svc.GetComparison(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, comparison.Products)
}
