package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/models/migrations"
	"github.com/technomart/technomart/app/utils/calc"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second pooled connection would see its own empty :memory: database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.New().String(),
		Email:     uuid.New().String()[:8] + "@example.com",
		FirstName: "Test",
		LastName:  "User",
		Password:  "not-a-real-hash",
		Role:      models.RoleCustomer,
		IsActive:  true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:       uuid.New().String(),
		Name:     name,
		Slug:     uuid.New().String(),
		IsActive: true,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createTestProduct(t *testing.T, db *gorm.DB, category *models.Category, name string, price string, stock int) *models.Product {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)

	product := &models.Product{
		ID:              uuid.New().String(),
		Name:            name,
		Slug:            uuid.New().String(),
		Sku:             uuid.New().String()[:13],
		Price:           p,
		DiscountPercent: calc.DiscountPercent(p, nil),
		CategoryID:      category.ID,
		StockQuantity:   stock,
		InStock:         stock > 0,
		IsActive:        true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
