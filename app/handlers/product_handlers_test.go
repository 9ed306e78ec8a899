package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/models/migrations"
	"github.com/technomart/technomart/app/repositories"
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
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func newCatalogRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)

	handler := NewCatalogHandler(
		repositories.NewProductRepository(db),
		repositories.NewCategoryRepository(db),
		repositories.NewBrandRepository(db),
		helpers.NewRenderer())

	router := mux.NewRouter()
	router.HandleFunc("/api/products", handler.ListProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", handler.GetProduct).Methods("GET")
	router.HandleFunc("/api/categories", handler.ListCategories).Methods("GET")
	return router, db
}

func seedCatalog(t *testing.T, db *gorm.DB, categoryName string, products int) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:       uuid.New().String(),
		Name:     categoryName,
		Slug:     uuid.New().String(),
		IsActive: true,
	}
	require.NoError(t, db.Create(category).Error)

	for i := 0; i < products; i++ {
		require.NoError(t, db.Create(&models.Product{
			ID:            uuid.New().String(),
			Name:          fmt.Sprintf("%s Item %d", categoryName, i),
			Slug:          fmt.Sprintf("%s-item-%d-%s", category.Slug, i, uuid.NewString()[:6]),
			Sku:           uuid.New().String()[:13],
			Price:         decimal.RequireFromString("49.99"),
			CategoryID:    category.ID,
			StockQuantity: 3,
			InStock:       true,
			IsActive:      true,
		}).Error)
	}
	return category
}

func getJSON(t *testing.T, router *mux.Router, url string) (*httptest.ResponseRecorder, helpers.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestListProductsPaginates(t *testing.T) {
	router, db := newCatalogRouter(t)
	seedCatalog(t, db, "Audio", 15)

	rec, resp := getJSON(t, router, "/api/products?page=1&limit=12")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, resp.Success)

	payload, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)

	products := payload["products"].([]interface{})
	assert.Len(t, products, 12)

	pagination := payload["pagination"].(map[string]interface{})
	assert.EqualValues(t, 15, pagination["total"])
	assert.EqualValues(t, 2, pagination["totalPages"])
}

func TestListProductsFiltersByCategorySlug(t *testing.T) {
	router, db := newCatalogRouter(t)
	audio := seedCatalog(t, db, "Audio", 2)
	seedCatalog(t, db, "Laptops", 3)

	rec, resp := getJSON(t, router, "/api/products?category="+audio.Slug)
	require.Equal(t, http.StatusOK, rec.Code)

	payload := resp.Data.(map[string]interface{})
	assert.Len(t, payload["products"].([]interface{}), 2)
}

func TestListProductsHidesInactive(t *testing.T) {
	router, db := newCatalogRouter(t)
	category := seedCatalog(t, db, "Audio", 1)

	require.NoError(t, db.Create(&models.Product{
		ID:         uuid.New().String(),
		Name:       "Retired Speaker",
		Slug:       "retired-speaker",
		Sku:        uuid.New().String()[:13],
		Price:      decimal.RequireFromString("19.99"),
		CategoryID: category.ID,
		IsActive:   false,
	}).Error)

	_, resp := getJSON(t, router, "/api/products")
	payload := resp.Data.(map[string]interface{})
	assert.Len(t, payload["products"].([]interface{}), 1)
}

func TestGetProductBySlugFallback(t *testing.T) {
	router, db := newCatalogRouter(t)
	category := seedCatalog(t, db, "Audio", 0)

	product := &models.Product{
		ID:         uuid.New().String(),
		Name:       "Noise-Cancelling Headphones",
		Slug:       "noise-cancelling-headphones",
		Sku:        uuid.New().String()[:13],
		Price:      decimal.RequireFromString("199.99"),
		CategoryID: category.ID,
		IsActive:   true,
	}
	require.NoError(t, db.Create(product).Error)

	rec, resp := getJSON(t, router, "/api/products/"+product.ID)
	assert.Equal(t, http.StatusOK, rec.Code)
	byID := resp.Data.(map[string]interface{})
	assert.Equal(t, product.ID, byID["id"])

	rec, resp = getJSON(t, router, "/api/products/noise-cancelling-headphones")
	assert.Equal(t, http.StatusOK, rec.Code)
	bySlug := resp.Data.(map[string]interface{})
	assert.Equal(t, product.ID, bySlug["id"])
	assert.Equal(t, "$199.99", bySlug["formattedPrice"])

	rec, resp = getJSON(t, router, "/api/products/missing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}

func TestListCategoriesReportsProductCounts(t *testing.T) {
	router, db := newCatalogRouter(t)
	seedCatalog(t, db, "Audio", 4)

	rec, resp := getJSON(t, router, "/api/categories")
	require.Equal(t, http.StatusOK, rec.Code)

	categories := resp.Data.([]interface{})
	require.Len(t, categories, 1)
	first := categories[0].(map[string]interface{})
	assert.EqualValues(t, 4, first["productCount"])
}
