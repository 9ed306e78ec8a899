package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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
	"github.com/technomart/technomart/app/services"
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

func newCategoryRouter(t *testing.T) (*mux.Router, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)

	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	svc := services.NewCategoryService(db, categoryRepo, productRepo)
	handler := NewCategoryAdminHandler(svc, categoryRepo, helpers.NewRenderer())

	router := mux.NewRouter()
	router.HandleFunc("/api/admin/categories", handler.List).Methods("GET")
	router.HandleFunc("/api/admin/categories", handler.Create).Methods("POST")
	router.HandleFunc("/api/admin/categories/{id}", handler.Delete).Methods("DELETE")
	router.HandleFunc("/api/admin/categories/{id}/cleanup", handler.CleanupList).Methods("POST")
	router.HandleFunc("/api/admin/categories/{id}/cleanup", handler.CleanupDelete).Methods("DELETE")
	return router, db
}

func seedCategory(t *testing.T, db *gorm.DB, name string, products int) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:       uuid.New().String(),
		Name:     name,
		Slug:     uuid.New().String(),
		IsActive: true,
	}
	require.NoError(t, db.Create(category).Error)

	for i := 0; i < products; i++ {
		require.NoError(t, db.Create(&models.Product{
			ID:         uuid.New().String(),
			Name:       name + " product",
			Slug:       uuid.New().String(),
			Sku:        uuid.New().String()[:13],
			Price:      decimal.RequireFromString("99.00"),
			CategoryID: category.ID,
			IsActive:   true,
		}).Error)
	}
	return category
}

func doRequest(t *testing.T, router *mux.Router, method, url string, body string) (*httptest.ResponseRecorder, helpers.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestCategoryAdminDeleteEmptyCategory(t *testing.T) {
	router, db := newCategoryRouter(t)
	category := seedCategory(t, db, "Empty", 0)

	rec, resp := doRequest(t, router, http.MethodDelete, "/api/admin/categories/"+category.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
}

func TestCategoryAdminDeleteWithoutTargetReturnsPreview(t *testing.T) {
	router, db := newCategoryRouter(t)
	category := seedCategory(t, db, "Loaded", 3)

	rec, resp := doRequest(t, router, http.MethodDelete, "/api/admin/categories/"+category.ID, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)

	preview, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, preview["needsTarget"])
	assert.EqualValues(t, 3, preview["productCount"])
}

func TestCategoryAdminDeleteWithTargetReassigns(t *testing.T) {
	router, db := newCategoryRouter(t)
	source := seedCategory(t, db, "Source", 2)
	target := seedCategory(t, db, "Target", 0)

	rec, resp := doRequest(t, router, http.MethodDelete,
		"/api/admin/categories/"+source.ID+"?moveTo="+target.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Where("category_id = ?", target.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestCategoryAdminDeleteRejectsSelfTarget(t *testing.T) {
	router, db := newCategoryRouter(t)
	category := seedCategory(t, db, "Loaded", 1)

	rec, resp := doRequest(t, router, http.MethodDelete,
		"/api/admin/categories/"+category.ID+"?moveTo="+category.ID, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}

func TestCategoryAdminDeleteUnknownCategory(t *testing.T) {
	router, _ := newCategoryRouter(t)

	rec, resp := doRequest(t, router, http.MethodDelete, "/api/admin/categories/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, resp.Success)
}

func TestCategoryAdminCleanupFlow(t *testing.T) {
	router, db := newCategoryRouter(t)
	category := seedCategory(t, db, "Clearance", 2)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/admin/categories/"+category.ID+"/cleanup", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	listed, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, listed, 2)

	rec, resp = doRequest(t, router, http.MethodDelete, "/api/admin/categories/"+category.ID+"/cleanup", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	deleted, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, deleted["deleted"])

	var remaining int64
	require.NoError(t, db.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestCategoryAdminCreate(t *testing.T) {
	router, _ := newCategoryRouter(t)

	rec, resp := doRequest(t, router, http.MethodPost, "/api/admin/categories", `{"name":"Gaming"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, resp.Success)

	created, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "gaming", created["slug"])

	rec, resp = doRequest(t, router, http.MethodPost, "/api/admin/categories", `{"name":"Gaming"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
}
