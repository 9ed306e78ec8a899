package admin

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		ID:        uuid.New().String(),
		Email:     email,
		FirstName: "Test",
		Password:  "irrelevant",
		Role:      role,
		IsActive:  true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// newUserAdminRouter injects actor into the request context the way the
// session middleware does for authenticated admins.
func newUserAdminRouter(t *testing.T, db *gorm.DB, actor *models.User) *mux.Router {
	t.Helper()

	handler := NewUserAdminHandler(repositories.NewUserRepository(db), helpers.NewRenderer())

	router := mux.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, actor.ID)
			ctx = context.WithValue(ctx, helpers.ContextKeyUser, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	router.HandleFunc("/api/admin/users", handler.List).Methods("GET")
	router.HandleFunc("/api/admin/users/{id}", handler.Get).Methods("GET")
	router.HandleFunc("/api/admin/users/{id}", handler.Update).Methods("PUT")
	return router
}

func TestUserAdminUpdateRejectsSelfDemotion(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "admin@technomart.dev", models.RoleAdmin)
	router := newUserAdminRouter(t, db, admin)

	rec, resp := doRequest(t, router, http.MethodPut,
		"/api/admin/users/"+admin.ID, `{"role":"customer"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "You cannot demote yourself", resp.Error)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", admin.ID).Error)
	assert.Equal(t, models.RoleAdmin, stored.Role)
}

func TestUserAdminUpdateRejectsSelfDeactivation(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "admin@technomart.dev", models.RoleAdmin)
	router := newUserAdminRouter(t, db, admin)

	rec, resp := doRequest(t, router, http.MethodPut,
		"/api/admin/users/"+admin.ID, `{"isActive":false}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "You cannot deactivate yourself", resp.Error)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", admin.ID).Error)
	assert.True(t, stored.IsActive)
}

func TestUserAdminUpdateOtherUser(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "admin@technomart.dev", models.RoleAdmin)
	customer := seedUser(t, db, "shopper@example.com", models.RoleCustomer)
	router := newUserAdminRouter(t, db, admin)

	rec, resp := doRequest(t, router, http.MethodPut,
		"/api/admin/users/"+customer.ID, `{"role":"admin","isActive":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", customer.ID).Error)
	assert.Equal(t, models.RoleAdmin, stored.Role)
	assert.False(t, stored.IsActive)
}

func TestUserAdminUpdateRejectsUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	admin := seedUser(t, db, "admin@technomart.dev", models.RoleAdmin)
	customer := seedUser(t, db, "shopper@example.com", models.RoleCustomer)
	router := newUserAdminRouter(t, db, admin)

	rec, resp := doRequest(t, router, http.MethodPut,
		"/api/admin/users/"+customer.ID, `{"role":"superuser"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid role", resp.Error)
}
