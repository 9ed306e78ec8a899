package routes

import (
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/technomart/technomart/app/configs"
	"github.com/technomart/technomart/app/handlers"
	"github.com/technomart/technomart/app/handlers/admin"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/middlewares"
	"github.com/technomart/technomart/app/repositories"
	"github.com/technomart/technomart/app/services"
	"github.com/technomart/technomart/app/utils/sessions"
	"gorm.io/gorm"
)

// NewRouter wires every repository, service and handler onto one mux router.
// Outside development the whole tree is wrapped in CSRF protection; clients
// fetch a token from GET /api/csrf and echo it in the X-CSRF-Token header.
func NewRouter(db *gorm.DB, store sessions.SessionStore, keys *configs.SessionKeys) http.Handler {
	rnd := helpers.NewRenderer()

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	orderItemRepo := repositories.NewOrderItemRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	compareRepo := repositories.NewCompareRepository(db)

	productService := services.NewProductService(db, productRepo, categoryRepo, brandRepo)
	categoryService := services.NewCategoryService(db, categoryRepo, productRepo)
	cartService := services.NewCartService(cartRepo, cartItemRepo, productRepo)
	checkoutService := services.NewCheckoutService(db, cartRepo, productRepo, userRepo, orderRepo, orderItemRepo)
	orderService := services.NewOrderService(orderRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo)
	compareService := services.NewCompareService(compareRepo, productRepo)

	authHandler := handlers.NewAuthHandler(userRepo, store, rnd)
	catalogHandler := handlers.NewCatalogHandler(productRepo, categoryRepo, brandRepo, rnd)
	cartHandler := handlers.NewCartHandler(cartService, rnd)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, rnd)
	orderHandler := handlers.NewOrderHandler(orderRepo, orderService, rnd)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService, rnd)
	compareHandler := handlers.NewCompareHandler(compareService, rnd)

	productAdmin := admin.NewProductAdminHandler(productService, productRepo, rnd)
	categoryAdmin := admin.NewCategoryAdminHandler(categoryService, categoryRepo, rnd)
	orderAdmin := admin.NewOrderAdminHandler(orderService, orderRepo, rnd)
	userAdmin := admin.NewUserAdminHandler(userRepo, rnd)
	dashboard := admin.NewDashboardHandler(productRepo, orderRepo, userRepo, rnd)

	router := mux.NewRouter()
	router.Use(middlewares.SessionUserMiddleware(store, userRepo))

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/csrf", func(w http.ResponseWriter, r *http.Request) {
		helpers.RespondSuccess(rnd, w, http.StatusOK, map[string]string{"csrfToken": csrf.Token(r)})
	}).Methods("GET")

	api.HandleFunc("/products", catalogHandler.ListProducts).Methods("GET")
	api.HandleFunc("/products/{id}", catalogHandler.GetProduct).Methods("GET")
	api.HandleFunc("/categories", catalogHandler.ListCategories).Methods("GET")
	api.HandleFunc("/brands", catalogHandler.ListBrands).Methods("GET")

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")

	secured := api.NewRoute().Subrouter()
	secured.Use(middlewares.RequireAuthMiddleware(rnd))

	secured.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	secured.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	secured.HandleFunc("/cart", cartHandler.ClearCart).Methods("DELETE")
	secured.HandleFunc("/cart/items", cartHandler.AddItem).Methods("POST")
	secured.HandleFunc("/cart/items/{productId}", cartHandler.UpdateItem).Methods("PUT")
	secured.HandleFunc("/cart/items/{productId}", cartHandler.RemoveItem).Methods("DELETE")

	secured.HandleFunc("/wishlist", wishlistHandler.Get).Methods("GET")
	secured.HandleFunc("/wishlist", wishlistHandler.Clear).Methods("DELETE")
	secured.HandleFunc("/wishlist/{productId}", wishlistHandler.Toggle).Methods("POST")

	secured.HandleFunc("/compare", compareHandler.Get).Methods("GET")
	secured.HandleFunc("/compare", compareHandler.Clear).Methods("DELETE")
	secured.HandleFunc("/compare/{productId}", compareHandler.Add).Methods("POST")
	secured.HandleFunc("/compare/{productId}", compareHandler.Remove).Methods("DELETE")

	secured.HandleFunc("/checkout", checkoutHandler.Checkout).Methods("POST")
	secured.HandleFunc("/orders", orderHandler.ListMyOrders).Methods("GET")
	secured.HandleFunc("/orders/{id}", orderHandler.GetMyOrder).Methods("GET")

	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(rnd))

	adminRouter.HandleFunc("/dashboard", dashboard.Summary).Methods("GET")

	adminRouter.HandleFunc("/products", productAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/products", productAdmin.Create).Methods("POST")
	adminRouter.HandleFunc("/products/{id}", productAdmin.Get).Methods("GET")
	adminRouter.HandleFunc("/products/{id}", productAdmin.Update).Methods("PUT")
	adminRouter.HandleFunc("/products/{id}", productAdmin.Delete).Methods("DELETE")

	adminRouter.HandleFunc("/categories", categoryAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/categories", categoryAdmin.Create).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}", categoryAdmin.Update).Methods("PUT")
	adminRouter.HandleFunc("/categories/{id}", categoryAdmin.Delete).Methods("DELETE")
	adminRouter.HandleFunc("/categories/{id}/cleanup", categoryAdmin.CleanupList).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}/cleanup", categoryAdmin.CleanupDelete).Methods("DELETE")

	adminRouter.HandleFunc("/orders", orderAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}", orderAdmin.Get).Methods("GET")
	adminRouter.HandleFunc("/orders/{id}", orderAdmin.Update).Methods("PUT")

	adminRouter.HandleFunc("/users", userAdmin.List).Methods("GET")
	adminRouter.HandleFunc("/users/{id}", userAdmin.Get).Methods("GET")
	adminRouter.HandleFunc("/users/{id}", userAdmin.Update).Methods("PUT")

	if configs.LoadENV.AppEnv == "development" {
		return router
	}

	protect := csrf.Protect(
		keys.AuthKey,
		csrf.Secure(configs.LoadENV.AppEnv == "production"),
		csrf.Path("/"),
	)
	return protect(router)
}
