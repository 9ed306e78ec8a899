package admin

import (
	"log"
	"net/http"

	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"github.com/technomart/technomart/app/utils/format"
	"github.com/unrolled/render"
)

const recentOrderCount = 5

type DashboardHandler struct {
	productRepo repositories.ProductRepositoryImpl
	orderRepo   repositories.OrderRepositoryImpl
	userRepo    repositories.UserRepositoryImpl
	render      *render.Render
}

func NewDashboardHandler(productRepo repositories.ProductRepositoryImpl, orderRepo repositories.OrderRepositoryImpl, userRepo repositories.UserRepositoryImpl, rnd *render.Render) *DashboardHandler {
	return &DashboardHandler{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		render:      rnd,
	}
}

type dashboardPayload struct {
	ProductCount     int64          `json:"productCount"`
	OrderCount       int64          `json:"orderCount"`
	UserCount        int64          `json:"userCount"`
	Revenue          string         `json:"revenue"`
	FormattedRevenue string         `json:"formattedRevenue"`
	RecentOrders     []models.Order `json:"recentOrders"`
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productCount, err := h.productRepo.Count(ctx)
	if err != nil {
		log.Printf("admin Summary: failed to count products: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	orderCount, err := h.orderRepo.Count(ctx)
	if err != nil {
		log.Printf("admin Summary: failed to count orders: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	userCount, err := h.userRepo.Count(ctx)
	if err != nil {
		log.Printf("admin Summary: failed to count users: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	revenue, err := h.orderRepo.Revenue(ctx)
	if err != nil {
		log.Printf("admin Summary: failed to sum revenue: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	recent, err := h.orderRepo.Recent(ctx, recentOrderCount)
	if err != nil {
		log.Printf("admin Summary: failed to fetch recent orders: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	helpers.RespondSuccess(h.render, w, http.StatusOK, dashboardPayload{
		ProductCount:     productCount,
		OrderCount:       orderCount,
		UserCount:        userCount,
		Revenue:          revenue.StringFixed(2),
		FormattedRevenue: format.USD(revenue),
		RecentOrders:     recent,
	})
}
