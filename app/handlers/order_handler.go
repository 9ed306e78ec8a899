package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/repositories"
	"github.com/technomart/technomart/app/services"
	"github.com/unrolled/render"
)

type OrderHandler struct {
	orderRepo    repositories.OrderRepositoryImpl
	orderService *services.OrderService
	render       *render.Render
}

func NewOrderHandler(orderRepo repositories.OrderRepositoryImpl, orderService *services.OrderService, rnd *render.Render) *OrderHandler {
	return &OrderHandler{
		orderRepo:    orderRepo,
		orderService: orderService,
		render:       rnd,
	}
}

func (h *OrderHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderRepo.FindByUserID(r.Context(), currentUserID(r))
	if err != nil {
		log.Printf("ListMyOrders: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, orders)
}

func (h *OrderHandler) GetMyOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order, err := h.orderService.GetForUser(r.Context(), orderID, currentUserID(r))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			helpers.RespondError(h.render, w, http.StatusNotFound, "Order not found")
			return
		}
		log.Printf("GetMyOrder: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, order)
}
