package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"github.com/technomart/technomart/app/services"
	"github.com/unrolled/render"
)

type OrderAdminHandler struct {
	orderService *services.OrderService
	orderRepo    repositories.OrderRepositoryImpl
	render       *render.Render
}

func NewOrderAdminHandler(orderService *services.OrderService, orderRepo repositories.OrderRepositoryImpl, rnd *render.Render) *OrderAdminHandler {
	return &OrderAdminHandler{
		orderService: orderService,
		orderRepo:    orderRepo,
		render:       rnd,
	}
}

type orderListPayload struct {
	Orders     []models.Order `json:"orders"`
	Pagination Pagination     `json:"pagination"`
}

func (h *OrderAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	orders, total, err := h.orderRepo.GetAllPaginated(r.Context(), limit, offset)
	if err != nil {
		log.Printf("admin List orders: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	helpers.RespondSuccess(h.render, w, http.StatusOK, orderListPayload{
		Orders:     orders,
		Pagination: NewPagination(page, limit, total),
	})
}

func (h *OrderAdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	order, err := h.orderRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("admin Get order %s: %v", id, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch order")
		return
	}
	if order == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "Order not found")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, order)
}

func (h *OrderAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.UpdateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			helpers.RespondError(h.render, w, http.StatusNotFound, "Order not found")
		case errors.Is(err, services.ErrInvalidStatus):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid order status")
		case errors.Is(err, services.ErrInvalidPayStatus):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid payment status")
		default:
			log.Printf("admin Update order %s: %v", id, err)
			helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusOK, order, "Order updated")
}
