package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartService *services.CartService
	render      *render.Render
	validator   *validator.Validate
}

func NewCartHandler(cartService *services.CartService, rnd *render.Render) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		render:      rnd,
		validator:   validator.New(),
	}
}

func currentUserID(r *http.Request) string {
	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	return userID
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.GetUserCart(r.Context(), currentUserID(r))
	if err != nil {
		log.Printf("GetCart: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, cart)
}

type CartItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int    `json:"qty" validate:"required,gte=1"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var input CartItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		helpers.RespondValidationErrors(h.render, w, err.(validator.ValidationErrors))
		return
	}

	cart, err := h.cartService.AddItem(r.Context(), currentUserID(r), input.ProductID, input.Qty)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			helpers.RespondError(h.render, w, http.StatusNotFound, "Product not found")
		case errors.Is(err, services.ErrInsufficientStock):
			helpers.RespondError(h.render, w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("AddItem: %v", err)
			helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to add item to cart")
		}
		return
	}

	helpers.RespondSuccess(h.render, w, http.StatusOK, cart)
}

type CartQtyInput struct {
	Qty int `json:"qty"`
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	var input CartQtyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cart, err := h.cartService.UpdateItemQty(r.Context(), currentUserID(r), productID, input.Qty)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			helpers.RespondError(h.render, w, http.StatusNotFound, "Product not found")
		case errors.Is(err, services.ErrInsufficientStock):
			helpers.RespondError(h.render, w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("UpdateItem: %v", err)
			helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to update cart item")
		}
		return
	}

	helpers.RespondSuccess(h.render, w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	cart, err := h.cartService.RemoveItem(r.Context(), currentUserID(r), productID)
	if err != nil {
		log.Printf("RemoveItem: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to remove cart item")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cartService.Clear(r.Context(), currentUserID(r)); err != nil {
		log.Printf("ClearCart: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	helpers.RespondMessage(h.render, w, http.StatusOK, nil, "Cart cleared")
}
