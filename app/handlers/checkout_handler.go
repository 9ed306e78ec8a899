package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/services"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
	render          *render.Render
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService *services.CheckoutService, rnd *render.Render) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		render:          rnd,
		validator:       validator.New(),
	}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var input services.CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		helpers.RespondValidationErrors(h.render, w, err.(validator.ValidationErrors))
		return
	}

	order, err := h.checkoutService.ProcessCheckout(r.Context(), currentUserID(r), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Cart is empty")
		case errors.Is(err, services.ErrInsufficientStock):
			helpers.RespondError(h.render, w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("Checkout: %v", err)
			helpers.RespondError(h.render, w, http.StatusInternalServerError, "Checkout failed")
		}
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusCreated, order, "Order placed")
}
