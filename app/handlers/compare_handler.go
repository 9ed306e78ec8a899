package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/services"
	"github.com/unrolled/render"
)

type CompareHandler struct {
	compareService *services.CompareService
	render         *render.Render
}

func NewCompareHandler(compareService *services.CompareService, rnd *render.Render) *CompareHandler {
	return &CompareHandler{
		compareService: compareService,
		render:         rnd,
	}
}

func (h *CompareHandler) Get(w http.ResponseWriter, r *http.Request) {
	comparison, err := h.compareService.GetComparison(r.Context(), currentUserID(r))
	if err != nil {
		log.Printf("Compare Get: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch comparison")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, comparison)
}

func (h *CompareHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	err := h.compareService.Add(r.Context(), currentUserID(r), productID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			helpers.RespondError(h.render, w, http.StatusNotFound, "Product not found")
		case errors.Is(err, services.ErrCompareListFull):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Compare list is full")
		case errors.Is(err, services.ErrCompareCategoryMismatch):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Products from different categories cannot be compared")
		default:
			log.Printf("Compare Add: %v", err)
			helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to add product to comparison")
		}
		return
	}

	comparison, err := h.compareService.GetComparison(r.Context(), currentUserID(r))
	if err != nil {
		log.Printf("Compare Add: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch comparison")
		return
	}
	helpers.RespondMessage(h.render, w, http.StatusOK, comparison, "Product added to comparison")
}

func (h *CompareHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	if err := h.compareService.Remove(r.Context(), currentUserID(r), productID); err != nil {
		log.Printf("Compare Remove: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to remove product from comparison")
		return
	}
	helpers.RespondMessage(h.render, w, http.StatusOK, nil, "Product removed from comparison")
}

func (h *CompareHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.compareService.Clear(r.Context(), currentUserID(r)); err != nil {
		log.Printf("Compare Clear: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to clear comparison")
		return
	}
	helpers.RespondMessage(h.render, w, http.StatusOK, nil, "Comparison cleared")
}
