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

type WishlistHandler struct {
	wishlistService *services.WishlistService
	render          *render.Render
}

func NewWishlistHandler(wishlistService *services.WishlistService, rnd *render.Render) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		render:          rnd,
	}
}

func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	entries, err := h.wishlistService.Get(r.Context(), currentUserID(r))
	if err != nil {
		log.Printf("Wishlist Get: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch wishlist")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, entries)
}

type wishlistTogglePayload struct {
	ProductID string `json:"productId"`
	InList    bool   `json:"inList"`
}

func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	inList, err := h.wishlistService.Toggle(r.Context(), currentUserID(r), productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			helpers.RespondError(h.render, w, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("Wishlist Toggle: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to update wishlist")
		return
	}

	helpers.RespondSuccess(h.render, w, http.StatusOK, wishlistTogglePayload{ProductID: productID, InList: inList})
}

func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.wishlistService.Clear(r.Context(), currentUserID(r)); err != nil {
		log.Printf("Wishlist Clear: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to clear wishlist")
		return
	}
	helpers.RespondMessage(h.render, w, http.StatusOK, nil, "Wishlist cleared")
}
