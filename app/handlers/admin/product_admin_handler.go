package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"github.com/technomart/technomart/app/services"
	"github.com/unrolled/render"
)

type ProductAdminHandler struct {
	productService *services.ProductService
	productRepo    repositories.ProductRepositoryImpl
	render         *render.Render
	validator      *validator.Validate
}

func NewProductAdminHandler(productService *services.ProductService, productRepo repositories.ProductRepositoryImpl, rnd *render.Render) *ProductAdminHandler {
	return &ProductAdminHandler{
		productService: productService,
		productRepo:    productRepo,
		render:         rnd,
		validator:      validator.New(),
	}
}

type productListPayload struct {
	Products   []models.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

func (h *ProductAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	products, total, err := h.productRepo.GetAllPaginated(r.Context(), limit, offset)
	if err != nil {
		log.Printf("admin List products: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	helpers.RespondSuccess(h.render, w, http.StatusOK, productListPayload{
		Products:   products,
		Pagination: NewPagination(page, limit, total),
	})
}

func (h *ProductAdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("admin Get product %s: %v", id, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	if product == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "Product not found")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, product)
}

func (h *ProductAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		helpers.RespondValidationErrors(h.render, w, err.(validator.ValidationErrors))
		return
	}

	product, err := h.productService.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCategory):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Category does not exist")
		case errors.Is(err, services.ErrInvalidBrand):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Brand does not exist")
		default:
			log.Printf("admin Create product: %v", err)
			helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to create product")
		}
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusCreated, product, "Product created")
}

func (h *ProductAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		helpers.RespondValidationErrors(h.render, w, err.(validator.ValidationErrors))
		return
	}

	product, err := h.productService.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			helpers.RespondError(h.render, w, http.StatusNotFound, "Product not found")
		case errors.Is(err, services.ErrInvalidCategory):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Category does not exist")
		case errors.Is(err, services.ErrInvalidBrand):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Brand does not exist")
		default:
			log.Printf("admin Update product %s: %v", id, err)
			helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to update product")
		}
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusOK, product, "Product updated")
}

func (h *ProductAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.productService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			helpers.RespondError(h.render, w, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("admin Delete product %s: %v", id, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusOK, nil, "Product deleted")
}
