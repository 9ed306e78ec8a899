package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/repositories"
	"github.com/technomart/technomart/app/services"
	"github.com/unrolled/render"
)

type CategoryAdminHandler struct {
	categoryService *services.CategoryService
	categoryRepo    repositories.CategoryRepositoryImpl
	render          *render.Render
	validator       *validator.Validate
}

func NewCategoryAdminHandler(categoryService *services.CategoryService, categoryRepo repositories.CategoryRepositoryImpl, rnd *render.Render) *CategoryAdminHandler {
	return &CategoryAdminHandler{
		categoryService: categoryService,
		categoryRepo:    categoryRepo,
		render:          rnd,
		validator:       validator.New(),
	}
}

func (h *CategoryAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("admin List categories: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, categories)
}

func (h *CategoryAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		helpers.RespondValidationErrors(h.render, w, err.(validator.ValidationErrors))
		return
	}

	category, err := h.categoryService.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateCategory):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "A category with this name already exists")
		case errors.Is(err, services.ErrInvalidTarget):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Parent category does not exist")
		default:
			log.Printf("admin Create category: %v", err)
			helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to create category")
		}
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusCreated, category, "Category created")
}

func (h *CategoryAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input services.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		helpers.RespondValidationErrors(h.render, w, err.(validator.ValidationErrors))
		return
	}

	category, err := h.categoryService.Update(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			helpers.RespondError(h.render, w, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("admin Update category %s: %v", id, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusOK, category, "Category updated")
}

// Delete removes a category. When the category still has products the caller
// must name a replacement via ?moveTo=<categoryId>; without one the response
// is a 400 carrying the delete preview so the client can prompt for a target.
func (h *CategoryAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	targetID := r.URL.Query().Get("moveTo")

	err := h.categoryService.Delete(r.Context(), id, targetID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			helpers.RespondError(h.render, w, http.StatusNotFound, "Category not found")
		case errors.Is(err, services.ErrReassignmentRequired):
			preview, previewErr := h.categoryService.PreviewDelete(r.Context(), id)
			if previewErr != nil {
				log.Printf("admin Delete category %s: preview failed: %v", id, previewErr)
				helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to delete category")
				return
			}
			h.render.JSON(w, http.StatusBadRequest, helpers.APIResponse{
				Success: false,
				Error:   "Category has products and requires a moveTo target",
				Data:    preview,
			})
		case errors.Is(err, services.ErrInvalidTarget):
			helpers.RespondError(h.render, w, http.StatusBadRequest, "Invalid moveTo target")
		default:
			log.Printf("admin Delete category %s: %v", id, err)
			helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to delete category")
		}
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusOK, nil, "Category deleted")
}

// CleanupList reports the products still attached to a category so an admin
// can review them before a destructive cleanup.
func (h *CategoryAdminHandler) CleanupList(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	products, err := h.categoryService.CleanupList(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			helpers.RespondError(h.render, w, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("admin CleanupList category %s: %v", id, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to list category products")
		return
	}

	helpers.RespondSuccess(h.render, w, http.StatusOK, products)
}

type cleanupPayload struct {
	Deleted int `json:"deleted"`
}

func (h *CategoryAdminHandler) CleanupDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.categoryService.CleanupDelete(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			helpers.RespondError(h.render, w, http.StatusNotFound, "Category not found")
			return
		}
		log.Printf("admin CleanupDelete category %s: %v", id, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to clean up category products")
		return
	}

	helpers.RespondMessage(h.render, w, http.StatusOK, cleanupPayload{Deleted: deleted}, "Category products deleted")
}
