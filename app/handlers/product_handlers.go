package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/technomart/technomart/app/helpers"
	"github.com/technomart/technomart/app/models"
	"github.com/technomart/technomart/app/repositories"
	"github.com/technomart/technomart/app/utils/format"
	"github.com/unrolled/render"
)

const defaultPageSize = 12

type CatalogHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	brandRepo    repositories.BrandRepositoryImpl
	render       *render.Render
}

func NewCatalogHandler(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, brandRepo repositories.BrandRepositoryImpl, rnd *render.Render) *CatalogHandler {
	return &CatalogHandler{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		render:       rnd,
	}
}

// ProductPayload decorates a product with its formatted display prices.
type ProductPayload struct {
	models.Product
	FormattedPrice         string `json:"formattedPrice"`
	FormattedOriginalPrice string `json:"formattedOriginalPrice,omitempty"`
}

func NewProductPayload(p models.Product) ProductPayload {
	payload := ProductPayload{
		Product:        p,
		FormattedPrice: format.USD(p.Price),
	}
	if p.OriginalPrice != nil {
		payload.FormattedOriginalPrice = format.USD(*p.OriginalPrice)
	}
	return payload
}

func NewProductPayloads(products []models.Product) []ProductPayload {
	payloads := make([]ProductPayload, 0, len(products))
	for _, p := range products {
		payloads = append(payloads, NewProductPayload(p))
	}
	return payloads
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type ProductListPayload struct {
	Products   []ProductPayload `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

func parsePagination(r *http.Request) (page, limit, offset int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}
	return page, limit, (page - 1) * limit
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, limit, offset := parsePagination(r)

	var (
		products []models.Product
		total    int64
		err      error
	)

	switch {
	case r.URL.Query().Get("featured") == "true":
		products, err = h.productRepo.GetFeatured(r.Context(), limit)
		total = int64(len(products))
	case r.URL.Query().Get("search") != "":
		products, total, err = h.productRepo.SearchPaginated(r.Context(), r.URL.Query().Get("search"), limit, offset)
	case r.URL.Query().Get("category") != "":
		products, total, err = h.productRepo.GetByCategorySlugPaginated(r.Context(), r.URL.Query().Get("category"), limit, offset)
	default:
		products, total, err = h.productRepo.GetPaginated(r.Context(), limit, offset)
	}

	if err != nil {
		log.Printf("ListProducts: failed to fetch products: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	helpers.RespondSuccess(h.render, w, http.StatusOK, ProductListPayload{
		Products: NewProductPayloads(products),
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// GetProduct serves both /api/products/{id} and slug lookups; ids are uuids,
// so a failed id lookup falls through to the slug.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	idOrSlug := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), idOrSlug)
	if err != nil {
		log.Printf("GetProduct: failed to fetch product %s: %v", idOrSlug, err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	if product == nil {
		product, err = h.productRepo.GetBySlug(r.Context(), idOrSlug)
		if err != nil {
			log.Printf("GetProduct: failed to fetch product by slug %s: %v", idOrSlug, err)
			helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch product")
			return
		}
	}
	if product == nil {
		helpers.RespondError(h.render, w, http.StatusNotFound, "Product not found")
		return
	}

	helpers.RespondSuccess(h.render, w, http.StatusOK, NewProductPayload(*product))
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetActiveWithCounts(r.Context())
	if err != nil {
		log.Printf("ListCategories: failed to fetch categories: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, categories)
}

func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.brandRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ListBrands: failed to fetch brands: %v", err)
		helpers.RespondError(h.render, w, http.StatusInternalServerError, "Failed to fetch brands")
		return
	}
	helpers.RespondSuccess(h.render, w, http.StatusOK, brands)
}
