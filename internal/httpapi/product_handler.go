package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abdo0vuln/e-commerce/internal/domain"
	"github.com/abdo0vuln/e-commerce/internal/repository"
	"github.com/abdo0vuln/e-commerce/internal/service"
)

const defaultPageLimit = 20

type ProductHandler struct {
	catalog *service.CatalogService
}

func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type ProductRequestDTO struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Images        []string `json:"images"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Stock         int      `json:"stock"`
	SKU           string   `json:"sku"`
	IsNew         bool     `json:"isNew"`
	IsFeatured    bool     `json:"isFeatured"`
	Tags          []string `json:"tags"`
}

func (d *ProductRequestDTO) toDomain() *domain.Product {
	return &domain.Product{
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		OriginalPrice: d.OriginalPrice,
		Category:      d.Category,
		Subcategory:   d.Subcategory,
		Images:        d.Images,
		Sizes:         d.Sizes,
		Colors:        d.Colors,
		Stock:         d.Stock,
		SKU:           d.SKU,
		IsNew:         d.IsNew,
		IsFeatured:    d.IsFeatured,
		Tags:          d.Tags,
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repository.ProductFilter{
		Category: r.URL.Query().Get("category"),
		Featured: r.URL.Query().Get("featured") == "true",
		Search:   r.URL.Query().Get("search"),
		Page:     queryInt(r, "page", 1),
		Limit:    queryInt(r, "limit", defaultPageLimit),
	}

	page, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Name == "" || req.Price == 0 || req.Category == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "Missing required fields")
		return
	}

	id, err := h.catalog.CreateProduct(r.Context(), req.toDomain())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Product created successfully",
		"productId": id,
	})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Name == "" || req.Price == 0 || req.Category == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "Missing required fields")
		return
	}

	if err := h.catalog.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req.toDomain()); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
