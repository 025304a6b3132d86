package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abdo0vuln/e-commerce/internal/domain"
	"github.com/abdo0vuln/e-commerce/internal/service"
)

type CategoryHandler struct {
	catalog *service.CatalogService
}

func NewCategoryHandler(catalog *service.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

type CategoryRequestDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	// Bare array, not an envelope: the storefront consumes it directly.
	respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.catalog.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "Missing required fields")
		return
	}

	id, err := h.catalog.CreateCategory(r.Context(), &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Category created successfully",
		"categoryId": id,
	})
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "Missing required fields")
		return
	}

	err := h.catalog.UpdateCategory(r.Context(), chi.URLParam(r, "id"), &domain.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Category updated successfully"})
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
