package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abdo0vuln/e-commerce/internal/auth"
	"github.com/abdo0vuln/e-commerce/internal/domain"
	"github.com/abdo0vuln/e-commerce/internal/repository"
	"github.com/abdo0vuln/e-commerce/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type WishlistRequestDTO struct {
	ProductID string `json:"productId"`
}

// selfOrAdmin allows a user through for their own resource, or any admin.
func selfOrAdmin(r *http.Request) (targetID string, ok bool) {
	id := auth.IdentityFromContext(r.Context())
	targetID = chi.URLParam(r, "id")
	if id == nil {
		return targetID, false
	}
	return targetID, id.UserID == targetID || id.Role == domain.RoleAdmin
}

// selfOnly allows only the user themselves; admins cannot mutate
// another user's wishlist.
func selfOnly(r *http.Request) (targetID string, ok bool) {
	id := auth.IdentityFromContext(r.Context())
	targetID = chi.URLParam(r, "id")
	if id == nil {
		return targetID, false
	}
	return targetID, id.UserID == targetID
}

func (h *UserHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	filter := repository.UserFilter{
		Search: r.URL.Query().Get("search"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", defaultPageLimit),
	}

	users, pagination, err := h.users.ListCustomers(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"users":      users,
		"pagination": pagination,
	})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	targetID, ok := selfOrAdmin(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	user, err := h.users.GetUser(r.Context(), targetID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	targetID, ok := selfOrAdmin(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	products, err := h.users.GetWishlist(r.Context(), targetID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *UserHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	targetID, ok := selfOnly(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req WishlistRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "productId is required")
		return
	}

	if err := h.users.AddToWishlist(r.Context(), targetID, req.ProductID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Product added to wishlist"})
}

func (h *UserHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	targetID, ok := selfOnly(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
		return
	}

	var req WishlistRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "productId is required")
		return
	}

	if err := h.users.RemoveFromWishlist(r.Context(), targetID, req.ProductID); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Product removed from wishlist"})
}
