package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/abdo0vuln/e-commerce/internal/repository"
	"github.com/abdo0vuln/e-commerce/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondServiceError maps the closed set of service/repository errors
// to transport status codes. Anything unclassified is a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(w, http.StatusConflict, "already_exists", "User already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
	case errors.Is(err, service.ErrCategoryInUse):
		respondError(w, http.StatusBadRequest, "category_in_use", "Cannot delete category with products. Reassign products first.")
	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusForbidden, "forbidden", "Forbidden")
	case errors.Is(err, service.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, "invalid_status", "invalid status value")
	default:
		log.Printf("internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
