package httpapi

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/abdo0vuln/e-commerce/internal/repository"
)

type SeedHandler struct {
	db         *mongo.Database
	production bool
}

func NewSeedHandler(db *mongo.Database, production bool) *SeedHandler {
	return &SeedHandler{db: db, production: production}
}

// Seed wipes and reloads demo data. Development only.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if h.production {
		respondError(w, http.StatusForbidden, "forbidden", "This route is only available in development")
		return
	}

	if err := repository.Seed(r.Context(), h.db); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Database seeded successfully"})
}
