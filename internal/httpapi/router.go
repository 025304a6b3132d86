package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/abdo0vuln/e-commerce/internal/auth"
)

type RouterConfig struct {
	Tokens         *auth.Tokens
	Auth           *AuthHandler
	Products       *ProductHandler
	Categories     *CategoryHandler
	Orders         *OrderHandler
	Users          *UserHandler
	Upload         *UploadHandler
	Seed           *SeedHandler
	UploadsDir     string
	RequestTimeout time.Duration
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(auth.Middleware(cfg.Tokens))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Uploaded assets
	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
	r.Handle("/uploads/*", fs)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.Auth.Register)
			r.Post("/login", cfg.Auth.Login)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", cfg.Products.List)
			r.Get("/{id}", cfg.Products.Get)
			r.With(RequireAdmin).Post("/", cfg.Products.Create)
			r.With(RequireAdmin).Put("/{id}", cfg.Products.Update)
			r.With(RequireAdmin).Delete("/{id}", cfg.Products.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", cfg.Categories.List)
			r.Get("/{id}", cfg.Categories.Get)
			r.With(RequireAdmin).Post("/", cfg.Categories.Create)
			r.With(RequireAdmin).Put("/{id}", cfg.Categories.Update)
			r.With(RequireAdmin).Delete("/{id}", cfg.Categories.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(RequireAuth)
			r.Get("/", cfg.Orders.List)
			r.Post("/", cfg.Orders.Create)
			r.Get("/{id}", cfg.Orders.Get)
			r.With(RequireAdmin).Put("/{id}", cfg.Orders.Update)
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(RequireAuth)
			r.With(RequireAdmin).Get("/", cfg.Users.ListCustomers)
			r.Get("/{id}", cfg.Users.Get)
			r.Route("/{id}/wishlist", func(r chi.Router) {
				r.Get("/", cfg.Users.GetWishlist)
				r.Post("/", cfg.Users.AddToWishlist)
				r.Delete("/", cfg.Users.RemoveFromWishlist)
			})
		})

		r.With(RequireAdmin).Post("/upload", cfg.Upload.Upload)
		r.Post("/seed", cfg.Seed.Seed)
	})

	return r
}
