package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the full HTTP surface: public auth and catalog routes,
// token-protected cart routes, and the global middleware stack.
func NewRouter(
	auth *AuthHandler,
	products *ProductHandler,
	carts *CartHandler,
	identity TokenVerifier,
	requestTimeout time.Duration,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", auth.Signup)
			r.Post("/login", auth.Login)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.List)
			r.Get("/{id}", products.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(Authenticator(identity))
			r.Get("/", carts.GetCart)
			r.Post("/", carts.AddItem)
			r.Put("/{itemID}", carts.UpdateQuantity)
			r.Delete("/{itemID}", carts.RemoveItem)
		})
	})

	return r
}
