package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	RequestTimeout     time.Duration
	SessionTTL         time.Duration
	MaxRequestBodySize int64
	RateLimitRPS       float64
	RateLimitBurst     int
}

func NewRouter(cfg RouterConfig, h *Handler) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.RequestSize(cfg.MaxRequestBodySize))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{product_id}", h.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(SessionMiddleware(cfg.SessionTTL))

			r.Get("/session", h.GetSession)
			r.Delete("/session", h.EndSession)

			r.Route("/cart", func(r chi.Router) {
				r.Post("/items", h.AddItem)
				r.Put("/items/{product_id}", h.UpdateQuantity)
				r.Delete("/items/{product_id}", h.RemoveItem)
				r.Post("/open", h.OpenCart)
				r.Post("/close", h.CloseCart)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", h.SubmitOrder)
				r.Post("/open", h.OpenCheckout)
				r.Post("/close", h.CloseCheckout)
				r.Patch("/form", h.UpdateForm)
				r.Put("/form", h.ReplaceForm)
			})
		})
	})

	return r
}
