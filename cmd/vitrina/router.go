// Package main provides the API router setup.
package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pasvio/vitrina/assistant"
	"github.com/pasvio/vitrina/storage"
)

// newRouter creates the API router with all routes configured.
func newRouter(asst *assistant.Assistant, products storage.ProductRepository, faqs storage.FAQRepository, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(requestTimeout))

	h := newHandlers(asst, products, faqs)

	// Health check (unauthenticated)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"vitrina"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/assistant", func(r chi.Router) {
			r.Post("/ask", h.Ask)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Get("/{id}", h.GetProduct)
		})
	})

	return r
}
