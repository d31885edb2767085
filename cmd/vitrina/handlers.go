package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pasvio/vitrina/assistant"
	"github.com/pasvio/vitrina/core"
	"github.com/pasvio/vitrina/storage"
)

// handlers holds the HTTP handlers for the assistant API.
type handlers struct {
	assistant *assistant.Assistant
	products  storage.ProductRepository
	faqs      storage.FAQRepository
	logger    *slog.Logger
}

func newHandlers(asst *assistant.Assistant, products storage.ProductRepository, faqs storage.FAQRepository) *handlers {
	return &handlers{
		assistant: asst,
		products:  products,
		faqs:      faqs,
		logger:    slog.Default().With("component", "api"),
	}
}

// askRequestDTO represents the API request for asking a question.
type askRequestDTO struct {
	ProductId uint64 `json:"productId"`
	Question  string `json:"question"`
}

// askResponseDTO represents the API response with the answer.
type askResponseDTO struct {
	Answer string `json:"answer"`
}

// productDTO represents a catalog product in API responses.
type productDTO struct {
	Id          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Stock       int32   `json:"stock"`
	Category    string  `json:"category,omitempty"`
}

// faqDTO represents a FAQ pair in API responses.
type faqDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// productDetailDTO is a product together with its FAQ pairs.
type productDetailDTO struct {
	productDTO
	Faqs []faqDTO `json:"faqs"`
}

// errorDTO represents an API error response.
type errorDTO struct {
	Error string `json:"error"`
}

// Ask handles POST /api/assistant/ask.
func (h *handlers) Ask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req askRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.assistant.Ask(ctx, core.ID(req.ProductId), req.Question)
	switch {
	case errors.Is(err, core.ErrEmptyQuestion), errors.Is(err, core.ErrInvalidProductID):
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, storage.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "product not found")
		return
	case err != nil:
		h.logger.Error("ask failed", "productId", req.ProductId, "err", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.writeJSON(w, http.StatusOK, askResponseDTO{Answer: answer})
}

// GetProduct handles GET /api/products/{id}.
func (h *handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		h.writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.products.GetProduct(r.Context(), core.ID(id))
	switch {
	case errors.Is(err, storage.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "product not found")
		return
	case err != nil:
		h.logger.Error("product lookup failed", "id", id, "err", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// A broken FAQ index degrades to an empty list, same as Ask.
	entries, err := h.faqs.GetFAQsForProduct(r.Context(), core.ID(id))
	if err != nil {
		h.logger.Warn("FAQ lookup failed", "id", id, "err", err)
		entries = nil
	}

	detail := productDetailDTO{
		productDTO: toProductDTO(product),
		Faqs:       make([]faqDTO, 0, len(entries)),
	}
	for _, entry := range entries {
		detail.Faqs = append(detail.Faqs, faqDTO{Question: entry.Question, Answer: entry.Answer})
	}

	h.writeJSON(w, http.StatusOK, detail)
}

// ListProducts handles GET /api/products, optionally filtered by ?category=.
func (h *handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		products []*core.Product
		err      error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		products, err = h.products.GetProductsByCategory(ctx, category)
	} else {
		products, err = h.products.GetAllProducts(ctx)
	}
	if err != nil {
		h.logger.Error("product listing failed", "err", err)
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	dtos := make([]productDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

func toProductDTO(p *core.Product) productDTO {
	return productDTO{
		Id:          uint64(p.Id),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Rating:      p.Rating,
		Stock:       p.Stock,
		Category:    p.Category,
	}
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "err", err)
	}
}

func (h *handlers) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorDTO{Error: msg})
}
