package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"izuran/internal/services"
)

// ShopHandler serves the shop catalog API
type ShopHandler struct {
	shopService *services.ShopService
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopService *services.ShopService) *ShopHandler {
	return &ShopHandler{shopService: shopService}
}

// ListProducts returns shop products, optionally filtered by the
// category query parameter
func (h *ShopHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.shopService.ListProducts(category)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// GetProduct returns a single product
func (h *ShopHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.shopService.GetProduct(id)
	if err != nil {
		respondError(w, statusForError(err), "Product not found")
		return
	}

	respondJSON(w, http.StatusOK, product)
}
