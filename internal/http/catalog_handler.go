package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/maricoIR/HengamGallery/internal/catalog/repository"
	"github.com/maricoIR/HengamGallery/internal/catalog/search"
	"github.com/maricoIR/HengamGallery/internal/catalog/service"
)

type CatalogHandler struct {
	catalog *service.CatalogService
}

func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListProducts runs the full search pipeline: ?q, ?category, ?material,
// ?min_price, ?max_price, ?sort, ?page, ?page_size.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.GetProducts(r.Context())
	if err != nil {
		log.Printf("failed to load products: %v", err)
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "could not load products")
		return
	}

	categories, err := h.catalog.GetCategories(r.Context())
	if err != nil {
		log.Printf("failed to load categories: %v", err)
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "could not load categories")
		return
	}

	q := r.URL.Query()
	cfg := search.Config{
		Category: q.Get("category"),
		MinPrice: q.Get("min_price"),
		MaxPrice: q.Get("max_price"),
		Material: q.Get("material"),
		SortBy:   q.Get("sort"),
	}

	page := 0
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p >= 0 {
		page = p
	}
	pageSize := 12
	if ps, err := strconv.Atoi(q.Get("page_size")); err == nil && ps > 0 && ps <= 100 {
		pageSize = ps
	}

	result := search.Apply(products, categories, q.Get("q"), cfg, page, pageSize)
	respondJSON(w, http.StatusOK, result)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "id must be a positive integer")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		log.Printf("failed to load product %d: %v", id, err)
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "could not load product")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.GetCategories(r.Context())
	if err != nil {
		log.Printf("failed to load categories: %v", err)
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "could not load categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) ListInstagramPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.catalog.GetInstagramPosts(r.Context())
	if err != nil {
		log.Printf("failed to load instagram posts: %v", err)
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "could not load instagram posts")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}
