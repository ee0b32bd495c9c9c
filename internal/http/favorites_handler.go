package http

import (
	"errors"
	"net/http"

	"github.com/maricoIR/HengamGallery/internal/catalog/repository"
	catalogservice "github.com/maricoIR/HengamGallery/internal/catalog/service"
	"github.com/maricoIR/HengamGallery/internal/favorites"
)

type FavoritesHandler struct {
	favorites *favorites.Service
	catalog   *catalogservice.CatalogService
}

func NewFavoritesHandler(favorites *favorites.Service, catalog *catalogservice.CatalogService) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, catalog: catalog}
}

type FavoritesResponseDTO struct {
	Items interface{} `json:"items"`
	Count int         `json:"count"`
}

func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, FavoritesResponseDTO{
		Items: h.favorites.List(),
		Count: h.favorites.Count(),
	})
}

// Toggle flips membership for the product in the path.
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusServiceUnavailable, "catalog_unavailable", "could not load product")
		return
	}

	h.favorites.Toggle(r.Context(), *product)
	respondJSON(w, http.StatusOK, map[string]bool{
		"favorite": h.favorites.Contains(productID),
	})
}

func (h *FavoritesHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.favorites.Clear(r.Context())
	respondJSON(w, http.StatusOK, FavoritesResponseDTO{Items: h.favorites.List(), Count: 0})
}
