package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	Catalog   *CatalogHandler
	Cart      *CartHandler
	Favorites *FavoritesHandler
	Auth      *AuthHandler
	Checkout  *CheckoutHandler
	Orders    *OrdersHandler

	RequestTimeout time.Duration
}

func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(deps.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", deps.Catalog.ListProducts)
			r.Get("/{id}", deps.Catalog.GetProduct)
		})
		r.Get("/categories", deps.Catalog.ListCategories)
		r.Get("/instagram", deps.Catalog.ListInstagramPosts)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", deps.Cart.GetCart)
			r.Delete("/", deps.Cart.ClearCart)
			r.Post("/items", deps.Cart.AddItem)
			r.Put("/items/{product_id}", deps.Cart.UpdateQuantity)
			r.Delete("/items/{product_id}", deps.Cart.RemoveItem)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", deps.Favorites.List)
			r.Delete("/", deps.Favorites.Clear)
			r.Post("/{product_id}", deps.Favorites.Toggle)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.Auth.Login)
			r.Post("/register", deps.Auth.Register)
			r.Post("/logout", deps.Auth.Logout)
			r.Get("/profile", deps.Auth.Profile)
			r.Put("/profile", deps.Auth.UpdateProfile)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/quote", deps.Checkout.Quote)
			r.Post("/", deps.Checkout.PlaceOrder)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", deps.Orders.List)
			r.Get("/{id}", deps.Orders.Get)
		})
	})

	return r
}
