package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/andrevrochas/techshop/internal/http/handlers"
	mw "github.com/andrevrochas/techshop/internal/http/middleware"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestLogger)
	r.Use(mw.RateLimit)

	r.Post("/products", handlers.CreateProductHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/search", handlers.SearchProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)

	r.Post("/cart/items", handlers.AddCartItemHandler)
	r.Delete("/cart/items/{id}", handlers.RemoveCartItemHandler)
	r.Get("/cart", handlers.GetCartHandler)
	r.Get("/cart/count", handlers.GetCartCountHandler)

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
