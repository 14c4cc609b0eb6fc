package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	repo "github.com/andrevrochas/techshop/internal/repo"
	"github.com/andrevrochas/techshop/internal/search"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog; the newest product is listed first
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := catalogRepo.Add(toProduct(req))
	if err != nil {
		var ve *repo.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, []ProductValidationError{
				{Field: ve.Field, Description: ve.Reason},
			})
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List products
// @Description Lists the catalog newest first, optionally narrowed by category, brand option and free-text query
// @Tags products
// @Produce json
// @Param category query string false "Category, exact match after normalization; 'all' lists every category"
// @Param option query string false "Brand option, substring match"
// @Param q query string false "Free-text query over name, description, category, brand and id"
// @Success 200 {array} ProductResponse
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	spec := search.Spec{
		Category: q.Get("category"),
		Option:   q.Get("option"),
		Query:    q.Get("q"),
	}

	products := search.Apply(catalogRepo.GetAll(), spec)
	writeJSON(w, http.StatusOK, toProductResponses(products))
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	product, err := catalogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// SearchProductsHandler godoc
// @Summary Search products by free text
// @Description Matches the query against name, description, category, brand and id. An empty query returns an empty result set, not the full catalog.
// @Tags products
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} ProductsSearchResult
// @Router /products/search [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results := search.ResolveByQuery(catalogRepo.GetAll(), query)

	resp := ProductsSearchResult{
		Query: query,
		Data:  toProductResponses(results),
		Meta:  Meta{TotalCount: len(results)},
	}
	writeJSON(w, http.StatusOK, resp)
}
