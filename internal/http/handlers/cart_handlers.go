package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	repo "github.com/andrevrochas/techshop/internal/repo"
)

// AddCartItemHandler godoc
// @Summary Add a product to the cart
// @Description Appends a snapshot of the product as a new cart line. Adding the same product twice produces two lines.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body CartItemRequest true "Product to add"
// @Success 201 {object} CartItemResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Router /cart/items [post]
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "product_id is required", http.StatusBadRequest)
		return
	}

	product, err := catalogRepo.GetByID(req.ProductID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	item := cartRepo.Add(product)
	writeJSON(w, http.StatusCreated, toCartItemResponse(item))
}

// RemoveCartItemHandler godoc
// @Summary Remove a product from the cart
// @Description Removes the first cart line referencing the product ID; removing an absent ID is a no-op
// @Tags cart
// @Param id path string true "Product ID"
// @Success 204 "Removed (or nothing to remove)"
// @Router /cart/items/{id} [delete]
func RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "product ID is required", http.StatusBadRequest)
		return
	}

	cartRepo.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}

// GetCartHandler godoc
// @Summary List the cart
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	items := cartRepo.GetAll()
	resp := CartResponse{
		Items: make([]CartItemResponse, len(items)),
		Count: len(items),
	}
	for i, item := range items {
		resp.Items[i] = toCartItemResponse(item)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCartCountHandler godoc
// @Summary Cart badge count
// @Tags cart
// @Produce json
// @Success 200 {object} CartCountResponse
// @Router /cart/count [get]
func GetCartCountHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CartCountResponse{Count: cartRepo.Count()})
}
