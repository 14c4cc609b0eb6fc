package repo

import (
	"sync"
	"time"

	"github.com/andrevrochas/techshop/internal/models"
)

// InMemoryCartRepository is an in-memory implementation of CartRepository.
type InMemoryCartRepository struct {
	mu    sync.RWMutex
	items []models.CartItem
}

// NewInMemoryCartRepository creates a new empty cart.
func NewInMemoryCartRepository() *InMemoryCartRepository {
	return &InMemoryCartRepository{
		items: []models.CartItem{},
	}
}

// Add appends a snapshot of the given product to the end of the cart.
// Adding the same product twice produces two separate lines; there is no
// quantity merging.
func (r *InMemoryCartRepository) Add(product models.Product) models.CartItem {
	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		AddedAt:   time.Now().Format(time.RFC3339),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return item
}

// Remove deletes the first cart line referencing the given product ID.
// Removing an ID that is not in the cart is a no-op, not an error.
func (r *InMemoryCartRepository) Remove(productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if item.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return
		}
	}
}

// GetAll returns the cart lines in insertion order.
func (r *InMemoryCartRepository) GetAll() []models.CartItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.CartItem, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns the number of cart lines, used for the badge display.
func (r *InMemoryCartRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Clear empties the cart. Intended for tests.
func (r *InMemoryCartRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = []models.CartItem{}
}
