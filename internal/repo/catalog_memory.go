package repo

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andrevrochas/techshop/internal/models"
)

// InMemoryCatalogRepository is an in-memory implementation of
// CatalogRepository. The catalog lives only for the lifetime of the process.
type InMemoryCatalogRepository struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewInMemoryCatalogRepository creates a new empty catalog.
func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{
		products: []models.Product{},
	}
}

// Add validates and stores a new product, assigning its ID. The product is
// prepended so that GetAll lists newest first. On validation failure the
// catalog is left untouched.
func (r *InMemoryCatalogRepository) Add(product models.Product) (models.Product, error) {
	if strings.TrimSpace(product.Name) == "" {
		return models.Product{}, &ValidationError{Field: "name", Reason: "name is required"}
	}
	if product.Price != nil && *product.Price < 0 {
		return models.Product{}, &ValidationError{Field: "price", Reason: "price must be zero or positive"}
	}

	product.ID = uuid.NewString()
	if product.CreatedAt == "" {
		product.CreatedAt = time.Now().Format(time.RFC3339)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		// an ID collision is a defect, not a modeled error path
		if p.ID == product.ID {
			panic(fmt.Sprintf("duplicate product id %q", product.ID))
		}
	}
	r.products = append([]models.Product{product}, r.products...)
	return product, nil
}

// GetAll returns all products, newest first. The returned slice is a stable
// snapshot (Add allocates a fresh backing array) and must not be mutated by
// the caller.
func (r *InMemoryCatalogRepository) GetAll() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.products
}

// GetByID retrieves a product by its exact ID.
func (r *InMemoryCatalogRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Clear empties the catalog. Intended for tests.
func (r *InMemoryCatalogRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}
