package repo

import "github.com/andrevrochas/techshop/internal/models"

// CatalogRepository defines the interface for catalog data operations.
// The catalog is append-only: products are never updated or deleted.
type CatalogRepository interface {
	Add(product models.Product) (models.Product, error)
	GetAll() []models.Product
	GetByID(id string) (models.Product, error)
}
