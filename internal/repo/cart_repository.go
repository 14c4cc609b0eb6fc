package repo

import "github.com/andrevrochas/techshop/internal/models"

// CartRepository defines the interface for shopping cart operations.
// The cart holds display snapshots, not live product references.
type CartRepository interface {
	Add(product models.Product) models.CartItem
	Remove(productID string)
	GetAll() []models.CartItem
	Count() int
}
