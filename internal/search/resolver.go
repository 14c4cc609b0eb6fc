package search

import "github.com/andrevrochas/techshop/internal/models"

// ResolveByID finds the product with exactly the given id. IDs are opaque
// strings and are compared without normalization. The boolean distinguishes
// the not-found outcome; it is not an error.
func ResolveByID(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ResolveByQuery returns the ordered list of products matching the free-text
// query, with no category or option constraint. A query that is empty after
// normalization yields an empty list, never the full catalog: the search
// results view renders "no query" and "no matches" differently.
func ResolveByQuery(products []models.Product, query string) []models.Product {
	if Normalize(query) == "" {
		return []models.Product{}
	}
	return Apply(products, Spec{Query: query})
}
