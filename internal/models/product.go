package models

// Product represents a catalog entry. ID is assigned by the catalog store at
// creation time and never changes afterwards; there is no partial in-place
// update, a changed product is a new Product.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        *float64 `json:"price,omitempty"` // nil means unknown, never zero
	Category     string   `json:"category,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	BrandAliases []string `json:"brand_aliases,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Description  string   `json:"description,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
}
