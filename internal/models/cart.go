package models

// CartItem is one line of the shopping cart. It references a Product by ID
// and carries a display snapshot taken at the time of adding, so later
// catalog state does not affect what the cart shows. There is no quantity:
// adding the same product twice produces two lines.
type CartItem struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
	AddedAt   string   `json:"added_at,omitempty"`
}
