package handlers

import "github.com/andrevrochas/techshop/internal/models"

// ProductRequest is the create-product payload. Legacy clients send the
// brand under several names (marca, vendor, fabricante...); they are folded
// into one canonical brand plus preserved aliases once, at ingestion.
type ProductRequest struct {
	Name         string   `json:"name"`
	Nome         string   `json:"nome,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Category     string   `json:"category,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	Marca        string   `json:"marca,omitempty"`
	Vendor       string   `json:"vendor,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Fabricante   string   `json:"fabricante,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Description  string   `json:"description,omitempty"`
	Descricao    string   `json:"descricao,omitempty"`
}

type ProductResponse struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Price        *float64 `json:"price,omitempty"`
	Category     string   `json:"category,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	BrandAliases []string `json:"brand_aliases,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Description  string   `json:"description,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Query string            `json:"query"`
	Data  []ProductResponse `json:"data"`
	Meta  Meta              `json:"meta,omitempty"`
}

type CartItemRequest struct {
	ProductID string `json:"product_id"`
}

type CartItemResponse struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
	AddedAt   string   `json:"added_at,omitempty"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int                `json:"count"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Category:     p.Category,
		Brand:        p.Brand,
		BrandAliases: p.BrandAliases,
		ImageURL:     p.ImageURL,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func toCartItemResponse(item models.CartItem) CartItemResponse {
	return CartItemResponse{
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		ImageURL:  item.ImageURL,
		AddedAt:   item.AddedAt,
	}
}
