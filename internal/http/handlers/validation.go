package handlers

import (
	"net/url"
	"strings"

	"github.com/andrevrochas/techshop/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.Nome) == "" {
		errs = append(errs, ProductValidationError{Field: "name", Description: "Name is required"})
	}
	if p.Price != nil && *p.Price < 0 {
		errs = append(errs, ProductValidationError{Field: "price", Description: "Price must be zero or positive"})
	}
	return errs
}

// toProduct maps the request onto the canonical data model. This is the one
// place alias fields are resolved; everything past here sees a single name,
// description and brand per product.
func toProduct(req ProductRequest) models.Product {
	brand, aliases := foldBrandAliases(req)
	return models.Product{
		Name:         firstNonEmpty(req.Name, req.Nome),
		Price:        req.Price,
		Category:     strings.TrimSpace(req.Category),
		Brand:        brand,
		BrandAliases: aliases,
		ImageURL:     sanitizeImageURL(req.ImageURL),
		Description:  firstNonEmpty(req.Description, req.Descricao),
	}
}

// foldBrandAliases picks the first brand-like field as the canonical brand
// and keeps the remaining distinct ones as aliases.
func foldBrandAliases(req ProductRequest) (string, []string) {
	candidates := []string{req.Brand, req.Marca, req.Vendor, req.Manufacturer, req.Fabricante}

	brand := ""
	var aliases []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if brand == "" {
			brand = c
			continue
		}
		if strings.EqualFold(c, brand) || containsFold(aliases, c) {
			continue
		}
		aliases = append(aliases, c)
	}
	return brand, aliases
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// sanitizeImageURL keeps only http/https URLs; anything else is treated as
// absent and the UI falls back to its placeholder image.
func sanitizeImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return raw
}
